// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package run_test

import (
	"context"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/report"
	. "fillmore-labs.com/kdulint/internal/run"
	"fillmore-labs.com/kdulint/internal/testsource"
)

const hyphenated = `<template>
  <my-comp :myProp="x" />
</template>
`

func TestSource(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Rules["attribute-hyphenation"] = config.RuleConfig{Severity: config.SeverityError}

	r, err := o.Linter().Source(context.Background(), token.NewFileSet(), "a.kdu", []byte(hyphenated))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	want := []string{"Attribute ':myProp' must be hyphenated."}
	if diff := cmp.Diff(want, testsource.Messages(r.Diagnostics)); diff != "" {
		t.Errorf("Source() mismatch (-want +got):\n%s", diff)
	}

	if r.Fixed != 0 {
		t.Errorf("Got %d fixes without fix behavior", r.Fixed)
	}
}

func TestFix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.kdu")
	if err := os.WriteFile(path, []byte(hyphenated), 0o644); err != nil {
		t.Fatal(err)
	}

	o := DefaultOptions()
	o.Behavior.Enable(config.Fix)

	r, err := o.Linter().File(context.Background(), token.NewFileSet(), path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	if r.Fixed != 1 || len(r.Diagnostics) != 0 {
		t.Errorf("Got %d fixes and %d diagnostics, expected 1 and 0", r.Fixed, len(r.Diagnostics))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	const want = `<template>
  <my-comp :my-prop="x" />
</template>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Fixed file mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"b.kdu",
		"a.kdu",
		"skip.go",
		"sub/c.kdu",
		"node_modules/lib/d.kdu",
		".cache/e.kdu",
	} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Collect(dir, filepath.Join(dir, "a.kdu"))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.kdu"),
		filepath.Join(dir, "b.kdu"),
		filepath.Join(dir, "sub", "c.kdu"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Collect(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for a missing path")
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.kdu")

	if err := os.WriteFile(good, []byte("<template><div></div></template>\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := DefaultOptions().Linter().Files(context.Background(), token.NewFileSet(),
		[]string{good, filepath.Join(dir, "missing.kdu")})

	if err == nil {
		t.Error("Expected error for a missing file")
	}

	if len(results) != 2 || results[0] == nil || results[1] != nil {
		t.Fatalf("Got results %v, expected one result for the readable file", results)
	}

	if n := len(results[0].Diagnostics); n != 0 {
		t.Errorf("Got %d diagnostics on a clean file", n)
	}
}

func TestConfigErrorsPerFile(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Rules["no-restricted-elements"] = config.RuleConfig{Severity: config.SeverityError, Options: []any{"div["}}
	o.Behavior.Enable(config.Fix)

	dir := t.TempDir()

	var paths []string
	for _, name := range []string{"a.kdu", "b.kdu", "c.kdu"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(hyphenated), 0o644); err != nil {
			t.Fatal(err)
		}

		paths = append(paths, path)
	}

	results, err := o.Linter().Files(context.Background(), token.NewFileSet(), paths)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	for i, r := range results {
		var categories []string
		for _, d := range r.Diagnostics {
			categories = append(categories, d.Category)
		}

		if diff := cmp.Diff([]string{report.ConfigCategory}, categories); diff != "" {
			t.Errorf("%s: categories mismatch (-want +got):\n%s", paths[i], diff)
		}

		if r.Fixed != 1 {
			t.Errorf("%s: got %d fixes, expected 1", paths[i], r.Fixed)
		}
	}
}
