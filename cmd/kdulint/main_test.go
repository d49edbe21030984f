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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/rules"
)

const component = `<template>
  <my-comp :myProp="x" />
</template>
`

// setup writes a component and a configuration file into a fresh directory.
func setup(t *testing.T, cfg string) (dir, cfgPath string) {
	t.Helper()

	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "kdulint.yaml")

	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "a.kdu"), []byte(component), 0o644); err != nil {
		t.Fatal(err)
	}

	return dir, cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     string
		format  string
		want    []string
		wantErr error
	}{
		{
			name:    "error",
			cfg:     "rules:\n  attribute-hyphenation: error\n",
			format:  "text",
			want:    []string{"a.kdu:2:12: error Attribute ':myProp' must be hyphenated. (attribute-hyphenation)", "1 problem (1 error, 0 warnings)"},
			wantErr: errProblems,
		},
		{
			name:   "warning",
			cfg:    "rules: {}\n",
			format: "table",
			want:   []string{"2:12", "warning", "1 problem (0 errors, 1 warning)"},
		},
		{
			name:   "off",
			cfg:    "rules:\n  attribute-hyphenation: off\n",
			format: "text",
			want:   []string{"No problems in 1 file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, cfg := setup(t, tt.cfg)

			out, err := execute(t, "lint", "--config", cfg, "--format", tt.format, dir)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Got error %v, expected %v", err, tt.wantErr)
			}

			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Output %q does not contain %q", out, want)
				}
			}
		})
	}
}

func TestLintFix(t *testing.T) {
	t.Parallel()

	dir, cfg := setup(t, "rules: {}\n")

	out, err := execute(t, "lint", "--config", cfg, "--fix", dir)
	if err != nil {
		t.Fatalf("Lint failed: %v", err)
	}

	if !strings.Contains(out, "Applied 1 fix.") || !strings.Contains(out, "No problems") {
		t.Errorf("Unexpected output %q", out)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.kdu"))
	if err != nil {
		t.Fatal(err)
	}

	if want := strings.Replace(component, ":myProp", ":my-prop", 1); string(got) != want {
		t.Errorf("Got fixed file %q, expected %q", got, want)
	}
}

func TestLintErrors(t *testing.T) {
	t.Parallel()

	dir, cfg := setup(t, "rules:\n  attribute-hyphenaton: error\n")

	if _, err := execute(t, "lint", "--config", cfg, dir); !errors.Is(err, config.ErrUnknownRule) {
		t.Errorf("Got error %v, expected %v", err, config.ErrUnknownRule)
	}

	if _, err := execute(t, "lint", "--format", "json", dir); err == nil {
		t.Error("Expected error for an unknown format")
	}

	if _, err := execute(t, "lint", "--config", cfg, filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for a missing path")
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	_, cfg := setup(t, "rules:\n  no-restricted-elements: [error, marquee]\n")

	out, err := execute(t, "rules", "--config", cfg)
	if err != nil {
		t.Fatalf("Rules failed: %v", err)
	}

	for _, name := range rules.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Rule %s missing from output", name)
		}
	}

	if !strings.Contains(strings.ToLower(out), "13 rules") {
		t.Errorf("Output %q lacks the rule count", out)
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	_, cfg := setup(t, "rules:\n  attribute-hyphenation: error\n")

	out, err := execute(t, "config", "--config", cfg)
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}

	for _, want := range []string{"# " + cfg, "attribute-hyphenation: error", "require-prop-types: warn", "no-restricted-elements: "} {
		if !strings.Contains(out, want) {
			t.Errorf("Output %q does not contain %q", out, want)
		}
	}
}
