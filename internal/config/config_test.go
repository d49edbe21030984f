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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/kdulint/internal/config"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want Severity
		err  error
	}{
		{"off", SeverityOff, nil},
		{"warn", SeverityWarn, nil},
		{"Warning", SeverityWarn, nil},
		{"error", SeverityError, nil},
		{0, SeverityOff, nil},
		{1, SeverityWarn, nil},
		{2.0, SeverityError, nil},
		{3, SeverityOff, ErrSeverity},
		{1.5, SeverityOff, ErrSeverity},
		{"fatal", SeverityOff, ErrSeverity},
		{true, SeverityOff, ErrSeverity},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseSeverity(%v) error = %v, want %v", tt.in, err, tt.err)

			continue
		}

		if got != tt.want {
			t.Errorf("ParseSeverity(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	known := []string{"attribute-hyphenation", "no-dupe-keys", "no-unused-props"}

	raw := map[string]any{
		"attribute-hyphenation": []any{"error", "never", map[string]any{"ignore": []any{"custom-prop"}}},
		"no-dupe-keys":          1,
	}

	got, err := ParseRules(raw, known)
	if err != nil {
		t.Fatalf("ParseRules() error = %v", err)
	}

	want := map[string]RuleConfig{
		"attribute-hyphenation": {Severity: SeverityError, Options: []any{"never", map[string]any{"ignore": []any{"custom-prop"}}}},
		"no-dupe-keys":          {Severity: SeverityWarn},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRules() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRulesErrors(t *testing.T) {
	t.Parallel()

	known := []string{"no-dupe-keys", "no-unused-props"}

	_, err := ParseRules(map[string]any{"no-dup-keys": "error"}, known)
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("ParseRules() error = %v, want %v", err, ErrUnknownRule)
	}

	if want := `unknown rule "no-dup-keys", did you mean "no-dupe-keys"?`; err.Error() != want {
		t.Errorf("ParseRules() error = %q, want %q", err, want)
	}

	_, err = ParseRules(map[string]any{"no-dupe-keys": []any{}}, known)
	if !errors.Is(err, ErrRuleValue) {
		t.Errorf("ParseRules() error = %v, want %v", err, ErrRuleValue)
	}

	_, err = ParseRules(map[string]any{"no-dupe-keys": map[string]any{}}, known)
	if !errors.Is(err, ErrRuleValue) {
		t.Errorf("ParseRules() error = %v, want %v", err, ErrRuleValue)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"require-prop-types", "no-unused-props", "no-unused-components"}

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"no-unused-prop", "no-unused-props", true},
		{"require-props-type", "require-prop-types", true},
		{"something-else", "", false},
	}

	for _, tt := range tests {
		got, ok := Suggest(tt.name, candidates)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Suggest(%q) = %q, %t, want %q, %t", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

const hyphenationSchema = `{
  "type": "array",
  "items": [
    {"enum": ["always", "never"]},
    {
      "type": "object",
      "properties": {"ignore": {"type": "array", "items": {"type": "string"}}},
      "additionalProperties": false
    }
  ],
  "maxItems": 2
}`

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		schema  string
		options []any
		err     error
	}{
		{"no options", hyphenationSchema, nil, nil},
		{"mode", hyphenationSchema, []any{"never"}, nil},
		{"ignore", hyphenationSchema, []any{"always", map[string]any{"ignore": []any{"a"}}}, nil},
		{"bad mode", hyphenationSchema, []any{"sometimes"}, ErrInvalidOptions},
		{"bad property", hyphenationSchema, []any{"always", map[string]any{"unknown": true}}, ErrInvalidOptions},
		{"too many", hyphenationSchema, []any{"always", map[string]any{}, 3}, ErrInvalidOptions},
		{"no schema", "", []any{"x"}, ErrInvalidOptions},
		{"no schema no options", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateOptions(tt.schema, tt.options); !errors.Is(err, tt.err) {
				t.Errorf("ValidateOptions() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type options struct {
		Ignore  []string `json:"ignore"`
		Strict  bool     `json:"strict,omitempty"`
		Message string   `json:"message"`
	}

	var got options
	if err := Decode(map[string]any{"ignore": []any{"a", "b"}, "strict": "true"}, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if diff := cmp.Diff(options{Ignore: []string{"a", "b"}, Strict: true}, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}

	if err := Decode(map[string]any{"unknown": 1}, &got); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Decode() error = %v, want %v", err, ErrInvalidOptions)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kdulint.yaml")

	const content = `generated: true
rules:
  no-dupe-keys: error
  attribute-hyphenation: [warn, never]
`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f.Path != path {
		t.Errorf("Load() path = %q, want %q", f.Path, path)
	}

	b := f.Behavior()
	if !b.Enabled(IncludeGenerated) || b.Enabled(ReportUnusedDisable) {
		t.Errorf("Behavior() = %b, want %b", b.Flags(), IncludeGenerated)
	}

	rules, err := ParseRules(f.Rules, []string{"no-dupe-keys", "attribute-hyphenation"})
	if err != nil {
		t.Fatalf("ParseRules() error = %v", err)
	}

	want := map[string]RuleConfig{
		"no-dupe-keys":          {Severity: SeverityError},
		"attribute-hyphenation": {Severity: SeverityWarn, Options: []any{"never"}},
	}

	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("ParseRules() mismatch (-want +got):\n%s", diff)
	}

	out, err := f.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	if len(out) == 0 {
		t.Error("YAML() returned no output")
	}
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Fix, ReportUnusedDisable)
	b.Set(Fix, false)
	b.Enable(IncludeGenerated)

	if b.Enabled(Fix) || !b.Enabled(ReportUnusedDisable) || !b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected flags %b", b.Flags())
	}
}
