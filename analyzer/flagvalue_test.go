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

package analyzer_test

import (
	"errors"
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/kdulint/analyzer"
	"fillmore-labs.com/kdulint/internal/config"
)

func TestBehaviorValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ReportUnusedDisable,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "generated", "check generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IncludeGenerated enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(tt.initial) && tt.initial != value {
				t.Errorf("Flag %d was reset", tt.initial)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.IncludeGenerated)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.IncludeGenerated)
	fs.Var(fv, "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestRuleValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr error
	}{
		{"Severity", "require-prop-types=warn", "require-prop-types=warn", nil},
		{"Number", "no-dupe-keys=0", "no-dupe-keys=off", nil},
		{"Unknown", "no-dupe-key=error", "", config.ErrUnknownRule},
		{"Malformed", "no-dupe-keys", "", config.ErrRuleValue},
		{"BadSeverity", "no-dupe-keys=loud", "", config.ErrSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := make(map[string]config.RuleConfig)
			fv := NewRuleValue(rules)

			err := fv.Set(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Set(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}

			if got := fv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
