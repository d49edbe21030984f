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

package rules_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sergi/go-diff/diffmatchpatch"

	"fillmore-labs.com/kdulint/internal/rule"
	"fillmore-labs.com/kdulint/internal/testsource"
)

type ruleTest struct {
	name    string
	src     string
	options []any
	want    []string // "line: message"
	fixed   string   // expected source after fixing, empty when unchanged
}

func runRuleTests(t *testing.T, r *rule.Rule, tests []ruleTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, lint(t, r, tt.src, tt.options...), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Lint() mismatch (-want +got):\n%s", diff)
			}

			want := tt.fixed
			if want == "" {
				want = tt.src
			}

			got := testsource.Fix(t, r, tt.src, tt.options...)
			if got != want {
				dmp := diffmatchpatch.New()
				t.Errorf("Fix() mismatch:\n%s", dmp.DiffPrettyText(dmp.DiffMain(want, got, false)))
			}

			if again := testsource.Fix(t, r, got, tt.options...); again != got {
				t.Errorf("Fix() is not idempotent, second pass changed %q to %q", got, again)
			}
		})
	}
}

func lint(t *testing.T, r *rule.Rule, src string, options ...any) []string {
	t.Helper()

	f, diagnostics := testsource.Lint(t, r, src, options...)

	got := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		got = append(got, fmt.Sprintf("%d: %s", f.Position(d.Pos).Line, d.Message))
	}

	return got
}
