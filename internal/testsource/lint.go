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

package testsource

import (
	"context"
	"go/token"
	"log/slog"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/parser"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// maxFixPasses bounds the fix loop of [Fix].
const maxFixPasses = 10

// Runner creates a runner for r with the given options at error severity.
func Runner(tb testing.TB, r *rule.Rule, options ...any) *rule.Runner {
	tb.Helper()

	cfg := map[string]config.RuleConfig{r.Name: {Severity: config.SeverityError, Options: options}}
	runner := rule.NewRunner([]*rule.Rule{r}, cfg, config.DefaultBehavior(), slog.New(slog.DiscardHandler))

	if errs := runner.SetupErrors(); len(errs) > 0 {
		tb.Fatalf("Invalid options for rule %s: %v", r.Name, errs[0])
	}

	return runner
}

// Lint runs r on src and returns the parsed file with its diagnostics.
// Parse errors are not fatal.
func Lint(tb testing.TB, r *rule.Rule, src string, options ...any) (*ast.File, []analysis.Diagnostic) {
	tb.Helper()

	runner := Runner(tb, r, options...)

	f, _ := parser.ParseFile(token.NewFileSet(), filename, []byte(src))

	return f, runner.Lint(context.Background(), f)
}

// Fix applies the fixes of r to src until no fix applies.
func Fix(tb testing.TB, r *rule.Rule, src string, options ...any) string {
	tb.Helper()

	runner := Runner(tb, r, options...)

	for range maxFixPasses {
		f, _ := parser.ParseFile(token.NewFileSet(), filename, []byte(src))

		out, applied, err := report.ApplyFixes(f.TokFile, f.Src, runner.Lint(context.Background(), f))
		if err != nil {
			tb.Fatalf("Can't apply fixes: %v", err)
		}

		if applied == 0 {
			return src
		}

		src = string(out)
	}

	tb.Fatalf("Fixes of rule %s did not converge", r.Name)

	return src
}

// Messages returns the messages of diagnostics.
func Messages(diagnostics []analysis.Diagnostic) []string {
	messages := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		messages = append(messages, d.Message)
	}

	return messages
}
