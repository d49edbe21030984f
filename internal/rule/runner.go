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

package rule

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/report"
)

// Diagnostic categories not belonging to a rule.
const (
	ParseCategory         = "parse"
	UnusedDisableCategory = "unused-disable"
)

// SetupError is an invalid configuration of a rule.
type SetupError struct {
	Rule string
	Err  error
}

func (e *SetupError) Error() string { return fmt.Sprintf("rule %q: %v", e.Rule, e.Err) }

func (e *SetupError) Unwrap() error { return e.Err }

// Runner runs a configured rule set over component files.
type Runner struct {
	rules    []*Configured
	behavior config.BitMask[config.Behavior]
	logger   *slog.Logger

	setup []*SetupError
}

// NewRunner configures the rules of registry. Rules missing from rules run
// at their default severity. Options failing validation become setup errors,
// and the rule runs with its fallback options.
func NewRunner(registry []*Rule, rules map[string]config.RuleConfig, behavior config.BitMask[config.Behavior], logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Runner{behavior: behavior, logger: logger}

	for _, rl := range registry {
		cfg, ok := rules[rl.Name]
		if !ok {
			cfg = config.RuleConfig{Severity: rl.Default}
		}

		if !cfg.Enabled() {
			continue
		}

		raw := cfg.Options
		if err := config.ValidateOptions(rl.Schema, raw); err != nil {
			r.setup = append(r.setup, &SetupError{Rule: rl.Name, Err: err})
			raw = nil
		}

		c := &Configured{Rule: rl, Severity: cfg.Severity}

		if rl.Parse != nil {
			options, err := rl.Parse(raw)
			if err != nil {
				r.setup = append(r.setup, &SetupError{Rule: rl.Name, Err: err})

				if options == nil {
					options, _ = rl.Parse(nil)
				}
			}

			c.Options = options
		}

		logger.LogAttrs(context.Background(), slog.LevelDebug, "rule configured",
			rl.LogAttr(), slog.String("severity", cfg.Severity.String()))

		r.rules = append(r.rules, c)
	}

	return r
}

// Rules returns the enabled rules in registry order.
func (r *Runner) Rules() []*Configured { return r.rules }

// SetupErrors returns the configuration errors found by [NewRunner].
func (r *Runner) SetupErrors() []*SetupError { return r.setup }

// Severity returns the severity of diagnostics of the given category.
func (r *Runner) Severity(category string) config.Severity {
	for _, c := range r.rules {
		if c.Name == category {
			return c.Severity
		}
	}

	switch category {
	case UnusedDisableCategory:
		return config.SeverityWarn

	default:
		return config.SeverityError
	}
}

// Lint runs the rules on f and returns the diagnostics sorted by position.
// Setup errors are reported with every linted file.
func (r *Runner) Lint(ctx context.Context, f *ast.File) []analysis.Diagnostic {
	ctx, task := trace.NewTask(ctx, "Lint")
	defer task.End()

	trace.Log(ctx, "file", f.Name)

	start := time.Now()

	l := &linter{
		runner:   r,
		file:     NewFile(f),
		fixer:    report.NewFixer(f),
		disabled: make([]bool, len(r.rules)),
	}

	if l.file.Current.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
		return nil
	}

	for _, e := range r.setup {
		l.diagnostics = append(l.diagnostics, report.ConfigError(f.Document.Pos(), e.Rule, e.Err))
	}

	if f.HasScriptErrors() {
		e := f.ScriptErrors[0]
		l.diagnostics = append(l.diagnostics, analysis.Diagnostic{
			Pos:      e.Pos,
			End:      e.Pos,
			Category: ParseCategory,
			Message:  "Parsing error: " + e.Msg,
		})
	}

	l.create(ctx)
	if f.TemplateBody != nil {
		l.traverse(ctx, Template, f.TemplateBody)
	}

	if f.Program != nil {
		l.traverse(ctx, Script, f.Program)
	}
	l.finish(ctx)

	if r.behavior.Enabled(config.ReportUnusedDisable) {
		l.unusedDirectives()
	}

	slices.SortStableFunc(l.diagnostics, func(a, b analysis.Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

	r.logger.LogAttrs(ctx, slog.LevelDebug, "file linted",
		slog.String("file", f.Name),
		slog.Int("diagnostics", len(l.diagnostics)),
		slog.Duration("elapsed", time.Since(start)))

	return l.diagnostics
}

// linter is the state of one [Runner.Lint] call.
type linter struct {
	runner      *Runner
	file        *File
	fixer       *report.Fixer
	dispatch    dispatch
	done        []entryFunc
	disabled    []bool
	diagnostics []analysis.Diagnostic
}

type entryFunc struct {
	rule int
	f    func()
}

func (l *linter) create(ctx context.Context) {
	defer trace.StartRegion(ctx, "Create").End()

	f := l.file.AST

	for i, c := range l.runner.rules {
		if f.HasScriptErrors() && !c.ParseErrors {
			continue
		}

		rc := &Context{File: l.file, rule: c, fixer: l.fixer, report: l.report, index: i}

		var v *Visitor

		l.guard(i, f.Document, func() { v = c.Create(rc) })

		if v == nil {
			continue
		}

		l.dispatch.add(i, v, f.HasTemplateErrors() && !c.ParseErrors)

		for _, d := range v.done {
			l.done = append(l.done, entryFunc{i, d})
		}
	}
}

func (l *linter) traverse(ctx context.Context, d Domain, root ast.Node) {
	if root == nil || l.dispatch.empty(d) {
		return
	}

	defer trace.StartRegion(ctx, "Traverse").End()

	c, ok := l.file.Inspector.Find(root)
	if !ok {
		astutil.InternalError(l.add, root, "node %s missing from arena", l.file.AST.Describe(root))

		return
	}

	kinds := &l.dispatch.kinds[d]
	visit := func(p phase) func(inspector.Cursor) {
		table := l.dispatch.table[d][p]

		return func(c inspector.Cursor) {
			k := c.Node().Kind()
			if !kinds.Has(k) {
				return
			}

			for _, e := range table[k] {
				l.guard(e.rule, c.Node(), func() { e.handler(c) })
			}
		}
	}

	onEnter, onExit := visit(enter), visit(exit)

	onEnter(c)
	c.Walk(func(c inspector.Cursor) bool {
		onEnter(c)

		return true
	}, onExit)
	onExit(c)
}

func (l *linter) finish(ctx context.Context) {
	defer trace.StartRegion(ctx, "Done").End()

	for _, d := range l.done {
		l.guard(d.rule, l.file.AST.Document, d.f)
	}
}

// guard runs f for rule i, turning a panic into an internal error and
// disabling the rule for the rest of the file.
func (l *linter) guard(i int, n ast.Node, f func()) {
	if l.disabled[i] {
		return
	}

	defer func() {
		if p := recover(); p != nil {
			l.disabled[i] = true
			astutil.InternalError(l.add, n, "rule %s failed: %v", l.runner.rules[i].Name, p)
		}
	}()

	f()
}

func (l *linter) add(d analysis.Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
}

func (l *linter) report(i int, d report.Descriptor) {
	if l.disabled[i] {
		return
	}

	c := l.runner.rules[i]

	pos, _ := d.Range()
	if l.file.Current.Disabled(pos, c.Name) {
		return
	}

	var fx *report.Fixer
	if c.Fixable {
		fx = l.fixer
	}

	l.add(d.Diagnostic(fx, c.Name, c.Messages))
}

func (l *linter) unusedDirectives() {
	for _, d := range l.file.Current.Unused() {
		message := "Unused kdulint-disable directive"
		if len(d.Rules) > 0 {
			message += " for " + strings.Join(d.Rules, ", ")
		}

		l.add(analysis.Diagnostic{
			Pos:      d.Comment.Pos(),
			End:      d.Comment.End(),
			Category: UnusedDisableCategory,
			Message:  message,
			SuggestedFixes: []analysis.SuggestedFix{{
				Message:   "Remove the directive",
				TextEdits: []analysis.TextEdit{l.fixer.RemoveRange(d.Comment.Pos(), d.Comment.End())},
			}},
		})
	}
}
