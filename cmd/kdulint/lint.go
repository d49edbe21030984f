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
	"context"
	"fmt"
	"go/token"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/rule"
	"fillmore-labs.com/kdulint/internal/run"
)

const (
	formatText  = "text"
	formatTable = "table"
)

func lintCommand(g *globalFlags) *cobra.Command {
	var (
		fix    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint component files",
		Long: `Lint the .kdu files named on the command line. Directories are searched
recursively, skipping hidden directories and node_modules.

Examples:
  kdulint lint
  kdulint lint --fix src/components
  kdulint lint --format table App.kdu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatTable {
				return fmt.Errorf("unknown format %q", format)
			}

			_, o, err := g.load()
			if err != nil {
				return err
			}

			o.Behavior.Set(config.Fix, fix)

			if len(args) == 0 {
				args = []string{"."}
			}

			return runLint(cmd.Context(), cmd.OutOrStdout(), o, args, format)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "apply suggested fixes")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or table")

	return cmd
}

// summary counts the outcome of a lint run.
type summary struct {
	files, bytes     int
	errors, warnings int
	fixed            int
	elapsed          time.Duration
}

func runLint(ctx context.Context, w io.Writer, o *run.Options, paths []string, format string) error {
	files, err := run.Collect(paths...)
	if err != nil {
		return err
	}

	start := time.Now()

	l := o.Linter()
	results, err := l.Files(ctx, token.NewFileSet(), files)

	s := summary{files: len(files)}

	for _, r := range results {
		if r == nil {
			continue
		}

		s.bytes += len(r.File.Src)
		s.fixed += r.Fixed

		if len(r.Diagnostics) == 0 {
			continue
		}

		switch format {
		case formatTable:
			printTable(w, l.Runner(), r, &s)

		default:
			printText(w, l.Runner(), r, &s)
		}
	}

	s.elapsed = time.Since(start)
	printSummary(w, s)

	if err != nil {
		return err
	}

	if s.errors > 0 {
		return errProblems
	}

	return nil
}

// severity returns the label of the severity of d and counts it.
func severity(runner *rule.Runner, d analysis.Diagnostic, s *summary) string {
	if runner.Severity(d.Category) == config.SeverityWarn {
		s.warnings++

		return color.YellowString("warning")
	}

	s.errors++

	return color.RedString("error")
}

func printText(w io.Writer, runner *rule.Runner, r *run.Result, s *summary) {
	for _, d := range r.Diagnostics {
		p := r.File.Position(d.Pos)
		fprintf(w, "%s: %s %s %s\n", p, severity(runner, d, s), d.Message, color.HiBlackString("(%s)", d.Category))
	}
}

func printTable(w io.Writer, runner *rule.Runner, r *run.Result, s *summary) {
	fprintf(w, "%s\n", color.New(color.Underline).Sprint(r.File.Name))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateHeader = false

	for _, d := range r.Diagnostics {
		p := r.File.Position(d.Pos)
		tbl.AppendRow(table.Row{fmt.Sprintf("%d:%d", p.Line, p.Column), severity(runner, d, s), d.Message, d.Category})
	}

	tbl.Render()
	fprintf(w, "\n")
}

func printSummary(w io.Writer, s summary) {
	problems := s.errors + s.warnings

	scanned := fmt.Sprintf("in %s (%s, %s)", pluralCount(s.files, "file", "files"),
		humanize.Bytes(uint64(s.bytes)), s.elapsed.Round(time.Millisecond))

	if s.fixed > 0 {
		fprintf(w, "%s\n", color.GreenString("Applied %s.", pluralCount(s.fixed, "fix", "fixes")))
	}

	if problems == 0 {
		fprintf(w, "%s %s\n", color.GreenString("No problems"), scanned)

		return
	}

	c := color.New(color.FgYellow, color.Bold)
	if s.errors > 0 {
		c = color.New(color.FgRed, color.Bold)
	}

	fprintf(w, "%s %s\n", c.Sprintf("%s (%s, %s)", pluralCount(problems, "problem", "problems"),
		pluralCount(s.errors, "error", "errors"), pluralCount(s.warnings, "warning", "warnings")), scanned)
}

// pluralCount renders n with the matching noun.
func pluralCount(n int, one, many string) string {
	return humanize.Comma(int64(n)) + " " + plural(n, one, many)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
