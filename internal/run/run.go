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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/parser"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// Ext is the file extension of component files.
const Ext = ".kdu"

// maxFixPasses bounds the number of times a file is relinted after fixing.
const maxFixPasses = 10

// ErrFixes is returned when fixes of a file did not converge.
var ErrFixes = errors.New("fixes did not converge")

// Result is the outcome of linting one component file.
type Result struct {
	// File is the parsed file the diagnostics refer to. After fixing, it is
	// the fixed source.
	File *ast.File

	Diagnostics []analysis.Diagnostic

	// Fixed counts the applied fixes.
	Fixed int
}

// Linter lints component files with one configured rule set.
type Linter struct {
	runner *rule.Runner
	fix    bool
}

// Linter configures the rules once for any number of files.
func (o *Options) Linter() *Linter {
	return &Linter{runner: o.Runner(), fix: o.Behavior.Enabled(config.Fix)}
}

// Runner returns the configured rule runner.
func (l *Linter) Runner() *rule.Runner { return l.runner }

// Source lints src registered in fset under filename. With the [config.Fix]
// behavior, fixes are applied until none applies; the result then
// describes the fixed source.
func (l *Linter) Source(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "KduLint")
	defer task.End()

	trace.Log(ctx, "file", filename)

	r := &Result{}

	for range maxFixPasses {
		f, _ := parser.ParseFile(fset, filename, src)
		r.File, r.Diagnostics = f, l.runner.Lint(ctx, f)

		if !l.fix {
			return r, nil
		}

		out, applied, err := report.ApplyFixes(f.TokFile, f.Src, r.Diagnostics)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}

		if applied == 0 {
			return r, nil
		}

		r.Fixed += applied
		src = out
	}

	return r, fmt.Errorf("%s: %w after %d passes", filename, ErrFixes, maxFixPasses)
}

// File reads and lints one component file, writing it back when fixes
// were applied.
func (l *Linter) File(ctx context.Context, fset *token.FileSet, path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r, err := l.Source(ctx, fset, path, src)
	if err != nil {
		return r, err
	}

	if r.Fixed > 0 {
		if err := writeFile(path, r.File.Src); err != nil {
			return r, err
		}
	}

	return r, nil
}

// Files lints paths concurrently. Results are in the order of paths; a file
// that could not be read has a nil result and contributes to the joined error.
func (l *Linter) Files(ctx context.Context, fset *token.FileSet, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = l.File(ctx, fset, path)

			return nil
		})
	}

	_ = g.Wait() // errors are collected per file

	return results, errors.Join(errs...)
}

// writeFile replaces the content of path, keeping its permissions.
func writeFile(path string, src []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, src, info.Mode().Perm())
}

// Collect returns the component files named by paths. Directories are
// searched recursively, skipping hidden directories and node_modules.
func Collect(paths ...string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)

			continue
		}

		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != p && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == Ext {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func skipDir(name string) bool {
	return name == "node_modules" || (len(name) > 1 && name[0] == '.')
}
