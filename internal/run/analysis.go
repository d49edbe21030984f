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
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrNoFiles is returned when a pass has no file to locate the package directory.
var ErrNoFiles = errors.New("package without files")

// Run lints the component files in the directories of the package's Go
// files and reports their diagnostics to the pass.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	dirs := packageDirs(p)
	if len(dirs) == 0 {
		return nil, fmt.Errorf("kdulint: %s %w", p.Pkg.Path(), ErrNoFiles)
	}

	files, err := componentFiles(dirs)
	if err != nil {
		return nil, fmt.Errorf("kdulint: %w", err)
	}

	if len(files) == 0 {
		return nil, nil
	}

	l := &Linter{runner: o.Runner()}

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("kdulint: %w", err)
		}

		r, err := l.Source(context.Background(), p.Fset, path, src)
		if err != nil {
			return nil, fmt.Errorf("kdulint: %w", err)
		}

		for _, d := range r.Diagnostics {
			p.Report(d)
		}
	}

	return nil, nil
}

// packageDirs returns the directories holding the files of the pass.
func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	add := func(name string) {
		if name != "" {
			dirs = append(dirs, filepath.Dir(name))
		}
	}

	for _, f := range p.Files {
		if tf := p.Fset.File(f.FileStart); tf != nil {
			add(tf.Name())
		}
	}

	for _, name := range p.OtherFiles {
		add(name)
	}

	slices.Sort(dirs)

	return slices.Compact(dirs)
}

// componentFiles lists the component files directly inside dirs.
func componentFiles(dirs []string) ([]string, error) {
	var files []string

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
		if err != nil {
			return nil, err
		}

		files = append(files, matches...)
	}

	return files, nil
}
