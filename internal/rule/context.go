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
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/resolve"
	"fillmore-labs.com/kdulint/internal/scope"
)

// File is the analysis context of one component file, shared by all rules
// running on it. Derived structures are computed on first use and live as
// long as the file's run.
type File struct {
	AST       *ast.File
	Inspector *inspector.Inspector
	Current   *astutil.CurrentFile

	components *component.Set
	scopes     *scope.Manager
	resolver   *resolve.Resolver
	styleVars  []*resolve.StyleVariable
	styleDone  bool
	props      map[*component.Descriptor][]*property.Property
	emits      map[*component.Descriptor][]*property.Property
}

// NewFile creates the analysis context of f.
func NewFile(f *ast.File) *File {
	return &File{
		AST:       f,
		Inspector: inspector.New(f.Document, f.Program),
		Current:   astutil.NewCurrentFile(f),
	}
}

// Cursor returns the arena position of n.
func (f *File) Cursor(n ast.Node) (inspector.Cursor, bool) {
	return f.Inspector.Find(n)
}

// Components returns the component descriptors of the file.
func (f *File) Components() *component.Set {
	if f.components == nil {
		f.components = component.Detect(f.AST)
	}

	return f.components
}

// Scopes returns the script scope manager.
func (f *File) Scopes() *scope.Manager {
	if f.scopes == nil {
		f.scopes = scope.Analyze(f.AST.Program)
	}

	return f.scopes
}

// Resolver returns the template reference resolver.
func (f *File) Resolver() *resolve.Resolver {
	if f.resolver == nil {
		f.resolver = resolve.New(f.AST, f.Components(), f.Scopes())
	}

	return f.resolver
}

// StyleVariables returns the `k-bind()` expressions of the style blocks.
func (f *File) StyleVariables() []*resolve.StyleVariable {
	if !f.styleDone {
		f.styleVars, f.styleDone = resolve.StyleVariables(f.AST), true
	}

	return f.styleVars
}

// Props returns the declared props of d.
func (f *File) Props(d *component.Descriptor) []*property.Property {
	if props, ok := f.props[d]; ok {
		return props
	}

	if f.props == nil {
		f.props = make(map[*component.Descriptor][]*property.Property)
	}

	props := property.Props(f.AST, d)
	f.props[d] = props

	return props
}

// Emits returns the declared events of d.
func (f *File) Emits(d *component.Descriptor) []*property.Property {
	if emits, ok := f.emits[d]; ok {
		return emits
	}

	if f.emits == nil {
		f.emits = make(map[*component.Descriptor][]*property.Property)
	}

	emits := property.Emits(f.AST, d)
	f.emits[d] = emits

	return emits
}

// Context is the view of one rule on a [File].
type Context struct {
	*File

	rule   *Configured
	fixer  *report.Fixer
	report func(rule int, d report.Descriptor)
	index  int
}

// Rule returns the running rule.
func (c *Context) Rule() *Configured { return c.rule }

// Report reports a finding of the running rule.
func (c *Context) Report(d report.Descriptor) {
	c.report(c.index, d)
}

// Fixer returns the edit factory of the file.
func (c *Context) Fixer() *report.Fixer { return c.fixer }
