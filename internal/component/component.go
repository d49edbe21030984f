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

// Package component detects component definitions in a script tree.
//
// Every authoring style is normalized into a [Descriptor]: default-exported
// option objects, objects passed to library calls like defineComponent or
// Kdu.component, inline child components and mixins, and the module scope
// of a <script setup> block.
package component

import (
	"go/token"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
)

// Type is the way a component was declared.
type Type uint8

//go:generate go tool stringer -type Type -linecomment
const (
	TypeExportDefault Type = iota // export-default
	TypeMarked                    // marked-via-library-call
	TypeDefinition                // definition-call
	TypeSetupScript               // setup-script
)

// Descriptor is one component definition.
type Descriptor struct {
	// Node is the option object, the function of a functional or
	// function-form definition, or the [*ast.Program] for script setup.
	Node ast.Node
	Type Type

	Parent     *Descriptor
	Functional bool
	Mixin      bool
	Exported   bool // Node is the default export of the module

	// Call is the library call or new expression that marked Node, if any.
	Call ast.Node
	// Name is the registration name of Kdu.component calls and components
	// map entries.
	Name string

	// Options is the argument of defineOptions for script setup.
	Options *ast.ObjectExpression
	Macros  []*Macro

	pos, end token.Pos
}

// Macro is a compile-time macro call in a <script setup> block.
type Macro struct {
	Name string
	Call *ast.CallExpression
	// Wrapper is the withDefaults call around defineProps, if any.
	Wrapper *ast.CallExpression
	// Target is the binding pattern the macro result is assigned to, if any.
	Target ast.Node
}

// Pos returns the start of the descriptor's source range.
func (d *Descriptor) Pos() token.Pos { return d.pos }

// End returns the end of the descriptor's source range.
func (d *Descriptor) End() token.Pos { return d.end }

// Object returns the option object. For script setup this is the
// defineOptions argument.
func (d *Descriptor) Object() *ast.ObjectExpression {
	if d.Type == TypeSetupScript {
		return d.Options
	}

	obj, _ := d.Node.(*ast.ObjectExpression)

	return obj
}

// Option returns the option with the given name, or nil.
func (d *Descriptor) Option(name string) *ast.Property {
	return astutil.FindProperty(d.Object(), name)
}

// Macro returns the first macro call with the given name, or nil.
func (d *Descriptor) Macro(name string) *Macro {
	for _, m := range d.Macros {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// MacrosNamed returns all macro calls with the given name in source order.
func (d *Descriptor) MacrosNamed(name string) []*Macro {
	var macros []*Macro

	for _, m := range d.Macros {
		if m.Name == name {
			macros = append(macros, m)
		}
	}

	return macros
}

// Contains reports whether pos lies inside the descriptor.
func (d *Descriptor) Contains(pos token.Pos) bool {
	return d.pos <= pos && pos < d.end
}

// Set is the result of one detection pass over a file.
type Set struct {
	all    []*Descriptor
	main   *Descriptor
	setup  *Descriptor
	byNode map[ast.Node]*Descriptor
}

// All returns every descriptor in source order.
func (s *Set) All() []*Descriptor { return s.all }

// Main returns the component of the file: the first default export or
// script setup block in source order. Without one of these, the first
// top-level descriptor is used. Main returns nil for files without
// components.
func (s *Set) Main() *Descriptor { return s.main }

// Setup returns the script setup descriptor, or nil.
func (s *Set) Setup() *Descriptor { return s.setup }

// Primary returns the descriptors that make up the file's component: the
// default export and the script setup block, when present.
func (s *Set) Primary() []*Descriptor {
	var primary []*Descriptor

	for _, d := range s.all {
		if d.Exported || d.Type == TypeSetupScript {
			primary = append(primary, d)
		}
	}

	if len(primary) == 0 && s.main != nil {
		primary = append(primary, s.main)
	}

	return primary
}

// Of returns the descriptor whose node is n, or nil.
func (s *Set) Of(n ast.Node) *Descriptor { return s.byNode[n] }

// Enclosing returns the innermost descriptor containing pos, or nil.
func (s *Set) Enclosing(pos token.Pos) *Descriptor {
	var inner *Descriptor

	for _, d := range s.all {
		if d.Contains(pos) && (inner == nil || d.pos >= inner.pos && d.end <= inner.end) {
			inner = d
		}
	}

	return inner
}

// Children returns the descriptors directly nested in d.
func (s *Set) Children(d *Descriptor) []*Descriptor {
	var children []*Descriptor

	for _, c := range s.all {
		if c.Parent == d {
			children = append(children, c)
		}
	}

	return children
}
