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

// Package resolve connects template identifiers to script declarations.
//
// A template reference resolves, in order, to the iteration or slot
// variable the parser bound it to, to a member of the component (props,
// data, computed, methods, setup bindings) or to nothing. Name matching
// follows the casing rules of [casing.MatchesBinding].
package resolve

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/casing"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/scope"
)

// Kind is the outcome of a resolution.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	KindUnresolved    Kind = iota // unresolved
	KindIterationVar              // iteration-var
	KindScriptBinding             // script-binding
)

// Binding is a name the template can access without qualification.
type Binding struct {
	Name  string
	Group property.Group
	Node  ast.Node
	// Variable is the script variable of script setup and module bindings.
	Variable *scope.Variable
}

// Result is the target of a template reference.
type Result struct {
	Kind     Kind
	Variable *ast.Variable // for KindIterationVar
	Binding  *Binding      // for KindScriptBinding
}

// Resolver answers template lookups for one file.
type Resolver struct {
	bindings []*Binding
	byName   map[string]*Binding
}

// New collects the bindings of the file's component. Members of the
// primary descriptors come first, followed by top-level script bindings
// when the file has a script setup block.
func New(f *ast.File, set *component.Set, mgr *scope.Manager) *Resolver {
	r := &Resolver{byName: make(map[string]*Binding)}

	for _, d := range set.Primary() {
		for m := range property.Members(f, d) {
			b := &Binding{Name: m.Name, Group: m.Group, Node: m.Node}
			if id, ok := m.Node.(*ast.Identifier); ok && mgr != nil {
				b.Variable, _ = mgr.VariableOf(id)
			}

			r.add(b)
		}
	}

	if set.Setup() != nil && mgr != nil {
		for _, v := range mgr.Module().Variables {
			if len(v.Defs) == 0 || isTypeOnly(v) {
				continue
			}

			r.add(&Binding{Name: v.Name, Group: property.GroupSetup, Node: v.Identifiers[0], Variable: v})
		}
	}

	return r
}

func isTypeOnly(v *scope.Variable) bool {
	for _, def := range v.Defs {
		if def.Kind != scope.DefImportBinding {
			return false
		}

		if decl, ok := def.Parent.(*ast.ImportDeclaration); ok && decl.TypeOnly {
			continue
		}

		if spec, ok := def.Node.(*ast.ImportSpecifier); ok && spec.TypeOnly {
			continue
		}

		return false
	}

	return true
}

func (r *Resolver) add(b *Binding) {
	if _, ok := r.byName[b.Name]; ok {
		return
	}

	r.byName[b.Name] = b
	r.bindings = append(r.bindings, b)
}

// Bindings returns all bindings in collection order.
func (r *Resolver) Bindings() []*Binding { return r.bindings }

// Lookup finds the binding a template name refers to. Exact matches win
// over casing-normalized ones.
func (r *Resolver) Lookup(name string) (*Binding, bool) {
	if b, ok := r.byName[name]; ok {
		return b, true
	}

	for _, b := range r.bindings {
		if casing.MatchesBinding(name, b.Name) {
			return b, true
		}
	}

	return nil, false
}

// Reference resolves a template reference.
func (r *Resolver) Reference(ref *ast.Reference) Result {
	if ref.Variable != nil {
		return Result{Kind: KindIterationVar, Variable: ref.Variable}
	}

	if b, ok := r.Lookup(ref.ID.Name); ok {
		return Result{Kind: KindScriptBinding, Binding: b}
	}

	return Result{Kind: KindUnresolved}
}
