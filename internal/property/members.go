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

package property

import (
	"iter"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
)

// Group is an option group contributing instance members.
type Group string

const (
	GroupProps    Group = "props"
	GroupData     Group = "data"
	GroupComputed Group = "computed"
	GroupMethods  Group = "methods"
	GroupSetup    Group = "setup"
	GroupInject   Group = "inject"
	GroupWatch    Group = "watch"
	GroupEmits    Group = "emits"
)

// AllGroups lists the groups in the order options are usually written.
var AllGroups = []Group{
	GroupProps, GroupData, GroupComputed, GroupMethods, GroupSetup, GroupInject, GroupWatch, GroupEmits,
}

// Member is a named entry of an option group.
type Member struct {
	Name  string
	Group Group
	Node  ast.Node // the key or binding identifier
}

// Members yields the members of the given groups, all groups when none are
// given. Members of one group are yielded in source order.
//
// For script setup, GroupSetup yields the top-level bindings of the block.
func Members(f *ast.File, d *component.Descriptor, groups ...Group) iter.Seq[Member] {
	if len(groups) == 0 {
		groups = AllGroups
	}

	return func(yield func(Member) bool) {
		if d == nil {
			return
		}

		for _, g := range groups {
			for m := range groupMembers(f, d, g) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

func groupMembers(f *ast.File, d *component.Descriptor, g Group) iter.Seq[Member] {
	return func(yield func(Member) bool) {
		switch g {
		case GroupProps, GroupEmits:
			var props []*Property
			if g == GroupProps {
				props = Props(f, d)
			} else {
				props = Emits(f, d)
			}

			for _, p := range props {
				if p.Known && !yield(Member{p.Name, g, p.Key}) {
					return
				}
			}

			return

		case GroupComputed:
			if d.Type == component.TypeSetupScript {
				return // part of the setup bindings
			}
		}

		if d.Type == component.TypeSetupScript {
			if g == GroupSetup {
				setupBindings(d, yield)
			}

			return
		}

		opt := d.Option(string(g))
		if opt == nil {
			return
		}

		var value ast.Node = opt.Value

		switch g {
		case GroupData, GroupSetup:
			fn, ok := ast.AsFunc(astutil.Unwrap(opt.Value))
			if !ok {
				if g == GroupSetup {
					return
				}

				break
			}

			obj, ok := astutil.ReturnedObject(fn)
			if !ok {
				return
			}

			value = obj

		case GroupInject:
			if arr, ok := astutil.Unwrap(opt.Value).(*ast.ArrayExpression); ok {
				for _, p := range arrayNames(arr) {
					if p.Known && !yield(Member{p.Name, g, p.Key}) {
						return
					}
				}

				return
			}
		}

		obj, ok := astutil.ObjectOf(value)
		if !ok {
			return
		}

		for name, p := range astutil.Properties(obj) {
			if !yield(Member{name, g, p.Key}) {
				return
			}
		}
	}
}

// setupBindings yields the top-level declarations of a script setup block.
func setupBindings(d *component.Descriptor, yield func(Member) bool) {
	prog, _ := d.Node.(*ast.Program)
	if prog == nil {
		return
	}

	for _, stmt := range prog.Body {
		if !d.Contains(stmt.Pos()) {
			continue
		}

		if exp, ok := stmt.(*ast.ExportNamedDeclaration); ok && exp.Declaration != nil {
			stmt = exp.Declaration
		}

		for id := range declaredIdentifiers(stmt) {
			if !yield(Member{id.Name, GroupSetup, id}) {
				return
			}
		}
	}
}

// declaredIdentifiers yields the value bindings a top-level statement declares.
func declaredIdentifiers(stmt ast.Node) iter.Seq[*ast.Identifier] {
	return func(yield func(*ast.Identifier) bool) {
		switch s := stmt.(type) {
		case *ast.VariableDeclaration:
			if s.Declare {
				return
			}

			for _, decl := range s.Declarations {
				for id := range astutil.BindingIdentifiers(decl.ID) {
					if !yield(id) {
						return
					}
				}
			}

		case *ast.FunctionDeclaration:
			if s.ID != nil {
				yield(s.ID)
			}

		case *ast.ClassDeclaration:
			if s.ID != nil {
				yield(s.ID)
			}

		case *ast.ImportDeclaration:
			if s.TypeOnly {
				return
			}

			for _, spec := range s.Specifiers {
				var local *ast.Identifier

				switch sp := spec.(type) {
				case *ast.ImportSpecifier:
					if sp.TypeOnly {
						continue
					}

					local = sp.Local
				case *ast.ImportDefaultSpecifier:
					local = sp.Local
				case *ast.ImportNamespaceSpecifier:
					local = sp.Local
				}

				if local != nil && !yield(local) {
					return
				}
			}
		}
	}
}
