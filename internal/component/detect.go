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

package component

import (
	"cmp"
	"slices"
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
)

// marker is the comment that declares a plain object a component.
const marker = "@kdu/component"

// macros are the compile-time macros of <script setup>, recognized by name
// regardless of import source.
var macros = map[string]bool{
	"defineProps": true, "withDefaults": true, "defineEmits": true, "defineExpose": true,
	"defineOptions": true, "defineSlots": true, "defineModel": true,
}

// definers mark their first argument as a component.
var definers = map[string]bool{
	"defineComponent": true, "defineNuxtComponent": true, "createApp": true, "Kdu.extend": true,
}

type detector struct {
	f      *ast.File
	set    *Set
	marked map[ast.Node]bool // objects preceded by a marker comment
}

// Detect finds the component descriptors of a file. Files without
// recognizable components yield an empty set.
func Detect(f *ast.File) *Set {
	d := &detector{
		f:      f,
		set:    &Set{byNode: make(map[ast.Node]*Descriptor)},
		marked: make(map[ast.Node]bool),
	}

	d.topLevel()
	d.calls()
	d.setup()

	for _, desc := range slices.Clone(d.set.all) {
		d.children(desc)
	}

	d.link()

	return d.set
}

func (d *detector) add(desc *Descriptor) *Descriptor {
	if prev, ok := d.set.byNode[desc.Node]; ok {
		prev.Exported = prev.Exported || desc.Exported

		return prev
	}

	if desc.pos == 0 {
		desc.pos, desc.end = desc.Node.Pos(), desc.Node.End()
	}

	if obj, ok := desc.Node.(*ast.ObjectExpression); ok {
		if p := astutil.FindProperty(obj, "functional"); p != nil {
			if lit, ok := p.Value.(*ast.Literal); ok && lit.Value == "true" {
				desc.Functional = true
			}
		}
	}

	d.set.all = append(d.set.all, desc)
	d.set.byNode[desc.Node] = desc

	return desc
}

func (d *detector) hasMarker(n ast.Node) bool {
	for _, c := range d.f.ScriptTokens.CommentsBefore(n.Pos()) {
		if strings.Contains(c.Value, marker) {
			return true
		}
	}

	return false
}

// topLevel handles default exports, CommonJS exports and marker comments
// on top-level declarations.
func (d *detector) topLevel() {
	for _, stmt := range d.f.Program.Body {
		switch s := stmt.(type) {
		case *ast.ExportDefaultDeclaration:
			d.exported(s.Declaration)

		case *ast.ExpressionStatement:
			if a, ok := s.Expression.(*ast.AssignmentExpression); ok && a.Operator == "=" &&
				astutil.CalleeName(a.Left) == "module.exports" {
				d.exported(a.Right)
			}

		case *ast.VariableDeclaration:
			d.markedDecl(s, s)

		case *ast.ExportNamedDeclaration:
			if decl, ok := s.Declaration.(*ast.VariableDeclaration); ok {
				d.markedDecl(s, decl)
			}
		}
	}
}

func (d *detector) exported(n ast.Node) {
	switch e := astutil.Unwrap(n).(type) {
	case *ast.ObjectExpression:
		d.add(&Descriptor{Node: e, Type: TypeExportDefault, Exported: true})

	case *ast.ArrowFunctionExpression, *ast.FunctionExpression, *ast.FunctionDeclaration:
		d.add(&Descriptor{Node: e, Type: TypeExportDefault, Exported: true, Functional: true})

	case *ast.CallExpression:
		if desc := d.call(e); desc != nil {
			desc.Exported = true
		}
	}
}

func (d *detector) markedDecl(stmt ast.Node, decl *ast.VariableDeclaration) {
	if !d.hasMarker(stmt) {
		return
	}

	for _, v := range decl.Declarations {
		if obj, ok := astutil.ObjectOf(v.Init); ok {
			d.add(&Descriptor{Node: obj, Type: TypeMarked})
		}
	}
}

// calls finds library calls and marked objects anywhere in the script.
func (d *detector) calls() {
	ast.Inspect(d.f.Program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpression:
			d.call(n)

		case *ast.NewExpression:
			if astutil.CalleeName(n.Callee) == "Kdu" && len(n.Arguments) > 0 {
				if obj, ok := astutil.ObjectOf(n.Arguments[0]); ok {
					d.add(&Descriptor{Node: obj, Type: TypeMarked, Call: n})
				}
			}

		case *ast.ObjectExpression:
			if d.hasMarker(n) {
				d.add(&Descriptor{Node: n, Type: TypeMarked})
			}
		}

		return true
	})
}

// call records the component defined by a library call, if any.
func (d *detector) call(call *ast.CallExpression) *Descriptor {
	name := astutil.CalleeName(call.Callee)

	switch {
	case definers[name]:
		if len(call.Arguments) == 0 {
			return nil
		}

		switch arg := astutil.Unwrap(call.Arguments[0]).(type) {
		case *ast.ObjectExpression:
			return d.add(&Descriptor{Node: arg, Type: TypeMarked, Call: call})

		case *ast.ArrowFunctionExpression, *ast.FunctionExpression:
			if name == "defineComponent" {
				return d.add(&Descriptor{Node: arg, Type: TypeMarked, Call: call})
			}
		}

	case isRegistration(call, "component"):
		if len(call.Arguments) < 2 {
			return nil
		}

		if obj, ok := astutil.ObjectOf(call.Arguments[1]); ok {
			reg, _ := astutil.StringValue(call.Arguments[0])

			return d.add(&Descriptor{Node: obj, Type: TypeDefinition, Call: call, Name: reg})
		}

	case isRegistration(call, "mixin"):
		if len(call.Arguments) == 0 {
			return nil
		}

		if obj, ok := astutil.ObjectOf(call.Arguments[0]); ok {
			return d.add(&Descriptor{Node: obj, Type: TypeDefinition, Call: call, Mixin: true})
		}
	}

	return nil
}

// isRegistration matches `Kdu.<method>(...)`, `app.<method>(...)` and
// `createApp(...).<method>(...)`.
func isRegistration(call *ast.CallExpression, method string) bool {
	m, ok := astutil.Unwrap(call.Callee).(*ast.MemberExpression)
	if !ok {
		return false
	}

	if name, ok := astutil.MemberName(m); !ok || name != method {
		return false
	}

	switch recv := astutil.Unwrap(m.Object).(type) {
	case *ast.Identifier:
		return recv.Name == "Kdu" || recv.Name == "app"

	case *ast.CallExpression:
		return astutil.CalleeName(recv.Callee) == "createApp"
	}

	return false
}

// setup builds the descriptor of a <script setup> block.
func (d *detector) setup() {
	block, ok := d.f.SetupScript()
	if !ok {
		return
	}

	desc := &Descriptor{
		Node: d.f.Program,
		Type: TypeSetupScript,
		pos:  block.Content.From,
		end:  block.Content.To,
	}

	targets := make(map[ast.Node]ast.Node)             // macro call or wrapper -> binding pattern
	wrappers := make(map[ast.Node]*ast.CallExpression) // defineProps call -> withDefaults call

	for _, stmt := range d.f.Program.Body {
		if !desc.Contains(stmt.Pos()) {
			continue
		}

		if v, ok := stmt.(*ast.VariableDeclaration); ok {
			for _, decl := range v.Declarations {
				if decl.Init != nil {
					targets[astutil.Unwrap(decl.Init)] = decl.ID
				}
			}
		}

		ast.Inspect(stmt, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.ArrowFunctionExpression, *ast.FunctionExpression, *ast.FunctionDeclaration,
				*ast.ClassExpression, *ast.ClassDeclaration:
				return false

			case *ast.CallExpression:
				name := astutil.CalleeName(n.Callee)
				if !macros[name] {
					return true
				}

				if name == "withDefaults" {
					if len(n.Arguments) > 0 {
						wrappers[astutil.Unwrap(n.Arguments[0])] = n
					}

					return true
				}

				m := &Macro{Name: name, Call: n, Target: targets[n], Wrapper: wrappers[n]}
				if m.Wrapper != nil {
					m.Target = targets[m.Wrapper]
				}

				if name == "defineOptions" && len(n.Arguments) > 0 {
					desc.Options, _ = astutil.ObjectOf(n.Arguments[0])
				}

				desc.Macros = append(desc.Macros, m)
			}

			return true
		})
	}

	d.add(desc)
	d.set.setup = desc
}

// children records inline components and mixins of an option object.
func (d *detector) children(parent *Descriptor) {
	obj := parent.Object()
	if obj == nil || parent.Type == TypeSetupScript {
		return
	}

	if p := astutil.FindProperty(obj, "components"); p != nil {
		for name, c := range astutil.Properties(asObject(p.Value)) {
			if child, ok := astutil.ObjectOf(c.Value); ok {
				desc := d.add(&Descriptor{Node: child, Type: TypeDefinition, Name: name, Parent: parent})
				d.children(desc)
			}
		}
	}

	var mixins []ast.Node

	if p := astutil.FindProperty(obj, "mixins"); p != nil {
		if arr, ok := astutil.Unwrap(p.Value).(*ast.ArrayExpression); ok {
			mixins = append(mixins, arr.Elements...)
		}
	}

	if p := astutil.FindProperty(obj, "extends"); p != nil {
		mixins = append(mixins, p.Value)
	}

	for _, m := range mixins {
		if child, ok := astutil.ObjectOf(m); ok {
			desc := d.add(&Descriptor{Node: child, Type: TypeDefinition, Mixin: true, Parent: parent})
			d.children(desc)
		}
	}
}

func asObject(n ast.Node) *ast.ObjectExpression {
	obj, _ := astutil.ObjectOf(n)

	return obj
}

// link sorts the descriptors, assigns missing parents and picks the main
// component.
func (d *detector) link() {
	s := d.set

	slices.SortStableFunc(s.all, func(a, b *Descriptor) int { return cmp.Compare(a.pos, b.pos) })

	for _, desc := range s.all {
		if desc.Parent != nil || desc.Type == TypeSetupScript {
			continue
		}

		for _, outer := range s.all {
			if outer == desc || outer.Type == TypeSetupScript ||
				!outer.Contains(desc.pos) || desc.end > outer.end {
				continue
			}

			if desc.Parent == nil || outer.pos >= desc.Parent.pos {
				desc.Parent = outer
			}
		}
	}

	for _, desc := range s.all {
		if desc.Exported || desc.Type == TypeSetupScript {
			s.main = desc

			return
		}
	}

	for _, desc := range s.all {
		if desc.Parent == nil {
			s.main = desc

			return
		}
	}
}
