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

package scope

import (
	"cmp"
	"slices"

	"fillmore-labs.com/kdulint/internal/ast"
)

// Analyze computes the scopes of a script tree. A [*ast.Program] root yields
// a module scope, any other node an expression scope whose through
// references are the free identifiers of the expression.
func Analyze(root ast.Node) *Manager {
	m := &Manager{
		scopes: make(map[ast.Node]*Scope),
		vars:   make(map[*ast.Identifier]*Variable),
		refs:   make(map[*ast.Identifier]*Reference),
	}

	a := analyzer{m: m}

	if p, ok := root.(*ast.Program); ok {
		a.push(TypeModule, p)
		a.statements(p.Body)
	} else {
		a.push(TypeExpression, root)
		a.visit(root)
	}

	m.root = a.cur
	a.resolve()

	return m
}

type analyzer struct {
	m   *Manager
	cur *Scope
}

func (a *analyzer) push(typ Type, block ast.Node) {
	s := &Scope{Type: typ, Block: block, Upper: a.cur, set: make(map[string]*Variable)}
	if a.cur != nil {
		a.cur.Children = append(a.cur.Children, s)
	}

	a.m.scopes[block] = s
	a.cur = s
}

func (a *analyzer) pop() {
	if a.cur.Upper != nil {
		a.cur = a.cur.Upper
	}
}

func (a *analyzer) declare(s *Scope, id *ast.Identifier, def Definition) {
	if id == nil || id.Name == "this" {
		return
	}

	def.Name = id
	a.m.vars[id] = s.declare(id, def)
}

func (a *analyzer) ref(id *ast.Identifier, mode ast.ReferenceMode, init bool, write ast.Node) {
	r := &Reference{Identifier: id, From: a.cur, Mode: mode, Init: init, WriteExpr: write}
	a.cur.References = append(a.cur.References, r)
	a.m.refs[id] = r
}

func (a *analyzer) statements(list []ast.Node) {
	for _, s := range list {
		a.visit(s)
	}
}

//nolint:gocyclo,cyclop,funlen
func (a *analyzer) visit(n ast.Node) {
	switch n := n.(type) {
	case nil:

	case *ast.Identifier:
		a.ref(n, ast.Read, false, nil)

	case *ast.PrivateIdentifier, *ast.ThisExpression, *ast.Super, *ast.Literal, *ast.MetaProperty,
		*ast.BreakStatement, *ast.ContinueStatement, *ast.ExportAllDeclaration:

	case *ast.MemberExpression:
		a.visit(n.Object)
		if n.Computed {
			a.visit(n.Property)
		}

	case *ast.Property:
		if n.Computed {
			a.visit(n.Key)
		}
		a.visit(n.Value)

	case *ast.MethodDefinition:
		if n.Computed {
			a.visit(n.Key)
		}
		a.visit(n.Value)

	case *ast.PropertyDefinition:
		if n.Computed {
			a.visit(n.Key)
		}

		if n.Value != nil {
			a.push(TypeFunction, n)
			a.visit(n.Value)
			a.pop()
		}

	case *ast.StaticBlock:
		a.push(TypeFunction, n)
		a.statements(n.Body)
		a.pop()

	case *ast.FunctionDeclaration:
		a.declare(a.cur, n.ID, Definition{Kind: DefFunctionName, Node: n})
		a.function(n, &n.Func, false)

	case *ast.FunctionExpression:
		a.function(n, &n.Func, true)

	case *ast.ArrowFunctionExpression:
		a.function(n, &n.Func, false)

	case *ast.ClassDeclaration:
		a.declare(a.cur, n.ID, Definition{Kind: DefClassName, Node: n})
		a.class(n, &n.Class, false)

	case *ast.ClassExpression:
		a.class(n, &n.Class, true)

	case *ast.VariableDeclaration:
		a.variables(n)

	case *ast.BlockStatement:
		a.push(TypeBlock, n)
		a.statements(n.Body)
		a.pop()

	case *ast.ForStatement:
		a.push(TypeFor, n)
		a.visit(n.Init)
		a.visit(n.Test)
		a.visit(n.Update)
		a.visit(n.Body)
		a.pop()

	case *ast.ForInStatement:
		a.forIn(n, n.Left, n.Right, n.Body)

	case *ast.ForOfStatement:
		a.forIn(n, n.Left, n.Right, n.Body)

	case *ast.SwitchStatement:
		a.visit(n.Discriminant)
		a.push(TypeSwitch, n)
		for _, c := range n.Cases {
			a.visit(c.Test)
			a.statements(c.Consequent)
		}
		a.pop()

	case *ast.CatchClause:
		a.push(TypeCatch, n)
		a.binding(n.Param, func(id *ast.Identifier) {
			a.declare(a.cur, id, Definition{Kind: DefCatchClause, Node: n})
		})

		if n.Body != nil {
			a.statements(n.Body.Body)
		}
		a.pop()

	case *ast.LabeledStatement:
		a.visit(n.Body)

	case *ast.AssignmentExpression:
		mode := ast.Write
		if n.Operator != "=" {
			mode = ast.ReadWrite
		}

		a.assign(n.Left, mode, n.Right)
		a.visit(n.Right)

	case *ast.UpdateExpression:
		if id, ok := n.Argument.(*ast.Identifier); ok {
			a.ref(id, ast.ReadWrite, false, nil)
		} else {
			a.visit(n.Argument)
		}

	case *ast.ImportDeclaration:
		for _, spec := range n.Specifiers {
			var local *ast.Identifier
			switch spec := spec.(type) {
			case *ast.ImportSpecifier:
				local = spec.Local
			case *ast.ImportDefaultSpecifier:
				local = spec.Local
			case *ast.ImportNamespaceSpecifier:
				local = spec.Local
			}

			a.declare(a.cur, local, Definition{Kind: DefImportBinding, Node: spec, Parent: n})
		}

	case *ast.ExportNamedDeclaration:
		a.visit(n.Declaration)

		if n.Source == nil {
			for _, spec := range n.Specifiers {
				if id, ok := spec.Local.(*ast.Identifier); ok {
					a.ref(id, ast.Read, false, nil)
				}
			}
		}

	case *ast.TSAsExpression:
		a.visit(n.Expression)

	case *ast.TSSatisfiesExpression:
		a.visit(n.Expression)

	case *ast.TSNonNullExpression:
		a.visit(n.Expression)

	default:
		if n.Kind().IsTypeScript() {
			return
		}

		for c := range ast.Children(n) {
			a.visit(c)
		}
	}
}

func (a *analyzer) function(n ast.Node, f *ast.Func, named bool) {
	a.push(TypeFunction, n)

	if named {
		a.declare(a.cur, f.ID, Definition{Kind: DefFunctionName, Node: n})
	}

	for _, p := range f.Params {
		a.binding(p, func(id *ast.Identifier) {
			a.declare(a.cur, id, Definition{Kind: DefParameter, Node: n})
		})
	}

	if body, ok := f.Body.(*ast.BlockStatement); ok {
		a.statements(body.Body)
	} else {
		a.visit(f.Body)
	}

	a.pop()
}

func (a *analyzer) class(n ast.Node, c *ast.Class, named bool) {
	a.visit(c.SuperClass)
	a.push(TypeClass, n)

	if named {
		a.declare(a.cur, c.ID, Definition{Kind: DefClassName, Node: n})
	}

	if c.Body != nil {
		a.statements(c.Body.Body)
	}

	a.pop()
}

func (a *analyzer) variables(d *ast.VariableDeclaration) {
	target, kind := a.cur, DefLet

	switch d.DeclKind {
	case "var":
		target, kind = a.cur.FunctionScope(), DefVar
	case "const":
		kind = DefConst
	}

	for _, decl := range d.Declarations {
		a.binding(decl.ID, func(id *ast.Identifier) {
			a.declare(target, id, Definition{Kind: kind, Node: decl, Parent: d})

			if decl.Init != nil {
				a.ref(id, ast.Write, true, decl.Init)
			}
		})
		a.visit(decl.Init)
	}
}

func (a *analyzer) forIn(n, left, right, body ast.Node) {
	a.push(TypeFor, n)

	if d, ok := left.(*ast.VariableDeclaration); ok {
		a.variables(d)

		for _, decl := range d.Declarations {
			a.binding(decl.ID, func(id *ast.Identifier) { a.ref(id, ast.Write, false, right) })
		}
	} else {
		a.assign(left, ast.Write, right)
	}

	a.visit(right)
	a.visit(body)
	a.pop()
}

// binding calls declare for every identifier bound by a pattern and visits default values.
func (a *analyzer) binding(n ast.Node, declare func(*ast.Identifier)) {
	switch n := n.(type) {
	case *ast.Identifier:
		declare(n)

	case *ast.AssignmentPattern:
		a.binding(n.Left, declare)
		a.visit(n.Right)

	case *ast.RestElement:
		a.binding(n.Argument, declare)

	case *ast.ArrayPattern:
		for _, e := range n.Elements {
			a.binding(e, declare)
		}

	case *ast.ObjectPattern:
		for _, p := range n.Properties {
			switch p := p.(type) {
			case *ast.Property:
				if p.Computed {
					a.visit(p.Key)
				}
				a.binding(p.Value, declare)

			default:
				a.binding(p, declare)
			}
		}
	}
}

// assign records write references for an assignment target.
func (a *analyzer) assign(target ast.Node, mode ast.ReferenceMode, value ast.Node) {
	switch t := target.(type) {
	case *ast.Identifier:
		a.ref(t, mode, false, value)

	case *ast.ArrayPattern, *ast.ObjectPattern, *ast.AssignmentPattern, *ast.RestElement:
		a.binding(t, func(id *ast.Identifier) { a.ref(id, ast.Write, false, value) })

	case *ast.ArrayExpression, *ast.ObjectExpression:
		for c := range ast.Children(t) {
			switch c := c.(type) {
			case *ast.Property:
				if c.Computed {
					a.visit(c.Key)
				}
				a.assign(c.Value, ast.Write, value)

			case *ast.SpreadElement:
				a.assign(c.Argument, ast.Write, value)

			default:
				a.assign(c, ast.Write, value)
			}
		}

	default:
		a.visit(t)
	}
}

func (a *analyzer) resolve() {
	for s := range a.m.Scopes() {
		for _, r := range s.References {
			for sc := s; sc != nil; sc = sc.Upper {
				if v, ok := sc.set[r.Identifier.Name]; ok {
					r.Resolved = v
					v.References = append(v.References, r)

					break
				}

				sc.Through = append(sc.Through, r)
			}
		}
	}

	byPos := func(x, y *Reference) int { return cmp.Compare(x.Identifier.Pos(), y.Identifier.Pos()) }

	for s := range a.m.Scopes() {
		slices.SortFunc(s.Through, byPos)

		for _, v := range s.Variables {
			slices.SortFunc(v.References, byPos)
		}
	}
}
