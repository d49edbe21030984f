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

package parser

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/scope"
)

// resolver links the free identifiers of template expressions to the
// variables of enclosing elements.
type resolver struct {
	stack []*ast.Element
}

func resolveReferences(doc *ast.DocumentFragment) {
	var r resolver
	r.children(doc.Children)
}

func (r *resolver) children(list []ast.Node) {
	for _, c := range list {
		switch c := c.(type) {
		case *ast.Element:
			r.element(c)
		case *ast.ExpressionContainer:
			r.container(c, "")
		}
	}
}

func (r *resolver) element(el *ast.Element) {
	var rest []*ast.Directive

	for _, a := range el.StartTag.Attributes {
		d, ok := a.(*ast.Directive)
		if !ok {
			continue
		}

		if d.Key.Name.Name != "for" {
			rest = append(rest, d)

			continue
		}

		// the iterated source sees enclosing variables only
		r.container(d.Value, "for")

		if d.Value != nil {
			if fe, ok := d.Value.Expression.(*ast.ForExpression); ok {
				declare(el, ast.VariableFor, fe.Left)
			}
		}
	}

	for _, d := range rest {
		if d.Value == nil {
			continue
		}

		if ss, ok := d.Value.Expression.(*ast.SlotScopeExpression); ok {
			declare(el, ast.VariableScope, ss.Params)
		}
	}

	r.stack = append(r.stack, el)

	for _, d := range rest {
		if arg, ok := d.Key.Argument.(*ast.ExpressionContainer); ok {
			r.container(arg, "")
		}

		r.container(d.Value, d.Key.Name.Name)
	}

	r.children(el.Children)

	r.stack = r.stack[:len(r.stack)-1]
}

func declare(el *ast.Element, kind ast.VariableKind, params []ast.Node) {
	for _, p := range params {
		for id := range astutil.BindingIdentifiers(p) {
			el.Variables = append(el.Variables, &ast.Variable{ID: id, Kind: kind})
		}
	}
}

func (r *resolver) container(c *ast.ExpressionContainer, directive string) {
	if c == nil || c.Expression == nil {
		return
	}

	c.References = freeReferences(c.Expression, directive)

	for _, ref := range c.References {
		if v := r.lookup(ref.ID.Name); v != nil {
			ref.Variable = v
			v.References = append(v.References, ref)
		}
	}
}

// lookup finds the innermost template variable named name.
func (r *resolver) lookup(name string) *ast.Variable {
	for i := len(r.stack) - 1; i >= 0; i-- {
		vars := r.stack[i].Variables
		for j := len(vars) - 1; j >= 0; j-- {
			if vars[j].ID.Name == name {
				return vars[j]
			}
		}
	}

	return nil
}

// freeReferences returns the unresolved identifier references of a directive value.
func freeReferences(expr ast.Node, directive string) []*ast.Reference {
	var refs []*ast.Reference

	add := func(n ast.Node) {
		if n == nil {
			return
		}

		for _, r := range scope.Analyze(n).Module().Through {
			if directive == "on" && r.Identifier.Name == "$event" {
				continue
			}

			refs = append(refs, &ast.Reference{ID: r.Identifier, Mode: r.Mode})
		}
	}

	switch e := expr.(type) {
	case *ast.ForExpression:
		add(e.Right)
		add(params(e, e.Left, nil))

	case *ast.SlotScopeExpression:
		add(params(e, e.Params, nil))

	case *ast.OnExpression:
		add(params(e, nil, &ast.BlockStatement{Span: e.Span, Body: e.Body}))

	case *ast.FilterSequenceExpression:
		add(e.Expression)

		for _, f := range e.Filters {
			for _, a := range f.Arguments {
				add(a)
			}
		}

	case *ast.Identifier:
		add(e)

		if directive == "model" && len(refs) == 1 {
			refs[0].Mode = ast.ReadWrite
		}

	default:
		add(e)
	}

	return refs
}

// params wraps parameters and a body into a function so their bindings are scoped.
func params(at ast.Node, list []ast.Node, body ast.Node) ast.Node {
	return &ast.ArrowFunctionExpression{
		Span: ast.Span{From: at.Pos(), To: at.End()},
		Func: ast.Func{Params: list, Body: body},
	}
}
