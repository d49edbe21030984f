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

package rules

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/mutation"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/resolve"
	"fillmore-labs.com/kdulint/internal/rule"
	"fillmore-labs.com/kdulint/internal/scope"
)

// NoMutatingProps disallows mutation of component props.
var NoMutatingProps = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-mutating-props",
		Description: "disallow mutation of component props",
		Default:     config.SeverityError,
		Messages: map[string]string{
			"unexpectedMutation": `Unexpected mutation of "{{key}}" prop.`,
		},
	},
	Create: createMutatingProps,
}

type mutatingProps struct {
	ctx      *rule.Context
	reported map[ast.Node]bool
	// aliases maps script variables holding the props object or a
	// destructured part of it.
	aliases map[*scope.Variable]alias
}

// alias is a script variable bound to the props object (leaf nil) or to
// a destructuring leaf of it.
type alias struct {
	props map[string]bool
	leaf  *mutation.Leaf
}

func createMutatingProps(ctx *rule.Context) *rule.Visitor {
	r := &mutatingProps{
		ctx:      ctx,
		reported: make(map[ast.Node]bool),
		aliases:  make(map[*scope.Variable]alias),
	}

	for _, d := range ctx.Components().All() {
		props := propNames(ctx.File, d)
		if len(props) == 0 {
			continue
		}

		for _, obj := range propsObjects(d) {
			r.bind(obj, props)
		}
	}

	return rule.NewVisitor().
		Template(r.container, ast.KindExpressionContainer).
		Template(r.model, ast.KindDirective).
		Script(r.this, ast.KindThisExpression).
		Script(r.declarator, ast.KindVariableDeclarator).
		Done(r.checkAliases)
}

// bind records the variables of a props object binding.
func (r *mutatingProps) bind(pattern ast.Node, props map[string]bool) {
	if id, ok := pattern.(*ast.Identifier); ok {
		if v, ok := r.ctx.Scopes().VariableOf(id); ok {
			r.aliases[v] = alias{props: props}
		}

		return
	}

	for _, leaf := range mutation.Leaves(pattern) {
		if v, ok := r.ctx.Scopes().VariableOf(leaf.ID); ok {
			r.aliases[v] = alias{props: props, leaf: &leaf}
		}
	}
}

func (r *mutatingProps) report(n ast.Node, name string) {
	if r.reported[n] {
		return
	}

	r.reported[n] = true

	r.ctx.Report(report.Descriptor{
		Node:      n,
		MessageID: "unexpectedMutation",
		Data:      map[string]string{"key": name},
	})
}

// target returns the prop a mutation modifies when the mutated value is
// reached through a props alias.
func (a alias) target(m *mutation.Mutation) (string, bool) {
	if a.leaf != nil {
		if !a.leaf.Reaches(m) {
			return "", false
		}

		name, ok := a.leaf.Source(m)

		return name, ok && a.props[name]
	}

	if len(m.Path) == 0 {
		return "", false
	}

	name, ok := astutil.MemberName(m.Path[0])

	return name, ok && a.props[name]
}

// checkAliases reports mutations through script props aliases.
func (r *mutatingProps) checkAliases() {
	for v, a := range r.aliases {
		for _, ref := range v.References {
			if ref.Init {
				continue
			}

			m, ok := mutation.Find(r.ctx.Inspector, ref.Identifier)
			if !ok {
				continue
			}

			if name, ok := a.target(m); ok {
				r.report(m.Node, name)
			}
		}
	}
}

// container checks template references to props and props aliases.
func (r *mutatingProps) container(c inspector.Cursor) {
	ec := c.Node().(*ast.ExpressionContainer)

	for _, ref := range ec.References {
		res := r.ctx.Resolver().Reference(ref)
		if res.Kind != resolve.KindScriptBinding {
			continue
		}

		m, ok := mutation.Find(r.ctx.Inspector, ref.ID)
		if !ok {
			continue
		}

		b := res.Binding

		switch a, ok := r.aliases[b.Variable]; {
		case ok:
			if a.leaf != nil && !a.leaf.Rest {
				r.report(m.Node, a.leaf.Path[0])
			} else if name, ok := a.target(m); ok {
				r.report(m.Node, name)
			}

		case b.Group == property.GroupProps:
			r.report(m.Node, b.Name)
		}
	}
}

// model checks k-model bindings of props.
func (r *mutatingProps) model(c inspector.Cursor) {
	d := c.Node().(*ast.Directive)
	if d.Key.Name.Name != "model" || d.Value == nil || d.Value.Expression == nil {
		return
	}

	root := astutil.Unwrap(d.Value.Expression)
	for m, ok := root.(*ast.MemberExpression); ok; m, ok = root.(*ast.MemberExpression) {
		root = astutil.Unwrap(m.Object)
	}

	id, ok := root.(*ast.Identifier)
	if !ok {
		return
	}

	for _, ref := range d.Value.References {
		if ref.ID != id {
			continue
		}

		res := r.ctx.Resolver().Reference(ref)
		if res.Kind == resolve.KindScriptBinding && res.Binding.Group == property.GroupProps {
			r.report(d, res.Binding.Name)
		}
	}
}

// this checks `this.prop` mutations in option components.
func (r *mutatingProps) this(c inspector.Cursor) {
	d := r.ctx.Components().Enclosing(c.Node().Pos())
	if d == nil || d.Type == component.TypeSetupScript {
		return
	}

	props := propNames(r.ctx.File, d)
	if len(props) == 0 {
		return
	}

	m, ok := mutation.Find(r.ctx.Inspector, c.Node())
	if !ok || len(m.Path) == 0 {
		return
	}

	path := m.Path
	if name, _ := astutil.MemberName(path[0]); name == "$props" {
		path = path[1:]
	}

	if len(path) == 0 {
		return
	}

	if name, ok := astutil.MemberName(path[0]); ok && props[name] {
		r.report(m.Node, name)
	}
}

// declarator records destructuring of `this` and `this.$props`.
func (r *mutatingProps) declarator(c inspector.Cursor) {
	decl := c.Node().(*ast.VariableDeclarator)
	if decl.Init == nil || !isThisProps(decl.Init) {
		return
	}

	if _, ok := decl.ID.(*ast.Identifier); ok {
		return
	}

	props := propNames(r.ctx.File, r.ctx.Components().Enclosing(decl.Pos()))
	if len(props) > 0 {
		r.bind(decl.ID, props)
	}
}
