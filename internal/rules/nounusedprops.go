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
	"strings"

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

// NoUnusedProps disallows props that are never read.
var NoUnusedProps = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-unused-props",
		Description: "disallow unused props",
		Default:     config.SeverityWarn,
		Messages: map[string]string{
			"unused": "'{{name}}' of property found, but never used.",
		},
	},
	Create: createUnusedProps,
}

type unusedProps struct {
	ctx  *rule.Context
	used map[string]bool
	all  bool // the props object escapes, every prop counts as used

	// aliases are props objects (leaf nil) and destructured props.
	aliases map[*scope.Variable]*mutation.Leaf
}

func createUnusedProps(ctx *rule.Context) *rule.Visitor {
	if ctx.AST.HasTemplateErrors() || len(primaryProps(ctx.File)) == 0 {
		return nil
	}

	r := &unusedProps{
		ctx:     ctx,
		used:    make(map[string]bool),
		aliases: make(map[*scope.Variable]*mutation.Leaf),
	}

	for _, d := range ctx.Components().Primary() {
		for _, obj := range propsObjects(d) {
			r.alias(obj)
		}
	}

	return rule.NewVisitor().
		Template(r.container, ast.KindExpressionContainer).
		Script(r.member, ast.KindMemberExpression).
		Script(r.declarator, ast.KindVariableDeclarator).
		Done(r.done)
}

func (r *unusedProps) alias(pattern ast.Node) {
	if id, ok := pattern.(*ast.Identifier); ok {
		if v, ok := r.ctx.Scopes().VariableOf(id); ok {
			r.aliases[v] = nil
		}

		return
	}

	for _, leaf := range mutation.Leaves(pattern) {
		if v, ok := r.ctx.Scopes().VariableOf(leaf.ID); ok {
			r.aliases[v] = &leaf
		}
	}
}

// useAlias records a read of a props alias at identifier id.
func (r *unusedProps) useAlias(id ast.Node, leaf *mutation.Leaf) {
	switch {
	case leaf == nil:
		r.useObject(id)

	case leaf.Rest:
		r.all = true

	case len(leaf.Path) > 0:
		r.used[leaf.Path[0]] = true
	}
}

// useObject records a use of an expression evaluating to the props object.
func (r *unusedProps) useObject(n ast.Node) {
	c, ok := r.ctx.Cursor(n)
	if !ok {
		r.all = true

		return
	}

	if m, ok := c.Parent().Node().(*ast.MemberExpression); ok && m.Object == n {
		if name, ok := astutil.MemberName(m); ok {
			r.used[name] = true

			return
		}
	}

	r.all = true
}

func (r *unusedProps) container(c inspector.Cursor) {
	r.references(c.Node().(*ast.ExpressionContainer).References)
}

func (r *unusedProps) references(refs []*ast.Reference) {
	for _, ref := range refs {
		if ref.ID.Name == "$props" {
			r.useObject(ref.ID)

			continue
		}

		res := r.ctx.Resolver().Reference(ref)
		if res.Kind != resolve.KindScriptBinding {
			continue
		}

		if leaf, ok := r.aliases[res.Binding.Variable]; ok {
			r.useAlias(ref.ID, leaf)

			continue
		}

		if res.Binding.Group == property.GroupProps {
			r.used[res.Binding.Name] = true
		}
	}
}

func (r *unusedProps) member(c inspector.Cursor) {
	m := c.Node().(*ast.MemberExpression)
	if !astutil.IsThis(m.Object) {
		return
	}

	if d := r.ctx.Components().Enclosing(m.Pos()); d == nil || d.Parent != nil {
		return
	}

	name, ok := astutil.MemberName(m)
	switch {
	case !ok:
		r.all = true

	case name == "$props":
		r.useObject(m)

	default:
		r.used[name] = true
	}
}

func (r *unusedProps) declarator(c inspector.Cursor) {
	decl := c.Node().(*ast.VariableDeclarator)
	if decl.Init == nil || !isThisProps(decl.Init) {
		return
	}

	if _, ok := decl.ID.(*ast.Identifier); ok {
		if astutil.IsThis(decl.Init) {
			return
		}

		r.all = true

		return
	}

	for _, leaf := range mutation.Leaves(decl.ID) {
		r.useAlias(leaf.ID, &leaf)
	}
}

func (r *unusedProps) done() {
	for v, leaf := range r.aliases {
		for _, ref := range v.References {
			if ref.IsRead() {
				r.useAlias(ref.Identifier, leaf)
			}
		}
	}

	for _, sv := range r.ctx.StyleVariables() {
		r.references(sv.Container.References)
	}

	for _, d := range r.ctx.Components().Primary() {
		for m := range property.Members(r.ctx.AST, d, property.GroupWatch) {
			name, _, _ := strings.Cut(m.Name, ".")
			r.used[name] = true
		}
	}

	if r.all {
		return
	}

	for _, d := range r.ctx.Components().Primary() {
		r.report(d)
	}
}

func (r *unusedProps) report(d *component.Descriptor) {
	for _, p := range r.ctx.Props(d) {
		if !p.Known || r.used[p.Name] {
			continue
		}

		node := p.Key
		if node == nil {
			node = p.Node
		}

		r.ctx.Report(report.Descriptor{
			Node:      node,
			MessageID: "unused",
			Data:      map[string]string{"name": p.Name},
		})
	}
}
