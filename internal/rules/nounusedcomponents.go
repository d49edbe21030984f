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
	"slices"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/casing"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoUnusedComponents disallows registering components that are not used
// inside templates.
var NoUnusedComponents = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-unused-components",
		Description: "disallow registering components that are not used inside templates",
		Default:     config.SeverityError,
		Schema: `{
  "type": "array",
  "items": [{
    "type": "object",
    "properties": {"ignoreWhenBindingPresent": {"type": "boolean"}},
    "additionalProperties": false
  }],
  "additionalItems": false
}`,
		Messages: map[string]string{
			"unused": `The "{{name}}" component has been registered but not used.`,
		},
	},
	Parse: func(raw []any) (any, error) {
		o := &unusedComponentsOptions{IgnoreWhenBindingPresent: true}
		if len(raw) == 0 {
			return o, nil
		}

		if err := config.Decode(raw[0], o); err != nil {
			return &unusedComponentsOptions{IgnoreWhenBindingPresent: true}, err
		}

		return o, nil
	},
	Create: createUnusedComponents,
}

type unusedComponentsOptions struct {
	IgnoreWhenBindingPresent bool `json:"ignoreWhenBindingPresent"`
}

func createUnusedComponents(ctx *rule.Context) *rule.Visitor {
	o := rule.OptionsOf[*unusedComponentsOptions](ctx)

	var registered []*property.Registered
	for _, d := range ctx.Components().Primary() {
		registered = append(registered, property.Components(d)...)
	}

	if len(registered) == 0 || ctx.AST.TemplateBody == nil || ctx.AST.HasTemplateErrors() {
		return nil
	}

	var (
		used    []string
		dynamic bool
	)

	return rule.NewVisitor().
		Template(func(c inspector.Cursor) {
			el := c.Node().(*ast.Element)
			used = append(used, el.RawName)

			if is, ok := el.AttrValueOf("is"); ok {
				used = append(used, is)
			}

			for _, d := range []*ast.Directive{el.Directive("bind", "is"), el.Directive("is", "")} {
				if d == nil || d.Value == nil {
					continue
				}

				if name, ok := astutil.StringValue(d.Value.Expression); ok {
					used = append(used, name)
				} else {
					dynamic = true
				}
			}
		}, ast.KindElement).
		Done(func() {
			if dynamic && o.IgnoreWhenBindingPresent {
				return
			}

			for _, r := range registered {
				if slices.ContainsFunc(used, func(name string) bool { return casing.SameComponent(name, r.Name) }) {
					continue
				}

				ctx.Report(report.Descriptor{
					Node:      r.Node,
					MessageID: "unused",
					Data:      map[string]string{"name": r.Name},
				})
			}
		})
}
