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
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoTemplateShadow disallows template variables that shadow variables of an
// enclosing element or component members.
var NoTemplateShadow = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-template-shadow",
		Description: "disallow variable declarations from shadowing variables declared in the outer scope",
		Default:     config.SeverityError,
		Schema: `{
  "type": "array",
  "items": [{
    "type": "object",
    "properties": {"allow": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}},
    "additionalProperties": false
  }],
  "additionalItems": false
}`,
		Messages: map[string]string{
			"alreadyDeclaredInUpperScope": "Variable '{{name}}' is already declared in the upper scope.",
		},
	},
	Parse: func(raw []any) (any, error) {
		o := &templateShadowOptions{}
		if len(raw) == 0 {
			return o, nil
		}

		if err := config.Decode(raw[0], o); err != nil {
			return &templateShadowOptions{}, err
		}

		return o, nil
	},
	Create: createTemplateShadow,
}

type templateShadowOptions struct {
	Allow []string `json:"allow"`
}

// shadowGroups are the member groups visible as template names.
var shadowGroups = []property.Group{
	property.GroupProps, property.GroupData, property.GroupComputed,
	property.GroupMethods, property.GroupSetup, property.GroupInject,
}

func createTemplateShadow(ctx *rule.Context) *rule.Visitor {
	o := rule.OptionsOf[*templateShadowOptions](ctx)

	var scopes [][]*ast.Variable

	declared := func(name string) bool {
		for _, vars := range scopes {
			if slices.ContainsFunc(vars, func(v *ast.Variable) bool { return v.ID.Name == name }) {
				return true
			}
		}

		for _, b := range ctx.Resolver().Bindings() {
			if b.Name == name && slices.Contains(shadowGroups, b.Group) {
				return true
			}
		}

		return false
	}

	return rule.NewVisitor().
		Template(func(c inspector.Cursor) {
			el := c.Node().(*ast.Element)
			if len(el.Variables) == 0 {
				return
			}

			for _, v := range el.Variables {
				if slices.Contains(o.Allow, v.ID.Name) || !declared(v.ID.Name) {
					continue
				}

				ctx.Report(report.Descriptor{
					Node:      v.ID,
					MessageID: "alreadyDeclaredInUpperScope",
					Data:      map[string]string{"name": v.ID.Name},
				})
			}

			scopes = append(scopes, el.Variables)
		}, ast.KindElement).
		TemplateExit(func(c inspector.Cursor) {
			if el := c.Node().(*ast.Element); len(el.Variables) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
		}, ast.KindElement)
}
