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
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// RequirePropTypes requires type definitions in props.
var RequirePropTypes = &rule.Rule{
	Meta: rule.Meta{
		Name:        "require-prop-types",
		Description: "require type definitions in props",
		Default:     config.SeverityWarn,
		Messages: map[string]string{
			"requireType": `Prop "{{name}}" should define at least its type.`,
		},
	},
	Create: func(ctx *rule.Context) *rule.Visitor {
		return rule.NewVisitor().Done(func() {
			for _, d := range ctx.Components().All() {
				for _, p := range ctx.Props(d) {
					if hasPropType(p) {
						continue
					}

					name := p.Name
					if !p.Known {
						name = ctx.AST.Text(p.Node)
					}

					ctx.Report(report.Descriptor{
						Node:      p.Node,
						MessageID: "requireType",
						Data:      map[string]string{"name": name},
					})
				}
			}
		})
	},
}

func hasPropType(p *property.Property) bool {
	switch p.Form {
	case property.FormArray:
		return false

	case property.FormObject:
		if _, ok := p.Node.(*ast.Property); !ok {
			return true // spread
		}

		if p.Type != nil {
			arr, ok := astutil.Unwrap(p.Type).(*ast.ArrayExpression)

			return !ok || len(arr.Elements) > 0
		}

		opts, ok := astutil.ObjectOf(p.Value)

		return ok && astutil.FindProperty(opts, "validator") != nil

	default:
		return true
	}
}
