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
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoDupeKeys disallows duplicate member names across option groups.
var NoDupeKeys = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-dupe-keys",
		Description: "disallow duplication of field names",
		Default:     config.SeverityError,
		Messages: map[string]string{
			"duplicateKey": "Duplicate key '{{name}}' in {{groups}}. May cause name collision in script or template tag.",
		},
	},
	Create: func(ctx *rule.Context) *rule.Visitor {
		return rule.NewVisitor().Done(func() {
			for _, d := range ctx.Components().All() {
				dupeKeys(ctx, d)
			}
		})
	},
}

// dupeGroups are the groups sharing the instance namespace.
var dupeGroups = []property.Group{
	property.GroupProps, property.GroupData, property.GroupComputed,
	property.GroupMethods, property.GroupSetup, property.GroupInject,
}

func dupeKeys(ctx *rule.Context, d *component.Descriptor) {
	destructured := propsDestructuring(d)
	first := make(map[string]property.Member)

	for m := range property.Members(ctx.AST, d, dupeGroups...) {
		if m.Group == property.GroupSetup && destructured(m.Node) {
			continue
		}

		prev, ok := first[m.Name]
		if !ok {
			first[m.Name] = m

			continue
		}

		groups := []string{string(prev.Group)}
		if m.Group != prev.Group {
			groups = append(groups, string(m.Group))
		}

		ctx.Report(report.Descriptor{
			Node:      m.Node,
			MessageID: "duplicateKey",
			Data:      map[string]string{"name": m.Name, "groups": report.Names(groups)},
			Related: []analysis.RelatedInformation{{
				Pos:     prev.Node.Pos(),
				End:     prev.Node.End(),
				Message: "first declared here",
			}},
		})
	}
}

// propsDestructuring reports whether a script setup binding is part of a
// destructured defineProps result, which aliases the prop.
func propsDestructuring(d *component.Descriptor) func(ast.Node) bool {
	var targets []ast.Node

	for _, m := range d.MacrosNamed("defineProps") {
		if m.Target != nil {
			if _, ok := m.Target.(*ast.Identifier); !ok {
				targets = append(targets, m.Target)
			}
		}
	}

	return func(n ast.Node) bool {
		for _, t := range targets {
			if t.Pos() <= n.Pos() && n.End() <= t.End() {
				return true
			}
		}

		return false
	}
}
