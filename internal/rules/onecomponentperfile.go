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
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// OneComponentPerFile enforces that each component is in its own file.
var OneComponentPerFile = &rule.Rule{
	Meta: rule.Meta{
		Name:        "one-component-per-file",
		Description: "enforce that each component should be in its own file",
		Default:     config.SeverityWarn,
		Messages: map[string]string{
			"onlyOneComponent": "There is more than one component in this file.",
		},
	},
	Create: func(ctx *rule.Context) *rule.Visitor {
		return rule.NewVisitor().Done(func() {
			var components []*component.Descriptor

			for _, d := range ctx.Components().All() {
				// The script setup block and the default export form one component.
				if d.Parent == nil && !d.Mixin && d.Type != component.TypeSetupScript {
					components = append(components, d)
				}
			}

			if len(components) <= 1 {
				return
			}

			for _, d := range components {
				ctx.Report(report.Descriptor{Node: d.Node, MessageID: "onlyOneComponent"})
			}
		})
	},
}
