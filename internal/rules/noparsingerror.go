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
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoParsingError reports syntax errors in the template. Script syntax
// errors are reported by the runner for every file.
var NoParsingError = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-parsing-error",
		Description: "disallow parsing errors in <template>",
		Default:     config.SeverityError,
		Messages: map[string]string{
			"parsingError": "Parsing error: {{message}}.",
		},
		ParseErrors: true,
	},
	Create: func(ctx *rule.Context) *rule.Visitor {
		if !ctx.AST.HasTemplateErrors() {
			return nil
		}

		return rule.NewVisitor().Done(func() {
			for _, e := range ctx.AST.TemplateErrors {
				ctx.Report(report.Descriptor{
					Pos:       e.Pos,
					End:       e.Pos,
					MessageID: "parsingError",
					Data:      map[string]string{"message": e.Msg},
				})
			}
		})
	},
}
