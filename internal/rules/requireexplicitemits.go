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
	"fillmore-labs.com/kdulint/internal/casing"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// RequireExplicitEmits requires emitted events to be declared.
var RequireExplicitEmits = &rule.Rule{
	Meta: rule.Meta{
		Name:        "require-explicit-emits",
		Description: "require `emits` option with name triggered by `$emit()`",
		Default:     config.SeverityError,
		Messages: map[string]string{
			"missing":      "The \"{{name}}\" event has been triggered but not declared on `emits` option.",
			"missingSetup": "The \"{{name}}\" event has been triggered but not declared on `defineEmits`.",
		},
	},
	Create: createExplicitEmits,
}

type explicitEmits struct {
	ctx      *rule.Context
	declared []string
	setup    bool
}

func createExplicitEmits(ctx *rule.Context) *rule.Visitor {
	primary := ctx.Components().Primary()
	if len(primary) == 0 {
		return nil
	}

	r := &explicitEmits{ctx: ctx, setup: ctx.Components().Setup() != nil}

	for _, d := range primary {
		for _, e := range ctx.Emits(d) {
			if !e.Known {
				return nil
			}

			r.declared = append(r.declared, e.Name)
		}

		for _, p := range ctx.Props(d) {
			if name, ok := strings.CutPrefix(p.Name, "on"); ok && p.Known && name != "" {
				r.declared = append(r.declared, name)
			}
		}
	}

	return rule.NewVisitor().
		Template(r.call(isTemplateEmit), ast.KindCallExpression).
		Script(r.call(r.isScriptEmit), ast.KindCallExpression)
}

func isTemplateEmit(call *ast.CallExpression) bool {
	return astutil.CalleeName(call.Callee) == "$emit"
}

func (r *explicitEmits) isScriptEmit(call *ast.CallExpression) bool {
	d := r.ctx.Components().Enclosing(call.Pos())
	if d == nil || d.Parent != nil {
		return false
	}

	switch name := astutil.CalleeName(call.Callee); {
	case name == "this.$emit":
		return d.Type != component.TypeSetupScript

	case name == "emit", strings.HasSuffix(name, ".emit"):
		return true

	default:
		return false
	}
}

func (r *explicitEmits) call(isEmit func(*ast.CallExpression) bool) rule.Handler {
	return func(c inspector.Cursor) {
		call := c.Node().(*ast.CallExpression)
		if len(call.Arguments) == 0 || !isEmit(call) {
			return
		}

		name, ok := astutil.StringValue(call.Arguments[0])
		if !ok || r.isDeclared(name) {
			return
		}

		messageID := "missing"
		if r.setup {
			messageID = "missingSetup"
		}

		r.ctx.Report(report.Descriptor{
			Node:      call.Arguments[0],
			MessageID: messageID,
			Data:      map[string]string{"name": name},
		})
	}
}

func (r *explicitEmits) isDeclared(name string) bool {
	for _, d := range r.declared {
		if d == name || casing.Camel(d) == casing.Camel(name) {
			return true
		}
	}

	return false
}
