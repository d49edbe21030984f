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
	"unicode"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoDeprecatedSlotAttribute disallows the deprecated `slot` attribute.
var NoDeprecatedSlotAttribute = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-deprecated-slot-attribute",
		Description: "disallow deprecated `slot` attribute",
		Default:     config.SeverityError,
		Fixable:     true,
		Schema: `{
  "type": "array",
  "items": [{
    "type": "object",
    "properties": {"ignore": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}},
    "additionalProperties": false
  }],
  "additionalItems": false
}`,
		Messages: map[string]string{
			"forbiddenSlotAttribute": "`slot` attributes are deprecated.",
		},
	},
	Parse: func(raw []any) (any, error) {
		o := &slotAttributeOptions{}
		if len(raw) == 0 {
			return o, nil
		}

		if err := config.Decode(raw[0], o); err != nil {
			return &slotAttributeOptions{}, err
		}

		return o, nil
	},
	Create: createSlotAttribute,
}

type slotAttributeOptions struct {
	Ignore []string `json:"ignore"`
}

func (o *slotAttributeOptions) ignored(el *ast.Element) bool {
	for _, name := range o.Ignore {
		if name == el.RawName || name == el.Name {
			return true
		}
	}

	return false
}

func createSlotAttribute(ctx *rule.Context) *rule.Visitor {
	o := rule.OptionsOf[*slotAttributeOptions](ctx)

	return rule.NewVisitor().Template(func(c inspector.Cursor) {
		el := c.Node().(*ast.Element)
		if el.StartTag == nil || o.ignored(el) {
			return
		}

		for _, a := range el.StartTag.Attributes {
			switch a := a.(type) {
			case *ast.Attribute:
				if a.Key.Name != "slot" {
					continue
				}

				ctx.Report(report.Descriptor{
					Node:      a.Key,
					MessageID: "forbiddenSlotAttribute",
					Fix:       slotFix(el, a),
				})

			case *ast.Directive:
				if arg, ok := a.Key.ArgumentName(); !ok || arg != "slot" || a.Key.Name.Name != "bind" {
					continue
				}

				ctx.Report(report.Descriptor{Node: a.Key, MessageID: "forbiddenSlotAttribute"})
			}
		}
	}, ast.KindElement)
}

// slotFix rewrites `slot="name"` on a <template> to `k-slot:name`, moving a
// slot-scope value along. It declines names that can't be written as a
// static directive argument.
func slotFix(el *ast.Element, slot *ast.Attribute) report.FixFunc {
	if el.Name != "template" || el.HasDirective("slot") {
		return nil
	}

	name := ""
	if slot.Value != nil {
		name = slot.Value.Value
	}

	if !plainSlotName(name) {
		return nil
	}

	var (
		scope      *ast.Directive
		prev, next ast.Node
	)

	attrs := el.StartTag.Attributes
	for i, a := range attrs {
		if d, ok := a.(*ast.Directive); ok && (d.Key.Name.Name == "slot-scope" || d.Key.Name.Name == "scope") {
			scope = d

			if i > 0 {
				prev = attrs[i-1]
			} else if i+1 < len(attrs) {
				next = attrs[i+1]
			}

			break
		}
	}

	return func(fx *report.Fixer) []analysis.TextEdit {
		text := "k-slot"
		if name != "" && name != "default" {
			text += ":" + name
		}

		if scope == nil {
			return []analysis.TextEdit{fx.ReplaceText(slot, text)}
		}

		if scope.Value != nil {
			text += "=" + fx.Text(scope.Value)
		}

		from, to := scope.Pos(), scope.End()

		switch {
		case prev != nil:
			from = prev.End()
		case next != nil:
			to = next.Pos()
		}

		return []analysis.TextEdit{
			fx.ReplaceText(slot, text),
			fx.RemoveRange(from, to),
		}
	}
}

func plainSlotName(name string) bool {
	if strings.HasPrefix(name, "-") {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '$' {
			return false
		}
	}

	return true
}
