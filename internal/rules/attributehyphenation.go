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
	"strings"
	"unicode"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/casing"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
)

// AttributeHyphenation enforces hyphenated or camelCase attribute names on
// custom components.
var AttributeHyphenation = &rule.Rule{
	Meta: rule.Meta{
		Name:        "attribute-hyphenation",
		Description: "enforce attribute naming style on custom components in template",
		Default:     config.SeverityWarn,
		Fixable:     true,
		Schema: `{
  "type": "array",
  "items": [
    {"enum": ["always", "never"]},
    {
      "type": "object",
      "properties": {
        "ignore": {"type": "array", "items": {"type": "string"}, "uniqueItems": true},
        "ignoreTags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
      },
      "additionalProperties": false
    }
  ],
  "additionalItems": false
}`,
		Messages: map[string]string{
			"mustBeHyphenated":   "Attribute '{{text}}' must be hyphenated.",
			"cannotBeHyphenated": "Attribute '{{text}}' can't be hyphenated.",
		},
	},
	Parse:  parseHyphenation,
	Create: createHyphenation,
}

type hyphenationOptions struct {
	Never      bool     `json:"-"`
	Ignore     []string `json:"ignore"`
	IgnoreTags []string `json:"ignoreTags"`
}

func parseHyphenation(raw []any) (any, error) {
	o := &hyphenationOptions{}

	if len(raw) > 0 {
		o.Never = raw[0] == "never"
	}

	if len(raw) > 1 {
		if err := config.Decode(raw[1], o); err != nil {
			return &hyphenationOptions{Never: o.Never}, err
		}
	}

	return o, nil
}

func (o *hyphenationOptions) ignored(name string) bool {
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return true
	}

	return slices.ContainsFunc(o.Ignore, func(ignore string) bool { return strings.Contains(name, ignore) })
}

func (o *hyphenationOptions) valid(name string) bool {
	if o.Never {
		return !strings.Contains(name, "-")
	}

	return !strings.ContainsFunc(name, unicode.IsUpper)
}

func createHyphenation(ctx *rule.Context) *rule.Visitor {
	o := rule.OptionsOf[*hyphenationOptions](ctx)

	return rule.NewVisitor().Template(func(c inspector.Cursor) {
		el := c.Node().(*ast.Element)
		if el.StartTag == nil || !astutil.IsCustomComponent(el) || slices.Contains(o.IgnoreTags, el.RawName) {
			return
		}

		for _, a := range el.StartTag.Attributes {
			key, name := hyphenationName(a)
			if name == nil || o.ignored(name.RawName) || o.valid(name.RawName) {
				continue
			}

			messageID := "mustBeHyphenated"
			if o.Never {
				messageID = "cannotBeHyphenated"
			}

			ctx.Report(report.Descriptor{
				Node:      key,
				MessageID: messageID,
				Data:      map[string]string{"text": ctx.AST.Text(key)},
				Fix:       hyphenationFix(o, name),
			})
		}
	}, ast.KindElement)
}

// hyphenationName returns the key and the checked name of a static
// attribute or a k-bind or k-model directive with a static argument.
func hyphenationName(a ast.Node) (ast.Node, *ast.AttrName) {
	switch a := a.(type) {
	case *ast.Attribute:
		return a.Key, a.Key

	case *ast.Directive:
		switch a.Key.Name.Name {
		case "bind", "model":
			if arg, ok := a.Key.Argument.(*ast.AttrName); ok {
				return a.Key, arg
			}
		}
	}

	return nil, nil
}

func hyphenationFix(o *hyphenationOptions, name *ast.AttrName) report.FixFunc {
	if strings.Contains(name.RawName, "_") {
		return nil
	}

	return func(fx *report.Fixer) []analysis.TextEdit {
		converted := casing.Kebab(name.RawName)
		if o.Never {
			converted = casing.Camel(name.RawName)
		}

		return []analysis.TextEdit{fx.ReplaceText(name, converted)}
	}
}
