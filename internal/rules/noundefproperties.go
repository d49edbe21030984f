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
	"regexp"
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/resolve"
	"fillmore-labs.com/kdulint/internal/rule"
)

// NoUndefProperties disallows template names and `this` members that
// resolve to nothing declared by the component.
var NoUndefProperties = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-undef-properties",
		Description: "disallow undefined properties",
		Default:     config.SeverityError,
		Schema: `{
  "type": "array",
  "items": [{
    "type": "object",
    "properties": {"ignores": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}},
    "additionalProperties": false
  }],
  "additionalItems": false
}`,
		Messages: map[string]string{
			"undef": "'{{name}}' is not defined.",
		},
	},
	Parse:  parseUndefProperties,
	Create: createUndefProperties,
}

type undefPropertiesOptions struct {
	Ignores []string `json:"ignores"`

	patterns []*regexp.Regexp
}

var defaultUndefIgnores = []string{`/^\$/`}

func parseUndefProperties(raw []any) (any, error) {
	o := &undefPropertiesOptions{}

	if len(raw) > 0 {
		if err := config.Decode(raw[0], o); err != nil {
			fallback := &undefPropertiesOptions{Ignores: defaultUndefIgnores}
			_ = fallback.compile()

			return fallback, err
		}
	}

	if o.Ignores == nil {
		o.Ignores = defaultUndefIgnores
	}

	return o, o.compile()
}

// compile turns `/re/` entries into regular expressions. Other entries
// match names literally.
func (o *undefPropertiesOptions) compile() error {
	for _, s := range o.Ignores {
		if len(s) < 2 || s[0] != '/' || strings.LastIndexByte(s, '/') == 0 {
			o.patterns = append(o.patterns, regexp.MustCompile("^"+regexp.QuoteMeta(s)+"$"))

			continue
		}

		i := strings.LastIndexByte(s, '/')
		expr := s[1:i]

		if flags := s[i+1:]; strings.Contains(flags, "i") {
			expr = "(?i)" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return err
		}

		o.patterns = append(o.patterns, re)
	}

	return nil
}

func (o *undefPropertiesOptions) ignored(name string) bool {
	for _, re := range o.patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// templateGlobals are the globals accessible from template expressions.
var templateGlobals = map[string]bool{
	"Infinity": true, "undefined": true, "NaN": true, "isFinite": true, "isNaN": true,
	"parseFloat": true, "parseInt": true, "decodeURI": true, "decodeURIComponent": true,
	"encodeURI": true, "encodeURIComponent": true, "Math": true, "Number": true, "Date": true,
	"Array": true, "Object": true, "Boolean": true, "String": true, "RegExp": true, "Map": true,
	"Set": true, "JSON": true, "Intl": true, "BigInt": true, "console": true, "Error": true,
	"Symbol": true, "require": true,
}

// openMembers reports whether d may have members the extractor can't see.
func openMembers(set *component.Set, d *component.Descriptor) bool {
	if d.Option("mixins") != nil || d.Option("extends") != nil {
		return true
	}

	for _, c := range set.Children(d) {
		if c.Mixin {
			return true
		}
	}

	if obj := d.Object(); obj != nil {
		for _, p := range obj.Properties {
			if _, ok := p.(*ast.SpreadElement); ok {
				return true
			}
		}
	}

	return false
}

func createUndefProperties(ctx *rule.Context) *rule.Visitor {
	o := rule.OptionsOf[*undefPropertiesOptions](ctx)

	primary := ctx.Components().Primary()
	if len(primary) == 0 {
		return nil
	}

	for _, d := range primary {
		if openMembers(ctx.Components(), d) {
			return nil
		}
	}

	undef := func(n ast.Node, name string) {
		if templateGlobals[name] || o.ignored(name) {
			return
		}

		ctx.Report(report.Descriptor{Node: n, MessageID: "undef", Data: map[string]string{"name": name}})
	}

	return rule.NewVisitor().
		Template(func(c inspector.Cursor) {
			for _, ref := range c.Node().(*ast.ExpressionContainer).References {
				if ctx.Resolver().Reference(ref).Kind == resolve.KindUnresolved {
					undef(ref.ID, ref.ID.Name)
				}
			}
		}, ast.KindExpressionContainer).
		Script(func(c inspector.Cursor) {
			m := c.Node().(*ast.MemberExpression)
			if !astutil.IsThis(m.Object) {
				return
			}

			d := ctx.Components().Enclosing(m.Pos())
			if d == nil || d.Type == component.TypeSetupScript || openMembers(ctx.Components(), d) {
				return
			}

			name, ok := astutil.MemberName(m)
			if !ok || isMember(ctx.File, d, name) {
				return
			}

			if a, ok := c.Parent().Node().(*ast.AssignmentExpression); ok && a.Left == m {
				return
			}

			undef(m.Property, name)
		}, ast.KindMemberExpression)
}

func isMember(f *rule.File, d *component.Descriptor, name string) bool {
	for m := range property.Members(f.AST, d) {
		if m.Name == name {
			return true
		}
	}

	return false
}
