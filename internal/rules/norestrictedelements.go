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
	"errors"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/inspector"
	"fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/rule"
	"fillmore-labs.com/kdulint/internal/selector"
)

// NoRestrictedElements disallows template elements matching configured
// selectors.
var NoRestrictedElements = &rule.Rule{
	Meta: rule.Meta{
		Name:        "no-restricted-elements",
		Description: "disallow specific elements selected by CSS-like selectors",
		Default:     config.SeverityOff,
		Schema: `{
  "type": "array",
  "items": {
    "oneOf": [
      {"type": "string"},
      {
        "type": "object",
        "properties": {"element": {"type": "string"}, "message": {"type": "string", "minLength": 1}},
        "required": ["element"],
        "additionalProperties": false
      }
    ]
  },
  "uniqueItems": true
}`,
		Messages: map[string]string{
			"restrictedElement": "Using `{{selector}}` is not allowed.",
		},
	},
	Parse:  parseRestrictedElements,
	Create: createRestrictedElements,
}

type restriction struct {
	Element string `json:"element"`
	Message string `json:"message"`

	matcher *selector.Matcher
}

// parseRestrictedElements compiles the selectors. A malformed selector is
// returned as an error together with the other restrictions; its matcher
// matches nothing.
func parseRestrictedElements(raw []any) (any, error) {
	var (
		restrictions []*restriction
		errs         []error
	)

	for _, entry := range raw {
		r := &restriction{}

		switch e := entry.(type) {
		case string:
			r.Element = e

		default:
			if err := config.Decode(e, r); err != nil {
				errs = append(errs, err)

				continue
			}
		}

		m, err := selector.Compile(r.Element)
		if err != nil {
			errs = append(errs, err)
		}

		r.matcher = m
		restrictions = append(restrictions, r)
	}

	return restrictions, errors.Join(errs...)
}

func createRestrictedElements(ctx *rule.Context) *rule.Visitor {
	restrictions := rule.OptionsOf[[]*restriction](ctx)
	if len(restrictions) == 0 {
		return nil
	}

	return rule.NewVisitor().Template(func(c inspector.Cursor) {
		el := c.Node().(*ast.Element)

		for _, r := range restrictions {
			if !r.matcher.Test(c) {
				continue
			}

			d := report.Descriptor{
				Node: el.StartTag,
				Data: map[string]string{"selector": r.Element, "name": el.RawName},
			}

			if r.Message != "" {
				d.Message = r.Message
			} else {
				d.MessageID = "restrictedElement"
			}

			ctx.Report(d)
		}
	}, ast.KindElement)
}
