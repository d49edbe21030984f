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

package resolve

import (
	"regexp"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/parser"
)

// StyleVariable is a `k-bind(expr)` call inside a <style> block.
type StyleVariable struct {
	Style     ast.Block
	Container *ast.ExpressionContainer
}

var styleBind = regexp.MustCompile(`k-bind\(\s*(?:'([^']+)'|"([^"]+)"|([^'"][^)]*?))\s*\)`)

// StyleVariables parses the `k-bind()` expressions of all style blocks.
// Expressions that fail to parse are skipped.
func StyleVariables(f *ast.File) []*StyleVariable {
	var vars []*StyleVariable

	for _, style := range f.Styles {
		from, to := f.Offset(style.Content.From), f.Offset(style.Content.To)
		if from >= to {
			continue
		}

		for _, m := range styleBind.FindAllSubmatchIndex(f.Src[from:to], -1) {
			for g := 2; g < len(m); g += 2 {
				if m[g] < 0 {
					continue
				}

				c, err := parser.ParseExpression(f, from+m[g], from+m[g+1])
				if err != nil || c.Expression == nil {
					break
				}

				vars = append(vars, &StyleVariable{Style: style, Container: c})

				break
			}
		}
	}

	return vars
}
