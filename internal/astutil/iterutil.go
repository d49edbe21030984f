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

package astutil

import (
	"iter"

	"fillmore-labs.com/kdulint/internal/ast"
)

// BindingIdentifiers yields the identifiers bound by a binding pattern.
func BindingIdentifiers(pattern ast.Node) iter.Seq[*ast.Identifier] {
	return func(yield func(*ast.Identifier) bool) {
		var walk func(n ast.Node) bool
		walk = func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.Identifier:
				return yield(n)

			case *ast.AssignmentPattern:
				return walk(n.Left)

			case *ast.RestElement:
				return walk(n.Argument)

			case *ast.ArrayPattern:
				for _, e := range n.Elements {
					if !walk(e) {
						return false
					}
				}

			case *ast.ObjectPattern:
				for _, p := range n.Properties {
					if prop, ok := p.(*ast.Property); ok {
						p = prop.Value
					}

					if !walk(p) {
						return false
					}
				}
			}

			return true
		}

		walk(pattern)
	}
}

// AllDeclaredNames yields all names declared by a variable declaration.
func AllDeclaredNames(decl *ast.VariableDeclaration) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, d := range decl.Declarations {
			for id := range BindingIdentifiers(d.ID) {
				if !yield(id.Name) {
					return
				}
			}
		}
	}
}

// Properties yields the [ast.Property] members of an object literal with
// a static key, together with the key name. Spread elements and computed
// keys are skipped.
func Properties(obj *ast.ObjectExpression) iter.Seq2[string, *ast.Property] {
	return func(yield func(string, *ast.Property) bool) {
		if obj == nil {
			return
		}

		for _, p := range obj.Properties {
			prop, ok := p.(*ast.Property)
			if !ok {
				continue
			}

			name, ok := PropertyName(prop)
			if !ok {
				continue
			}

			if !yield(name, prop) {
				return
			}
		}
	}
}
