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

package scope

import "fillmore-labs.com/kdulint/internal/ast"

// Name returns a human-readable name for the scope created by node.
func Name(node ast.Node) string {
	switch node.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.ArrowFunctionExpression:
		return "arrow function"

	case *ast.BlockStatement:
		return "block"

	case *ast.CatchClause:
		return "catch"

	case *ast.ClassDeclaration, *ast.ClassExpression:
		return "class"

	case *ast.ForInStatement:
		return "for-in"

	case *ast.ForOfStatement:
		return "for-of"

	case *ast.ForStatement:
		return "for"

	case *ast.FunctionDeclaration, *ast.FunctionExpression:
		return "function"

	case *ast.Program:
		return "module"

	case *ast.PropertyDefinition:
		return "class field"

	case *ast.StaticBlock:
		return "static block"

	case *ast.SwitchStatement:
		return "switch"

	case nil:
		return "<nil>"

	default:
		return node.Kind().String()
		// keep-sorted end
	}
}
