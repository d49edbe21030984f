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
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
)

// Unwrap strips TypeScript assertion wrappers (`x as T`, `x satisfies T`,
// `x!`) from an expression.
func Unwrap(n ast.Node) ast.Node {
	for {
		switch e := n.(type) {
		case *ast.TSAsExpression:
			n = e.Expression
		case *ast.TSSatisfiesExpression:
			n = e.Expression
		case *ast.TSNonNullExpression:
			n = e.Expression
		default:
			return n
		}
	}
}

// StringValue returns the value of a string literal or a template literal
// without substitutions.
func StringValue(n ast.Node) (string, bool) {
	switch n := n.(type) {
	case *ast.Literal:
		if n.LitKind == ast.LiteralString {
			return n.Value, true
		}

	case *ast.TemplateLiteral:
		if len(n.Expressions) == 0 && len(n.Quasis) == 1 {
			return n.Quasis[0].Cooked, true
		}
	}

	return "", false
}

// KeyName returns the static name of an object or class member key.
func KeyName(key ast.Node, computed bool) (string, bool) {
	if id, ok := key.(*ast.Identifier); ok && !computed {
		return id.Name, true
	}

	if lit, ok := key.(*ast.Literal); ok && lit.LitKind == ast.LiteralNumber {
		return lit.Raw, true
	}

	return StringValue(key)
}

// PropertyName returns the static key name of an object literal member.
func PropertyName(p *ast.Property) (string, bool) {
	return KeyName(p.Key, p.Computed)
}

// FindProperty returns the member of obj with the given static key name.
func FindProperty(obj *ast.ObjectExpression, name string) *ast.Property {
	for n, p := range Properties(obj) {
		if n == name {
			return p
		}
	}

	return nil
}

// CalleeName returns the dotted path of a call target like `Kdu.component`,
// or "" when the callee is not a chain of static member accesses.
func CalleeName(callee ast.Node) string {
	switch c := Unwrap(callee).(type) {
	case *ast.Identifier:
		return c.Name

	case *ast.MemberExpression:
		obj := CalleeName(c.Object)
		if obj == "" {
			return ""
		}

		name, ok := KeyName(c.Property, c.Computed)
		if !ok {
			return ""
		}

		return obj + "." + name

	case *ast.ChainExpression:
		return CalleeName(c.Expression)
	}

	return ""
}

// MemberName returns the static property name of a member access.
func MemberName(m *ast.MemberExpression) (string, bool) {
	return KeyName(m.Property, m.Computed)
}

// IsThis reports whether n is `this`.
func IsThis(n ast.Node) bool {
	_, ok := Unwrap(n).(*ast.ThisExpression)

	return ok
}

// LastSegment returns the part of a dotted name after the final dot.
func LastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// ObjectOf returns the object literal of an expression, if it is one.
func ObjectOf(n ast.Node) (*ast.ObjectExpression, bool) {
	obj, ok := Unwrap(n).(*ast.ObjectExpression)

	return obj, ok
}

// ReturnedObject returns the object literal a function returns: the body of
// a concise arrow or the argument of a top-level return statement.
func ReturnedObject(fn *ast.Func) (*ast.ObjectExpression, bool) {
	if fn == nil {
		return nil, false
	}

	if fn.Concise() {
		return ObjectOf(fn.Body)
	}

	body, ok := fn.Body.(*ast.BlockStatement)
	if !ok {
		return nil, false
	}

	for _, stmt := range body.Body {
		if ret, ok := stmt.(*ast.ReturnStatement); ok {
			return ObjectOf(ret.Argument)
		}
	}

	return nil, false
}
