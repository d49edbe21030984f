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

package scope_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/kdulint/internal/ast"
	. "fillmore-labs.com/kdulint/internal/scope"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func throughNames(s *Scope) []string {
	names := make([]string, 0, len(s.Through))
	for _, r := range s.Through {
		names = append(names, r.Identifier.Name)
	}

	return names
}

func variableNames(s *Scope) []string {
	names := make([]string, 0, len(s.Variables))
	for _, v := range s.Variables {
		names = append(names, v.Name)
	}

	return names
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		src     string
		vars    []string
		through []string
	}{
		{
			name:    "function_params",
			src:     `let a = 1; function f(b) { return a + b + c }`,
			vars:    []string{"a", "f"},
			through: []string{"c"},
		},
		{
			name:    "var_hoisting",
			src:     `{ var x = 1 } x`,
			vars:    []string{"x"},
			through: []string{},
		},
		{
			name:    "let_block",
			src:     `{ let y = 1 } y`,
			vars:    []string{},
			through: []string{"y"},
		},
		{
			name:    "imports",
			src:     `import a, { b as c } from "m"; import * as d from "n"; a(c, d, b)`,
			vars:    []string{"a", "c", "d"},
			through: []string{"b"},
		},
		{
			name:    "destructuring",
			src:     `const { p, q: [r], ...s } = props`,
			vars:    []string{"p", "r", "s"},
			through: []string{"props"},
		},
		{
			name:    "member_properties",
			src:     `const o = { k: v }; o.k; o[w]`,
			vars:    []string{"o"},
			through: []string{"v", "w"},
		},
		{
			name:    "catch_param",
			src:     `try { f() } catch (e) { e } finally { g }`,
			vars:    []string{},
			through: []string{"f", "g"},
		},
		{
			name:    "class",
			src:     `class A extends B { m() { return this.x + y } }`,
			vars:    []string{"A"},
			through: []string{"B", "y"},
		},
		{
			name:    "function_expression_name",
			src:     `const f = function g() { return g }; g`,
			vars:    []string{"f"},
			through: []string{"g"},
		},
		{
			name:    "for_of",
			src:     `for (const item of items) { item }`,
			vars:    []string{},
			through: []string{"items"},
		},
		{
			name:    "labels",
			src:     `outer: for (;;) { break outer }`,
			vars:    []string{},
			through: []string{},
		},
		{
			name:    "export_specifiers",
			src:     `const a = 1; export { a, b as c }`,
			vars:    []string{"a"},
			through: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, tt.src)
			m := Analyze(f.Program)

			module := m.Module()
			if got, want := module.Type, TypeModule; got != want {
				t.Errorf("Got root scope %s, expected %s", got, want)
			}

			if diff := cmp.Diff(tt.vars, variableNames(module)); diff != "" {
				t.Errorf("Variables mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.through, throughNames(module)); diff != "" {
				t.Errorf("Through mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReferenceModes(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `let a; a = 1; a += 2; a++; f(a)`)
	m := Analyze(f.Program)

	v, ok := m.Module().Set("a")
	if !ok {
		t.Fatal("Can't find variable a")
	}

	got := make([]ast.ReferenceMode, 0, len(v.References))
	for _, r := range v.References {
		got = append(got, r.Mode)
	}

	want := []ast.ReferenceMode{ast.Write, ast.ReadWrite, ast.ReadWrite, ast.Read}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Modes mismatch (-want +got):\n%s", diff)
	}
}

func TestInitReference(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `const x = y`)
	m := Analyze(f.Program)

	id := testsource.Identifier(t, f, "x", 0)

	r, ok := m.ReferenceOf(id)
	if !ok {
		t.Fatal("Missing reference for declaration with initializer")
	}

	if !r.Init || !r.IsWrite() || r.IsRead() {
		t.Errorf("Got reference %+v, expected initializing write", r)
	}

	if v, ok := m.VariableOf(id); !ok || v.Defs[0].Kind != DefConst {
		t.Errorf("Got variable %v, expected const definition", v)
	}
}

func TestInnermost(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `function f() { if (a) { const b = 1; use(b) } }`)
	m := Analyze(f.Program)

	id := testsource.Identifier(t, f, "use", 0)
	s := m.Innermost(id)

	if got, want := s.Type, TypeBlock; got != want {
		t.Fatalf("Got scope %s, expected %s", got, want)
	}

	if got, want := s.FunctionScope().Type, TypeFunction; got != want {
		t.Errorf("Got function scope %s, expected %s", got, want)
	}

	if got, want := Name(s.FunctionScope().Block), "function"; got != want {
		t.Errorf("Got scope name %q, expected %q", got, want)
	}

	if v := s.Lookup("b"); v == nil || len(v.References) != 2 {
		t.Errorf("Got variable %v, expected b with two references", v)
	}
}

func TestShadowing(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		src    string
		shadow bool
	}{
		{
			name:   "block",
			src:    `let a = 1; { let a = 2 }`,
			shadow: true,
		},
		{
			name:   "function_boundary",
			src:    `let a = 1; function f() { let a = 2 }`,
			shadow: false,
		},
		{
			name:   "param",
			src:    `function f(a) { { const a = 1 } }`,
			shadow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, tt.src)
			m := Analyze(f.Program)

			var inner *Variable
			for s := range m.Scopes() {
				if i := slices.IndexFunc(s.Variables, func(v *Variable) bool { return v.Name == "a" }); i >= 0 {
					inner = s.Variables[i]
				}
			}

			if got := Shadowing(inner) != nil; got != tt.shadow {
				t.Errorf("Got shadowing %t, expected %t", got, tt.shadow)
			}
		})
	}
}

func TestExpressionScope(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `items.map(item => item.id + offset)`)

	stmt, ok := f.Program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("Got %T, expected expression statement", f.Program.Body[0])
	}

	m := Analyze(stmt.Expression)

	if got, want := m.Module().Type, TypeExpression; got != want {
		t.Errorf("Got root scope %s, expected %s", got, want)
	}

	if diff := cmp.Diff([]string{"items", "offset"}, throughNames(m.Module())); diff != "" {
		t.Errorf("Through mismatch (-want +got):\n%s", diff)
	}
}
