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

package mutation_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/inspector"
	. "fillmore-labs.com/kdulint/internal/mutation"
	"fillmore-labs.com/kdulint/internal/scope"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func TestFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"assign", "this.value = 1", []string{"assignment/1"}},
		{"compound", "this.value += 1", []string{"compound-assignment/1"}},
		{"update", "this.count++", []string{"update/1"}},
		{"nested", "this.a.b.c = 1", []string{"assignment/3"}},
		{"push", "this.list.push(1)", []string{"destructive-call/1"}},
		{"map", "this.list.map(f)", []string{"none"}},
		{"delete", "delete this.obj.a", []string{"delete/2"}},
		{"set", "Kdu.set(this.obj, 'a', 1)", []string{"kdu-set-call/1"}},
		{"set value", "Kdu.set(obj, 'a', this.value)", []string{"none"}},
		{"array pattern", "[this.a, this.b] = [1, 2]", []string{"assignment/1", "assignment/1"}},
		{"object pattern", "({ x: this.a } = obj)", []string{"assignment/1"}},
		{"pattern default", "({ x: this.a = 1 } = obj)", []string{"assignment/1"}},
		{"for of", "for (this.item of list) {}", []string{"assignment/1"}},
		{"read", "foo(this.value)", []string{"none"}},
		{"right side", "x = this.value", []string{"none"}},
		{"destructure", "const { value } = this", []string{"none"}},
		{"computed key", "obj[this.key] = 1", []string{"none"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, "export default { methods: { m() { "+tt.body+" } } }")
			in := inspector.New(f.Program)

			var got []string

			for n := range ast.Preorder(f.Program) {
				if n.Kind() != ast.KindThisExpression {
					continue
				}

				m, ok := Find(in, n)
				if !ok {
					got = append(got, "none")

					continue
				}

				got = append(got, fmt.Sprintf("%s/%d", m.Kind, len(m.Path)))
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Find() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLeaves(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, "const { a, b: { c }, d = 1, e: [x, , y], ...rest } = props")

	decl := testsource.Find(t, f, ast.KindVariableDeclarator, "{ a, b: { c }, d = 1, e: [x, , y], ...rest } = props").(*ast.VariableDeclarator)

	type leaf struct {
		Name string
		Path []string
		Rest bool
	}

	var got []leaf
	for _, l := range Leaves(decl.ID) {
		got = append(got, leaf{l.ID.Name, l.Path, l.Rest})
	}

	want := []leaf{
		{"a", []string{"a"}, false},
		{"c", []string{"b", "c"}, false},
		{"d", []string{"d"}, false},
		{"x", []string{"e", "0"}, false},
		{"y", []string{"e", "2"}, false},
		{"rest", nil, true},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Leaves() mismatch (-want +got):\n%s", diff)
	}
}

func TestReaches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		want   bool
		source string
	}{
		{"reassign local", "const { value } = this; value = 1", false, ""},
		{"member of leaf", "const { obj } = this; obj.a = 1", true, "obj"},
		{"push on leaf", "const { list } = props; list.push(1)", true, "list"},
		{"rest copy", "const { ...r } = props; r.a = 1", false, ""},
		{"push on rest copy", "const [...r] = list; r.push(1)", false, ""},
		{"through rest", "const { ...r } = props; r.a.b = 1", true, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, tt.src)
			in := inspector.New(f.Program)
			mgr := scope.Analyze(f.Program)

			decl := f.Program.Body[0].(*ast.VariableDeclaration).Declarations[0]
			leaves := Leaves(decl.ID)
			if len(leaves) != 1 {
				t.Fatalf("Expected one leaf, got %d", len(leaves))
			}
			l := leaves[0]

			v, ok := mgr.VariableOf(l.ID)
			if !ok {
				t.Fatalf("No variable for %q", l.ID.Name)
			}

			var (
				reaches bool
				source  string
			)

			for _, ref := range v.References {
				if ref.Init {
					continue
				}

				m, ok := Find(in, ref.Identifier)
				if !ok || !l.Reaches(m) {
					continue
				}

				reaches = true
				source, _ = l.Source(m)
			}

			if reaches != tt.want {
				t.Errorf("Reaches() = %t, want %t", reaches, tt.want)
			}

			if source != tt.source {
				t.Errorf("Source() = %q, want %q", source, tt.source)
			}
		})
	}
}
