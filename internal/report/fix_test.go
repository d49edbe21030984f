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

package report_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
	. "fillmore-labs.com/kdulint/internal/report"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func newFile(src string) *token.File {
	fset := token.NewFileSet()
	tf := fset.AddFile("test.kdu", -1, len(src))
	tf.SetLinesForContent([]byte(src))

	return tf
}

func edit(tf *token.File, from, to int, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: tf.Pos(from), End: tf.Pos(to), NewText: []byte(text)}
}

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "abcdef"

	tf := newFile(src)

	tests := []struct {
		name  string
		edits []analysis.TextEdit
		want  string
		err   error
	}{
		{"none", nil, "abcdef", nil},
		{"replace", []analysis.TextEdit{edit(tf, 1, 3, "XY")}, "aXYdef", nil},
		{"remove", []analysis.TextEdit{edit(tf, 0, 2, "")}, "cdef", nil},
		{"insert", []analysis.TextEdit{edit(tf, 6, 6, "!")}, "abcdef!", nil},
		{"unordered", []analysis.TextEdit{edit(tf, 4, 5, "E"), edit(tf, 0, 1, "A")}, "AbcdEf", nil},
		{"same insert", []analysis.TextEdit{edit(tf, 2, 2, "1"), edit(tf, 2, 2, "2")}, "ab12cdef", nil},
		{"adjacent", []analysis.TextEdit{edit(tf, 0, 2, "x"), edit(tf, 2, 4, "y")}, "xyef", nil},
		{"overlap", []analysis.TextEdit{edit(tf, 0, 3, "x"), edit(tf, 2, 4, "y")}, "", ErrOverlap},
		{"outside", []analysis.TextEdit{{Pos: tf.Pos(0) + 100, End: tf.Pos(0) + 101}}, "", ErrOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(tf, []byte(src), tt.edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.err)
			}

			if tt.err == nil && string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	const src = "one two three"

	tf := newFile(src)

	fix := func(edits ...analysis.TextEdit) analysis.Diagnostic {
		return analysis.Diagnostic{
			Pos:            edits[0].Pos,
			SuggestedFixes: []analysis.SuggestedFix{{TextEdits: edits}},
		}
	}

	diagnostics := []analysis.Diagnostic{
		fix(edit(tf, 8, 13, "3")),
		{Pos: tf.Pos(0), Message: "no fix"},
		fix(edit(tf, 0, 3, "1")),
		fix(edit(tf, 1, 2, "N")), // conflicts with the fix of "one"
		fix(edit(tf, 4, 7, "2")),
	}

	got, applied, err := ApplyFixes(tf, []byte(src), diagnostics)
	if err != nil {
		t.Fatalf("ApplyFixes() error = %v", err)
	}

	if want := "1 2 3"; string(got) != want {
		t.Errorf("ApplyFixes() = %q, want %q", got, want)
	}

	if applied != 3 {
		t.Errorf("ApplyFixes() applied %d fixes, want 3", applied)
	}
}

func TestFixer(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<div id="a"></div>`)
	attr := testsource.Find(t, f, ast.KindAttribute, `id="a"`)
	fx := NewFixer(f)

	tests := []struct {
		name  string
		edits []analysis.TextEdit
		want  string
	}{
		{"before", []analysis.TextEdit{fx.InsertTextBefore(attr, "class ")}, `<div class id="a"></div>`},
		{"after", []analysis.TextEdit{fx.InsertTextAfter(attr, " hidden")}, `<div id="a" hidden></div>`},
		{"replace", []analysis.TextEdit{fx.ReplaceText(attr, `:id="b"`)}, `<div :id="b"></div>`},
		{"remove", []analysis.TextEdit{fx.RemoveRange(attr.Pos()-1, attr.End())}, `<div></div>`},
		{"multi", []analysis.TextEdit{
			fx.InsertTextBeforeRange(attr.Pos(), "k-bind"),
			fx.ReplaceTextRange(attr.Pos(), attr.Pos()+2, ":id"),
		}, `<div k-bind:id="a"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(f.TokFile, f.Src, tt.edits)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			want := "<template>" + tt.want + "</template>\n"
			if string(got) != want {
				t.Errorf("Apply() = %q, want %q", got, want)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<div id="a"></div>`)
	attr := testsource.Find(t, f, ast.KindAttribute, `id="a"`)

	d := Descriptor{
		Node:      attr,
		MessageID: "unexpected",
		Data:      map[string]string{"name": "id"},
		Fix: func(fx *Fixer) []analysis.TextEdit {
			return []analysis.TextEdit{fx.Remove(attr)}
		},
	}

	messages := map[string]string{"unexpected": "Unexpected attribute '{{ name }}' in {{where}}."}

	got := d.Diagnostic(NewFixer(f), "test-rule", messages)

	want := analysis.Diagnostic{
		Pos:      attr.Pos(),
		End:      attr.End(),
		Category: "test-rule",
		Message:  "Unexpected attribute 'id' in {{where}}.",
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   "Unexpected attribute 'id' in {{where}}.",
			TextEdits: []analysis.TextEdit{{Pos: attr.Pos(), End: attr.End()}},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostic() mismatch (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "'a'"},
		{[]string{"a", "b"}, "'a' and 'b'"},
		{[]string{"a", "b", "c"}, "'a', 'b' and 'c'"},
	}

	for _, tt := range tests {
		if got := Names(tt.names); got != tt.want {
			t.Errorf("Names(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
}
