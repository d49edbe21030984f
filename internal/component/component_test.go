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

package component_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/testsource"
)

type summary struct {
	Type       string
	Name       string
	Exported   bool
	Functional bool
	Mixin      bool
	Parent     int // index into All, -1 for none
}

func summarize(s *Set) []summary {
	index := make(map[*Descriptor]int)
	for i, d := range s.All() {
		index[d] = i
	}

	var got []summary

	for _, d := range s.All() {
		parent := -1
		if d.Parent != nil {
			parent = index[d.Parent]
		}

		got = append(got, summary{
			Type:       d.Type.String(),
			Name:       d.Name,
			Exported:   d.Exported,
			Functional: d.Functional,
			Mixin:      d.Mixin,
			Parent:     parent,
		})
	}

	return got
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []summary
	}{
		{
			name: "export default",
			src:  `export default { name: 'Foo' }`,
			want: []summary{{Type: "export-default", Exported: true, Parent: -1}},
		},
		{
			name: "define component",
			src:  `import { defineComponent } from 'kdu'; export default defineComponent({ props: ['a'] })`,
			want: []summary{{Type: "marked-via-library-call", Exported: true, Parent: -1}},
		},
		{
			name: "typed export",
			src:  `export default { name: 'Foo' } satisfies Component`,
			want: []summary{{Type: "export-default", Exported: true, Parent: -1}},
		},
		{
			name: "functional arrow",
			src:  `export default (props) => h('div', props.msg)`,
			want: []summary{{Type: "export-default", Exported: true, Functional: true, Parent: -1}},
		},
		{
			name: "functional option",
			src:  `export default { functional: true, render(h) { return h('div') } }`,
			want: []summary{{Type: "export-default", Exported: true, Functional: true, Parent: -1}},
		},
		{
			name: "global registration",
			src:  "Kdu.component('my-comp', { template: '<div/>' })\nKdu.mixin({ created() {} })",
			want: []summary{
				{Type: "definition-call", Name: "my-comp", Parent: -1},
				{Type: "definition-call", Mixin: true, Parent: -1},
			},
		},
		{
			name: "app registration",
			src:  "createApp({}).component('a-b', {})",
			want: []summary{
				{Type: "marked-via-library-call", Parent: -1},
				{Type: "definition-call", Name: "a-b", Parent: -1},
			},
		},
		{
			name: "new instance",
			src:  `new Kdu({ el: '#app' })`,
			want: []summary{{Type: "marked-via-library-call", Parent: -1}},
		},
		{
			name: "marker comment",
			src:  "// @kdu/component\nconst Foo = { name: 'Foo' }",
			want: []summary{{Type: "marked-via-library-call", Parent: -1}},
		},
		{
			name: "children",
			src: `export default {
  components: { Inline: { name: 'Inline' }, Imported },
  mixins: [{ data() { return {} } }, shared],
}`,
			want: []summary{
				{Type: "export-default", Exported: true, Parent: -1},
				{Type: "definition-call", Name: "Inline", Parent: 0},
				{Type: "definition-call", Mixin: true, Parent: 0},
			},
		},
		{
			name: "nested definition",
			src:  `export default { components: { Child: defineComponent({}) } }`,
			want: []summary{
				{Type: "export-default", Exported: true, Parent: -1},
				{Type: "marked-via-library-call", Parent: 0},
			},
		},
		{
			name: "no component",
			src:  `const a = { b: 1 }; foo({})`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f := testsource.Parse(t, "<script lang=\"ts\">\n"+tt.src+"\n</script>\n")
			got := summarize(Detect(f))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMainDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"export wins", "Kdu.component('x', {})\nexport default { name: 'Main' }", "export-default"},
		{"first top level", "new Kdu({})\nKdu.component('x', {})", "marked-via-library-call"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, tt.src)

			main := Detect(f).Main()
			if main == nil {
				t.Fatal("Expected a main component")
			}

			if got := main.Type.String(); got != tt.want {
				t.Errorf("Main().Type = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetupMacros(t *testing.T) {
	t.Parallel()

	f := testsource.Setup(t, `
const props = withDefaults(defineProps<{ msg?: string }>(), { msg: 'hi' })
const emit = defineEmits(['change'])
defineOptions({ name: 'Foo' })
const model = defineModel<string>('title')
function later() { defineExpose({}) }
`)

	s := Detect(f)

	setup := s.Setup()
	if setup == nil || s.Main() != setup {
		t.Fatal("Expected script setup to be the main component")
	}

	type macro struct {
		Name    string
		Target  string
		Wrapped bool
	}

	var got []macro
	for _, m := range setup.Macros {
		var target string
		if m.Target != nil {
			target = f.Text(m.Target)
		}

		got = append(got, macro{m.Name, target, m.Wrapper != nil})
	}

	want := []macro{
		{"defineProps", "props", true},
		{"defineEmits", "emit", false},
		{"defineOptions", "", false},
		{"defineModel", "model", false},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Macros mismatch (-want +got):\n%s", diff)
	}

	if setup.Option("name") == nil {
		t.Error("Expected defineOptions to provide the name option")
	}
}

func TestEnclosing(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `export default { components: { Inner: { data() { return { x: 1 } } } } }`)
	s := Detect(f)

	x := testsource.Identifier(t, f, "x", 0)

	inner := s.Enclosing(x.Pos())
	if inner == nil || inner.Name != "Inner" {
		t.Fatalf("Enclosing() = %v, want Inner", inner)
	}

	if children := s.Children(s.Main()); len(children) != 1 || children[0] != inner {
		t.Errorf("Children() = %v, want [Inner]", children)
	}
}
