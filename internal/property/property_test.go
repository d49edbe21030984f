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

package property_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/component"
	. "fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func mainOf(t *testing.T, f *ast.File) *component.Descriptor {
	t.Helper()

	d := component.Detect(f).Main()
	if d == nil {
		t.Fatal("No component detected")
	}

	return d
}

func TestPropsEquivalence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup bool
		src   string
	}{
		{"array", false, `export default { props: ['title', 'count'] }`},
		{"object", false, `export default { props: { title: String, count: { type: Number } } }`},
		{"define component", false, `export default defineComponent({ props: { title: String, 'count': Number } })`},
		{"setup runtime", true, `defineProps(['title', 'count'])`},
		{"setup type literal", true, `defineProps<{ title: string; count?: number }>()`},
		{"setup interface", true, "interface Props { title: string }\ninterface More extends Props { count: number }\ndefineProps<More>()"},
		{"setup alias", true, "type Props = { title: string } & { count: number }\nconst props = withDefaults(defineProps<Props>(), { count: 1 })"},
	}

	want := []string{"title", "count"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f *ast.File
			if tt.setup {
				f = testsource.Setup(t, tt.src)
			} else {
				f = testsource.Script(t, tt.src)
			}

			got := Names(Props(f, mainOf(t, f)))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Props() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type propSummary struct {
	Name     string
	Known    bool
	Form     string
	Required bool
	Types    []string
	Default  string
}

func summarize(f *ast.File, props []*Property) []propSummary {
	got := make([]propSummary, 0, len(props))

	for _, p := range props {
		s := propSummary{Name: p.Name, Known: p.Known, Form: p.Form.String(), Required: p.Required, Types: p.Types}
		if p.Default != nil {
			s.Default = f.Text(p.Default)
		}

		got = append(got, s)
	}

	return got
}

func TestPropsDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup bool
		src   string
		want  []propSummary
	}{
		{
			name: "array with dynamic entry",
			src:  "export default { props: ['a', name, `b`] }",
			want: []propSummary{
				{Name: "a", Known: true, Form: "array"},
				{Form: "array"},
				{Name: "b", Known: true, Form: "array"},
			},
		},
		{
			name: "object options",
			src:  `export default { props: { a: { type: [String, Number], required: true, default: 'x' }, b: Boolean, [c]: String } }`,
			want: []propSummary{
				{Name: "a", Known: true, Form: "object", Required: true, Types: []string{"String", "Number"}, Default: "'x'"},
				{Name: "b", Known: true, Form: "object", Types: []string{"Boolean"}},
				{Form: "object"},
			},
		},
		{
			name:  "type literal",
			setup: true,
			src:   `defineProps<{ a: string | null; b?: 'x' | 'y'; c: number[]; d(): void; e: Foo }>()`,
			want: []propSummary{
				{Name: "a", Known: true, Form: "type", Required: true, Types: []string{"String"}},
				{Name: "b", Known: true, Form: "type", Types: []string{"String"}},
				{Name: "c", Known: true, Form: "type", Required: true, Types: []string{"Array"}},
				{Name: "d", Known: true, Form: "type", Required: true, Types: []string{"Function"}},
				{Name: "e", Known: true, Form: "type", Required: true, Types: []string{"Foo"}},
			},
		},
		{
			name:  "with defaults",
			setup: true,
			src:   `const props = withDefaults(defineProps<{ a?: number; b?: string }>(), { a: 1 })`,
			want: []propSummary{
				{Name: "a", Known: true, Form: "type", Types: []string{"Number"}, Default: "1"},
				{Name: "b", Known: true, Form: "type", Types: []string{"String"}},
			},
		},
		{
			name:  "destructure defaults",
			setup: true,
			src:   `const { a = 2, b } = defineProps<{ a?: number; b: boolean }>()`,
			want: []propSummary{
				{Name: "a", Known: true, Form: "type", Types: []string{"Number"}, Default: "2"},
				{Name: "b", Known: true, Form: "type", Required: true, Types: []string{"Boolean"}},
			},
		},
		{
			name:  "imported type",
			setup: true,
			src:   "import type { Props } from './types'\ndefineProps<Props>()",
			want:  []propSummary{{Form: "type"}},
		},
		{
			name:  "define model",
			setup: true,
			src:   "const model = defineModel<string>()\nconst count = defineModel('count', { type: Number, default: 0 })",
			want: []propSummary{
				{Name: "modelValue", Known: true, Form: "binding", Types: []string{"String"}},
				{Name: "count", Known: true, Form: "binding", Types: []string{"Number"}, Default: "0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f *ast.File
			if tt.setup {
				f = testsource.Setup(t, tt.src)
			} else {
				f = testsource.Script(t, tt.src)
			}

			got := summarize(f, Props(f, mainOf(t, f)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Props() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup bool
		src   string
		want  []string
	}{
		{"options array", false, `export default { emits: ['change', 'update:value'] }`, []string{"change", "update:value"}},
		{"options object", false, `export default { emits: { change: null, submit: (v) => !!v } }`, []string{"change", "submit"}},
		{"runtime", true, `const emit = defineEmits(['change'])`, []string{"change"}},
		{"call signatures", true, `defineEmits<{ (e: 'change', id: number): void; (e: 'open' | 'close'): void }>()`, []string{"change", "open", "close"}},
		{"named tuples", true, `defineEmits<{ change: [id: number]; 'update:title': [value: string] }>()`, []string{"change", "update:title"}},
		{"function type", true, `defineEmits<(e: 'select') => void>()`, []string{"select"}},
		{"model", true, `const title = defineModel('title')`, []string{"update:title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f *ast.File
			if tt.setup {
				f = testsource.Setup(t, tt.src)
			} else {
				f = testsource.Script(t, tt.src)
			}

			got := Names(Emits(f, mainOf(t, f)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Emits() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputed(t *testing.T) {
	t.Parallel()

	f := testsource.Setup(t, "const a = computed(() => 1)\nconst b = ref(0)\nconst c = computed({ get: () => 1, set: () => {} })")

	got := Names(Computed(mainOf(t, f)))
	if diff := cmp.Diff([]string{"a", "c"}, got); diff != "" {
		t.Errorf("Computed() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `import Foo from './Foo.kdu'
export default { components: { Foo, 'bar-baz': Bar, Qux: { name: 'Qux' } } }`)

	var got []string
	for _, c := range Components(mainOf(t, f)) {
		got = append(got, c.Name)
	}

	if diff := cmp.Diff([]string{"Foo", "bar-baz", "Qux"}, got); diff != "" {
		t.Errorf("Components() mismatch (-want +got):\n%s", diff)
	}
}

func TestMembers(t *testing.T) {
	t.Parallel()

	type member struct {
		Name  string
		Group Group
	}

	tests := []struct {
		name  string
		setup bool
		src   string
		want  []member
	}{
		{
			name: "options",
			src: `export default {
  props: ['p'],
  data() { return { d: 1 } },
  computed: { c() { return 1 } },
  methods: { m() {} },
  setup() { const s = 1; return { s } },
  inject: ['i'],
  emits: ['e'],
}`,
			want: []member{
				{"p", GroupProps}, {"d", GroupData}, {"c", GroupComputed}, {"m", GroupMethods},
				{"s", GroupSetup}, {"i", GroupInject}, {"e", GroupEmits},
			},
		},
		{
			name: "arrow data",
			src:  `export default { data: () => ({ a: 1, b: 2 }) }`,
			want: []member{{"a", GroupData}, {"b", GroupData}},
		},
		{
			name:  "script setup",
			setup: true,
			src: `import { ref } from 'kdu'
import type { T } from './t'
const props = defineProps<{ msg: string }>()
const { x, y: [z] } = useThing()
function go() {}
class Box {}`,
			want: []member{
				{"msg", GroupProps},
				{"ref", GroupSetup}, {"props", GroupSetup}, {"x", GroupSetup}, {"z", GroupSetup},
				{"go", GroupSetup}, {"Box", GroupSetup},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f *ast.File
			if tt.setup {
				f = testsource.Setup(t, tt.src)
			} else {
				f = testsource.Script(t, tt.src)
			}

			var got []member
			for m := range Members(f, mainOf(t, f)) {
				got = append(got, member{m.Name, m.Group})
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Members() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMembersFiltered(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `export default { props: ['a'], methods: { b() {} } }`)

	var got []string
	for m := range Members(f, mainOf(t, f), GroupMethods) {
		got = append(got, m.Name)
	}

	if !slices.Equal(got, []string{"b"}) {
		t.Errorf("Members(methods) = %v, want [b]", got)
	}
}
