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

package parser_test

import (
	"errors"
	"go/scanner"
	"go/token"
	"strings"
	"testing"
	"time"

	"fillmore-labs.com/kdulint/internal/ast"
	. "fillmore-labs.com/kdulint/internal/parser"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func TestParseFileBlocks(t *testing.T) {
	t.Parallel()

	const src = `<template><div/></template>
<script>
export default {}
</script>
<script setup lang="ts">
const a = 1
</script>
<style scoped>.a { color: red }</style>
<i18n>{ "x": 1 }</i18n>
`

	_, f := testsource.Parse(t, src)

	if f.TemplateBody == nil {
		t.Fatal("Missing template block")
	}

	if got, want := len(f.Scripts), 2; got != want {
		t.Fatalf("Got %d script blocks, expected %d", got, want)
	}

	if s := f.Scripts[1]; !s.Setup || s.Lang != "ts" {
		t.Errorf("Got script block %+v, expected setup with lang ts", s)
	}

	if got, want := len(f.Styles), 1; got != want || !f.Styles[0].Scoped {
		t.Errorf("Got %d style blocks, expected %d scoped", got, want)
	}

	if got, want := len(f.Program.Body), 2; got != want {
		t.Fatalf("Got %d statements, expected %d", got, want)
	}

	if _, ok := f.Program.Body[0].(*ast.ExportDefaultDeclaration); !ok {
		t.Errorf("Got %T, expected default export", f.Program.Body[0])
	}

	if f.InSetup(f.Program.Body[0].Pos()) || !f.InSetup(f.Program.Body[1].Pos()) {
		t.Error("Setup script ranges are wrong")
	}

	var custom *ast.Element
	for _, c := range f.Document.Children {
		if el, ok := c.(*ast.Element); ok && el.Name == "i18n" {
			custom = el
		}
	}

	if custom == nil || len(custom.Children) != 1 {
		t.Fatal("Custom block should be kept as raw text")
	}

	if got, want := custom.Children[0].(*ast.Text).Value, `{ "x": 1 }`; got != want {
		t.Errorf("Got custom block %q, expected %q", got, want)
	}
}

func TestParseDirectives(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t,
		`<div id="a" :foo.prop="x" @update:model-value.stop="onClick" k-if="ok" .bar="y" k-else></div>`)

	div := f.TemplateBody.ElementChildren()[0]
	attrs := div.StartTag.Attributes

	if got, want := len(attrs), 6; got != want {
		t.Fatalf("Got %d attributes, expected %d", got, want)
	}

	if a, ok := attrs[0].(*ast.Attribute); !ok || a.Key.Name != "id" || a.Value.Value != "a" {
		t.Errorf("Got %#v, expected static attribute id", attrs[0])
	}

	tests := [...]struct {
		name      string
		raw       string
		argument  string
		modifiers []string
	}{
		{"bind", ":", "foo", []string{"prop"}},
		{"on", "@", "update:model-value", []string{"stop"}},
		{"if", "k-if", "", nil},
		{"bind", ".", "bar", []string{"prop"}},
		{"else", "k-else", "", nil},
	}

	for i, tt := range tests {
		d, ok := attrs[i+1].(*ast.Directive)
		if !ok {
			t.Errorf("Attribute %d: got %T, expected directive", i+1, attrs[i+1])

			continue
		}

		if got := d.Key.Name.Name; got != tt.name {
			t.Errorf("Attribute %d: got name %q, expected %q", i+1, got, tt.name)
		}

		if got := d.Key.Name.RawName; got != tt.raw {
			t.Errorf("Attribute %d: got raw name %q, expected %q", i+1, got, tt.raw)
		}

		if got, _ := d.Key.ArgumentName(); got != tt.argument {
			t.Errorf("Attribute %d: got argument %q, expected %q", i+1, got, tt.argument)
		}

		for _, m := range tt.modifiers {
			if !d.Key.HasModifier(m) {
				t.Errorf("Attribute %d: missing modifier %q", i+1, m)
			}
		}
	}

	if d := div.Directive("else", ""); d == nil || d.Value != nil {
		t.Errorf("Got %#v, expected directive without value", d)
	}

	if d := div.Directive("on", "update:model-value"); d == nil {
		t.Error("Can't find event directive")
	} else if _, ok := d.Value.Expression.(*ast.Identifier); !ok {
		t.Errorf("Got handler %T, expected identifier", d.Value.Expression)
	}
}

func TestParseElementNames(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<DIV><MyComp/><svg><foreignObject/></svg><input k-model="a"></DIV>`)

	div := f.TemplateBody.ElementChildren()[0]
	if div.Name != "div" || div.RawName != "DIV" {
		t.Errorf("Got name %q/%q, expected lower-cased HTML name", div.Name, div.RawName)
	}

	children := div.ElementChildren()
	if got, want := len(children), 3; got != want {
		t.Fatalf("Got %d children, expected %d", got, want)
	}

	if c := children[0]; c.Name != "MyComp" || !c.StartTag.SelfClosing {
		t.Errorf("Got %q, expected self-closing component", c.Name)
	}

	if svg := children[1]; svg.Namespace != ast.NamespaceSVG || svg.ElementChildren()[0].Namespace != ast.NamespaceSVG {
		t.Errorf("Got namespace %v, expected SVG", svg.Namespace)
	}

	if input := children[2]; input.EndTag != nil || len(input.Children) != 0 {
		t.Error("Void element should have no content")
	}
}

func TestParseIteration(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t,
		`<ul><li k-for="(item, index) in items" :key="item.id">{{ item.name }}{{ other }}</li></ul>`)

	li := f.TemplateBody.ElementChildren()[0].ElementChildren()[0]

	if got, want := len(li.Variables), 2; got != want {
		t.Fatalf("Got %d variables, expected %d", got, want)
	}

	item := li.Variables[0]
	if item.ID.Name != "item" || item.Kind != ast.VariableFor {
		t.Errorf("Got variable %s (%s), expected item (for)", item.ID.Name, item.Kind)
	}

	fe, ok := li.Directive("for", "").Value.Expression.(*ast.ForExpression)
	if !ok {
		t.Fatalf("Got %T, expected iteration", li.Directive("for", "").Value.Expression)
	}

	if len(fe.Left) != 2 || fe.Of {
		t.Errorf("Got %d left patterns (of=%t), expected 2 with in", len(fe.Left), fe.Of)
	}

	if refs := li.Directive("for", "").Value.References; len(refs) != 1 || refs[0].Variable != nil {
		t.Errorf("Iterated source should be unresolved, got %d references", len(refs))
	}

	if refs := li.Directive("bind", "key").Value.References; len(refs) != 1 || refs[0].Variable != item {
		t.Error("Key should resolve to the iteration variable")
	}

	mustaches := li.Children
	if got, want := len(mustaches), 2; got != want {
		t.Fatalf("Got %d children, expected %d", got, want)
	}

	if refs := mustaches[0].(*ast.ExpressionContainer).References; len(refs) != 1 || refs[0].Variable != item {
		t.Error("Mustache should resolve to the iteration variable")
	}

	if refs := mustaches[1].(*ast.ExpressionContainer).References; len(refs) != 1 || refs[0].Variable != nil {
		t.Error("Free identifier should stay unresolved")
	}

	if got, want := len(item.References), 2; got != want {
		t.Errorf("Got %d references to item, expected %d", got, want)
	}
}

func TestParseIterationShadowing(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<div k-for="x in xs"><span k-for="x in x.children">{{ x }}</span></div>`)

	div := f.TemplateBody.ElementChildren()[0]
	span := div.ElementChildren()[0]

	if refs := span.Directive("for", "").Value.References; len(refs) != 1 || refs[0].Variable != div.Variables[0] {
		t.Error("Inner iterated source should resolve to the outer variable")
	}

	if refs := span.Children[0].(*ast.ExpressionContainer).References; len(refs) != 1 || refs[0].Variable != span.Variables[0] {
		t.Error("Innermost variable should win")
	}
}

func TestParseSlotScope(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<MyComp k-slot:item="{ value }">{{ value }}</MyComp><Other slot-scope="props">{{ props.a }}</Other>`)

	for _, el := range f.TemplateBody.ElementChildren() {
		if got, want := len(el.Variables), 1; got != want {
			t.Fatalf("%s: got %d variables, expected %d", el.Name, got, want)
		}

		if el.Variables[0].Kind != ast.VariableScope {
			t.Errorf("%s: got kind %s, expected scope", el.Name, el.Variables[0].Kind)
		}

		if refs := el.Children[0].(*ast.ExpressionContainer).References; len(refs) != 1 || refs[0].Variable != el.Variables[0] {
			t.Errorf("%s: slot property should resolve to the scope variable", el.Name)
		}
	}
}

func TestParseEventHandlers(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t,
		`<button @click="count++; emit('x')"></button><button @click="handle($event)"></button><button @click="() => go(1)"></button>`)

	buttons := f.TemplateBody.ElementChildren()

	first := buttons[0].Directive("on", "click").Value
	on, ok := first.Expression.(*ast.OnExpression)
	if !ok || len(on.Body) != 2 {
		t.Fatalf("Got %T, expected statement list with two statements", first.Expression)
	}

	if refs := first.References; len(refs) != 2 || refs[0].Mode != ast.ReadWrite || refs[1].Mode != ast.Read {
		t.Errorf("Got %d references, expected update and read", len(refs))
	}

	second := buttons[1].Directive("on", "click").Value
	if refs := second.References; len(refs) != 1 || refs[0].ID.Name != "handle" {
		t.Errorf("Got %d references, expected handle only", len(refs))
	}

	third := buttons[2].Directive("on", "click").Value
	if _, ok := third.Expression.(*ast.ArrowFunctionExpression); !ok {
		t.Errorf("Got %T, expected arrow handler", third.Expression)
	}
}

func TestParseModel(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<input k-model="name"><input k-model="form.name">`)

	inputs := f.TemplateBody.ElementChildren()

	if refs := inputs[0].Directive("model", "").Value.References; len(refs) != 1 || refs[0].Mode != ast.ReadWrite {
		t.Error("Bare model identifier should be read and written")
	}

	if refs := inputs[1].Directive("model", "").Value.References; len(refs) != 1 || refs[0].Mode != ast.Read {
		t.Error("Model member root should be read only")
	}
}

func TestParseFilters(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `{{ msg | capitalize | truncate(10, n) }}{{ a || b }}`)

	children := f.TemplateBody.Children

	c := children[0].(*ast.ExpressionContainer)
	seq, ok := c.Expression.(*ast.FilterSequenceExpression)
	if !ok {
		t.Fatalf("Got %T, expected filter sequence", c.Expression)
	}

	if got, want := len(seq.Filters), 2; got != want {
		t.Fatalf("Got %d filters, expected %d", got, want)
	}

	if f := seq.Filters[1]; f.Callee.Name != "truncate" || len(f.Arguments) != 2 {
		t.Errorf("Got filter %s with %d arguments, expected truncate with 2", f.Callee.Name, len(f.Arguments))
	}

	var names []string
	for _, r := range c.References {
		names = append(names, r.ID.Name)
	}

	if got, want := strings.Join(names, ","), "msg,n"; got != want {
		t.Errorf("Got references %s, expected %s", got, want)
	}

	if _, ok := children[1].(*ast.ExpressionContainer).Expression.(*ast.LogicalExpression); !ok {
		t.Error("Logical or should not be split into filters")
	}
}

func TestParseDynamicArgument(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<a :[attr]="v"></a>`)

	d, ok := f.TemplateBody.ElementChildren()[0].StartTag.Attributes[0].(*ast.Directive)
	if !ok {
		t.Fatal("Expected directive")
	}

	arg, ok := d.Key.Argument.(*ast.ExpressionContainer)
	if !ok {
		t.Fatalf("Got %T, expected dynamic argument", d.Key.Argument)
	}

	if id, ok := arg.Expression.(*ast.Identifier); !ok || id.Name != "attr" || len(arg.References) != 1 {
		t.Errorf("Got %#v, expected identifier attr", arg.Expression)
	}
}

func TestParseRawContent(t *testing.T) {
	t.Parallel()

	f := testsource.Template(t, `<div k-pre><span :a="b">{{ c }}</span></div><textarea>{{ a }} &lt;</textarea>`)

	children := f.TemplateBody.ElementChildren()

	span := children[0].ElementChildren()[0]
	if _, ok := span.StartTag.Attributes[0].(*ast.Attribute); !ok {
		t.Error("Attributes inside k-pre should stay static")
	}

	if text, ok := span.Children[0].(*ast.Text); !ok || text.Value != "{{ c }}" {
		t.Errorf("Got %#v, expected raw mustache text", span.Children[0])
	}

	if text, ok := children[1].Children[0].(*ast.Text); !ok || text.Value != "{{ a }} <" {
		t.Errorf("Got %#v, expected decoded text", children[1].Children[0])
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		src      string
		template bool
		script   bool
	}{
		{"missing_end_tag", "<template><div><span></div></template>", true, false},
		{"optional_end_tag", "<template><ul><li>a<li>b</ul><p>c</template>", false, false},
		{"stray_end_tag", "<template><div></div></span></template>", true, false},
		{"bad_expression", `<template><div :a="1 +"></div></template>`, true, false},
		{"bad_script", "<script>\nconst = 1\n</script>", false, true},
		{"unterminated_string", "<script>\nconst a = 'x\n</script>", false, true},
		{"bare_end_tag_open", "<template><p>a </ b</p></template>", true, false},
		{"empty_end_tag", "<template><p></></p></template>", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := testsource.ParseLenient(t, tt.src)

			if got := f.HasTemplateErrors(); got != tt.template {
				t.Errorf("Got template errors %t, expected %t", got, tt.template)
			}

			if got := f.HasScriptErrors(); got != tt.script {
				t.Errorf("Got script errors %t, expected %t", got, tt.script)
			}

			if tt.template || tt.script {
				var list scanner.ErrorList
				if !errors.As(err, &list) || len(list) == 0 {
					t.Errorf("Got %v, expected error list", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error %v", err)
			}

			if f.Program == nil {
				t.Error("Program should never be nil")
			}
		})
	}
}

func TestParseMalformedMarkup(t *testing.T) {
	t.Parallel()

	tests := [...]string{
		"</",
		"</ ",
		"</>",
		"<",
		"<template></",
		"<template><p>x</p></",
		"<template><div></div></d",
		"<template><p>a </ b</p></template>",
		"<template><td>{{ row.a | f(1) }}</",
		"<template><!",
		"<template><?x",
		"<template>{{ a",
		"<template><div :a=\"",
		"<script>\nexport default {</",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			done := make(chan *ast.File, 1)
			go func() {
				f, _ := ParseFile(token.NewFileSet(), "malformed.kdu", []byte(src))
				done <- f
			}()

			select {
			case f := <-done:
				if f == nil || f.Document == nil || f.Program == nil {
					t.Errorf("Got incomplete file %+v", f)
				}

			case <-time.After(5 * time.Second):
				t.Fatal("Parser did not terminate")
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"destructuring", `const { a, b: [c] = [], ...rest } = props`},
		{"shift", `x = a >> 2; y >>>= 1; z = a >= b`},
		{"arrow", `const f = async (x, { y }) => x + y`},
		{"regexp", `const r = /ab+c/g.test(s) ? a / b : c`},
		{"template_literal", "const t = `a${b + `c${d}`}e`"},
		{"optional_chain", `a?.b?.(c)?.[d] ?? e`},
		{"asi", "let a = 1\nlet b = 2\na\n++b"},
		{"class", `class A extends B { static x = 1; #y; get z() { return this.#y } static { init() } }`},
		{"generator", `function* g() { yield* other() }`},
		{"for_variants", `for (const k in o) {} for await (const v of s) {} for (let i = 0; i < n; i++) {}`},
		{"switch", `switch (x) { case 1: break; default: y() }`},
		{"labels", `outer: for (;;) { continue outer }`},
		{"exports", `export const a = 1; export { a as b }; export * from "m"; export default defineComponent({})`},
		{"component", `export default { props: ['a'], data() { return { b: 1 } }, methods: { m() { this.$emit('x') } } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Script(t, tt.src)
			if len(f.Program.Body) == 0 {
				t.Error("Expected statements")
			}
		})
	}
}

func TestParseTypeScript(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"generic_close", `const m = new Map<string, Array<number>>()`},
		{"props_macro", `const props = defineProps<{ a: string; b?: number }>()`},
		{"with_defaults", `const props = withDefaults(defineProps<Props>(), { a: 'x', b: () => [] })`},
		{"interface", `interface Props { a: string; b?: Array<string | number>; onX(e: Event): void }`},
		{"type_alias", `type Emits = { (e: 'change', id: number): void; (e: 'update', value: string): void }`},
		{"emits_macro", `const emit = defineEmits<{ (e: 'change', id: number): void }>()`},
		{"casts", `const a = b as unknown as string; const c = d!; const e = { f: 1 } satisfies Record<string, number>`},
		{"function_types", `let f: (a: number, ...rest: string[]) => void; let g: [string, number?]`},
		{"enum", `enum Color { Red, Green = 'g' }`},
		{"import_type", `import type { Foo } from './foo'; import { type Bar, baz } from './bar'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Setup(t, tt.src)
			if len(f.Program.Body) == 0 {
				t.Error("Expected statements")
			}
		})
	}
}

func TestParseShiftOperators(t *testing.T) {
	t.Parallel()

	f := testsource.Script(t, `x = a >> 2; y >>>= 1`)

	first := f.Program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	if bin, ok := first.Right.(*ast.BinaryExpression); !ok || bin.Operator != ">>" {
		t.Errorf("Got %#v, expected shift", first.Right)
	}

	second := f.Program.Body[1].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	if got, want := second.Operator, ">>>="; got != want {
		t.Errorf("Got operator %q, expected %q", got, want)
	}
}

func TestParseExpression(t *testing.T) {
	t.Parallel()

	const src = "<style>.a { color: k-bind(color) }</style>\n"

	f, err := ParseFile(token.NewFileSet(), "style.kdu", []byte(src))
	if err != nil {
		t.Fatal(err)
	}

	from := strings.Index(src, "color)")

	c, err := ParseExpression(f, from, from+len("color"))
	if err != nil {
		t.Fatal(err)
	}

	if id, ok := c.Expression.(*ast.Identifier); !ok || id.Name != "color" {
		t.Errorf("Got %#v, expected identifier color", c.Expression)
	}

	if got, want := len(c.References), 1; got != want {
		t.Errorf("Got %d references, expected %d", got, want)
	}
}
