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

package rules_test

import (
	"testing"

	. "fillmore-labs.com/kdulint/internal/rules"
)

func TestNoTemplateShadow(t *testing.T) {
	t.Parallel()

	const nested = `<template>
  <ul>
    <li k-for="item in items">
      <span k-for="item in item.children">{{ item }}</span>
      <my-comp k-slot="{ count }">{{ count }}</my-comp>
    </li>
  </ul>
</template>
<script>
export default {
  props: ['items'],
  data() {
    return { count: 0 }
  },
}
</script>
`

	runRuleTests(t, NoTemplateShadow, []ruleTest{
		{
			name: "nested",
			src:  nested,
			want: []string{
				"4: Variable 'item' is already declared in the upper scope.",
				"5: Variable 'count' is already declared in the upper scope.",
			},
		},
		{
			name:    "allow",
			src:     nested,
			options: []any{map[string]any{"allow": []any{"count"}}},
			want:    []string{"4: Variable 'item' is already declared in the upper scope."},
		},
		{
			name: "setup",
			src: `<script setup>
const index = 0
const list = []
</script>
<template>
  <p k-for="(x, index) in list">{{ x }}</p>
</template>
`,
			want: []string{"6: Variable 'index' is already declared in the upper scope."},
		},
		{
			name: "siblings",
			src: `<template>
  <div>
    <p k-for="x in a">{{ x }}</p>
    <p k-for="x in b">{{ x }}</p>
  </div>
</template>
`,
		},
	})
}

func TestNoUndefProperties(t *testing.T) {
	t.Parallel()

	runRuleTests(t, NoUndefProperties, []ruleTest{
		{
			name: "options",
			src: `<template>
  <div :title="title" @click="$emit('x')">
    {{ unknown }} {{ count }} {{ Math.max(1, 2) }}
    <p k-for="item in items">{{ item }}</p>
  </div>
</template>
<script>
export default {
  props: ['title'],
  data() { return { count: 0 } },
  computed: {
    items() { return [] },
  },
  methods: {
    inc() {
      this.count++
      this.missing()
      this.later = 1
      return this.$refs.x
    },
  },
}
</script>
`,
			want: []string{
				"3: 'unknown' is not defined.",
				"17: 'missing' is not defined.",
			},
		},
		{
			name: "ignores",
			src: `<template>
  <p>{{ unknown }} {{ other }}</p>
</template>
<script>
export default {
  methods: {
    go() { this.Missing() },
  },
}
</script>
`,
			options: []any{map[string]any{"ignores": []any{"unknown", "/^miss/i"}}},
			want:    []string{"2: 'other' is not defined."},
		},
		{
			name: "mixins",
			src: `<template>
  <p>{{ fromMixin }}</p>
</template>
<script>
export default {
  mixins: [shared],
}
</script>
`,
		},
		{
			name: "setup",
			src: `<script setup>
const a = 1
</script>
<template>
  <p>{{ a }} {{ b }}</p>
</template>
`,
			want: []string{"5: 'b' is not defined."},
		},
		{
			name: "casing",
			src: `<template>
  <p>{{ fooBar }} {{ foo_bar }} {{ FooBar }}</p>
</template>
<script>
export default {
  data() { return { fooBar: 1 } },
}
</script>
`,
			want: []string{
				"2: 'foo_bar' is not defined.",
				"2: 'FooBar' is not defined.",
			},
		},
	})
}

func TestNoDupeKeys(t *testing.T) {
	t.Parallel()

	runRuleTests(t, NoDupeKeys, []ruleTest{
		{
			name: "options",
			src: `<script>
export default {
  props: ['foo'],
  data() {
    return { foo: 1, bar: 2 }
  },
  methods: {
    bar() {},
  },
}
</script>
`,
			want: []string{
				"5: Duplicate key 'foo' in 'props' and 'data'. May cause name collision in script or template tag.",
				"8: Duplicate key 'bar' in 'data' and 'methods'. May cause name collision in script or template tag.",
			},
		},
		{
			name: "setup",
			src: `<script setup>
const { a } = defineProps(['a', 'b'])
const b = 1
</script>
`,
			want: []string{
				"3: Duplicate key 'b' in 'props' and 'setup'. May cause name collision in script or template tag.",
			},
		},
		{
			name: "distinct",
			src: `<script>
export default {
  props: ['a'],
  computed: { b() { return this.a } },
}
</script>
`,
		},
	})
}

func TestNoUnusedProps(t *testing.T) {
	t.Parallel()

	runRuleTests(t, NoUnusedProps, []ruleTest{
		{
			name: "options",
			src: `<template>
  <p>{{ title }}</p>
</template>
<script>
export default {
  props: ['title', 'unused', 'size', 'mode', 'level'],
  watch: {
    'mode.value'() {},
  },
  computed: {
    double() { return this.size * 2 },
  },
  methods: {
    go() { const { level } = this; return level },
  },
}
</script>
`,
			want: []string{"6: 'unused' of property found, but never used."},
		},
		{
			name: "setup_style",
			src: `<script setup>
const props = defineProps(['color', 'gone', 'size'])
console.log(props.size)
</script>
<style>
.a { color: k-bind(color); }
</style>
`,
			want: []string{"2: 'gone' of property found, but never used."},
		},
		{
			name: "escaping",
			src: `<script setup>
import { toRefs } from 'kdu'
const props = defineProps(['a', 'b'])
const { a } = toRefs(props)
</script>
`,
		},
		{
			name: "template_props",
			src: `<template>
  <p>{{ $props.a }}</p>
</template>
<script>
export default {
  props: ['a', 'b'],
}
</script>
`,
			want: []string{"6: 'b' of property found, but never used."},
		},
	})
}
