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

func TestOneComponentPerFile(t *testing.T) {
	t.Parallel()

	runRuleTests(t, OneComponentPerFile, []ruleTest{
		{
			name: "two",
			src: `<script>
Kdu.component('todo-item', {
  template: '<li></li>',
})
export default {
  name: 'App',
}
</script>
`,
			want: []string{
				"2: There is more than one component in this file.",
				"5: There is more than one component in this file.",
			},
		},
		{
			name: "nested",
			src: `<script>
export default {
  components: {
    Inner: { template: '<p></p>' },
  },
  mixins: [{ data() { return {} } }],
}
</script>
`,
		},
		{
			name: "setup",
			src: `<script>
export default { inheritAttrs: false }
</script>
<script setup>
const a = 1
</script>
`,
		},
	})
}

func TestRequirePropTypes(t *testing.T) {
	t.Parallel()

	runRuleTests(t, RequirePropTypes, []ruleTest{
		{
			name: "object",
			src: `<script>
export default {
  props: {
    a: String,
    b: {},
    c: { type: [Number, String] },
    d: { default: 1 },
    e: { validator: (v) => v > 0 },
    f: { type: [] },
    ...shared,
  },
}
</script>
`,
			want: []string{
				`5: Prop "b" should define at least its type.`,
				`7: Prop "d" should define at least its type.`,
				`9: Prop "f" should define at least its type.`,
			},
		},
		{
			name: "array",
			src: `<script>
export default {
  props: ['x', 'y'],
}
</script>
`,
			want: []string{
				`3: Prop "x" should define at least its type.`,
				`3: Prop "y" should define at least its type.`,
			},
		},
		{
			name: "setup",
			src: `<script setup>
defineProps(['size'])
</script>
`,
			want: []string{`2: Prop "size" should define at least its type.`},
		},
		{
			name: "typed",
			src: `<script setup>
defineProps({ size: Number, label: { type: String, required: true } })
</script>
`,
		},
	})
}

func TestNoUnusedComponents(t *testing.T) {
	t.Parallel()

	const dynamic = `<template>
  <component :is="current"></component>
</template>
<script>
export default {
  components: { UsedA, UsedB },
}
</script>
`

	runRuleTests(t, NoUnusedComponents, []ruleTest{
		{
			name: "static",
			src: `<template>
  <div>
    <the-header></the-header>
    <FooterBar></FooterBar>
    <component is="side-nav"></component>
    <component :is="'list-view'"></component>
  </div>
</template>
<script>
export default {
  components: {
    TheHeader,
    FooterBar,
    SideNav,
    ListView,
    UnusedItem,
  },
}
</script>
`,
			want: []string{`16: The "UnusedItem" component has been registered but not used.`},
		},
		{
			name: "dynamic",
			src:  dynamic,
		},
		{
			name:    "dynamic_reported",
			src:     dynamic,
			options: []any{map[string]any{"ignoreWhenBindingPresent": false}},
			want: []string{
				`6: The "UsedA" component has been registered but not used.`,
				`6: The "UsedB" component has been registered but not used.`,
			},
		},
		{
			name: "no_template",
			src: `<script>
export default {
  components: { Unused },
}
</script>
`,
		},
	})
}
