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

func TestNoMutatingProps(t *testing.T) {
	t.Parallel()

	runRuleTests(t, NoMutatingProps, []ruleTest{
		{
			name: "options",
			src: `<template>
  <div>
    <input k-model="value">
    <button @click="count++">x</button>
    <button @click="items.push(1)">y</button>
    <button @click="local = 1">z</button>
  </div>
</template>
<script>
export default {
  props: ['value', 'count', 'items', 'obj'],
  data() {
    return { local: 0 }
  },
  methods: {
    reset() {
      this.count = 0
      this.$props.items.push(2)
      this.local = 1
      this.$set(this.obj, 'k', 1)
      Kdu.delete(this.obj, 'k')
      const { obj } = this
      obj.a = 1
      let { count: c } = this
      c = 5
    }
  }
}
</script>
`,
			want: []string{
				`3: Unexpected mutation of "value" prop.`,
				`4: Unexpected mutation of "count" prop.`,
				`5: Unexpected mutation of "items" prop.`,
				`17: Unexpected mutation of "count" prop.`,
				`18: Unexpected mutation of "items" prop.`,
				`20: Unexpected mutation of "obj" prop.`,
				`21: Unexpected mutation of "obj" prop.`,
				`23: Unexpected mutation of "obj" prop.`,
			},
		},
		{
			name: "setup_alias",
			src: `<script setup>
const props = defineProps({ count: Number })
function inc() {
  props.count++
}
</script>
<template>
  <button @click="props.count = 0">{{ count }}</button>
</template>
`,
			want: []string{
				`4: Unexpected mutation of "count" prop.`,
				`8: Unexpected mutation of "count" prop.`,
			},
		},
		{
			name: "setup_destructured",
			src: `<script setup>
const { list, label } = defineProps(['list', 'label'])
list.push(1)
console.log(label)
</script>
<template>
  <div @click="list.push(2)">{{ label }}</div>
</template>
`,
			want: []string{
				`3: Unexpected mutation of "list" prop.`,
				`7: Unexpected mutation of "list" prop.`,
			},
		},
		{
			name: "no_props",
			src: `<script>
export default {
  data() {
    return { count: 0 }
  },
  methods: {
    inc() { this.count++ }
  }
}
</script>
`,
		},
	})
}
