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
	"context"
	"errors"
	"go/token"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/parser"
	"fillmore-labs.com/kdulint/internal/rule"
	. "fillmore-labs.com/kdulint/internal/rules"
	"fillmore-labs.com/kdulint/internal/selector"
	"fillmore-labs.com/kdulint/internal/testsource"
)

func TestRequireExplicitEmits(t *testing.T) {
	t.Parallel()

	runRuleTests(t, RequireExplicitEmits, []ruleTest{
		{
			name: "options",
			src: `<template>
  <button @click="$emit('focused')" @mouseover="$emit('hover')">x</button>
</template>
<script>
export default {
  props: ['onHover'],
  emits: ['close'],
  methods: {
    save() {
      this.$emit('close')
      this.$emit('update-value', 1)
    },
  },
}
</script>
`,
			want: []string{
				"2: The \"focused\" event has been triggered but not declared on `emits` option.",
				"11: The \"update-value\" event has been triggered but not declared on `emits` option.",
			},
		},
		{
			name: "casing",
			src: `<script>
export default {
  emits: ['updateValue'],
  methods: {
    save() { this.$emit('update-value', 1) },
  },
}
</script>
`,
		},
		{
			name: "setup",
			src: `<script setup>
const emit = defineEmits(['save'])
emit('save')
emit('cancel')
</script>
`,
			want: []string{"4: The \"cancel\" event has been triggered but not declared on `defineEmits`."},
		},
		{
			name: "unknown_declaration",
			src: `<script>
export default {
  emits: [...names],
  methods: {
    save() { this.$emit('anything') },
  },
}
</script>
`,
		},
	})
}

func TestNoRestrictedElements(t *testing.T) {
	t.Parallel()

	runRuleTests(t, NoRestrictedElements, []ruleTest{
		{
			name: "selectors",
			src: `<template>
  <div>
    <marquee>old</marquee>
    <button class="btn primary">a</button>
    <button>b</button>
    <section>
      <p>x</p>
      <div><p>y</p></div>
    </section>
  </div>
</template>
`,
			options: []any{
				"marquee",
				map[string]any{"element": "button.btn", "message": "Use the app button."},
				"section > p",
			},
			want: []string{
				"3: Using `marquee` is not allowed.",
				"4: Use the app button.",
				"7: Using `section > p` is not allowed.",
			},
		},
		{
			name: "unconfigured",
			src:  "<template>\n  <marquee>old</marquee>\n</template>\n",
		},
	})
}

func TestNoRestrictedElementsMalformed(t *testing.T) {
	t.Parallel()

	cfg := map[string]config.RuleConfig{
		NoRestrictedElements.Name: {Severity: config.SeverityError, Options: []any{"marquee", "div["}},
	}
	runner := rule.NewRunner([]*rule.Rule{NoRestrictedElements}, cfg, config.DefaultBehavior(), slog.New(slog.DiscardHandler))

	errs := runner.SetupErrors()
	if len(errs) != 1 {
		t.Fatalf("Got %d setup errors, expected 1", len(errs))
	}

	if !errors.Is(errs[0], selector.ErrSyntax) {
		t.Errorf("Got setup error %v, expected %v", errs[0], selector.ErrSyntax)
	}

	f, _ := parser.ParseFile(token.NewFileSet(), "test.kdu", []byte("<template>\n  <div><marquee>old</marquee></div>\n</template>\n"))

	messages := testsource.Messages(runner.Lint(context.Background(), f))
	if len(messages) == 0 || messages[len(messages)-1] != "Using `marquee` is not allowed." {
		t.Errorf("Got messages %q, expected the valid selector to still apply", messages)
	}
}

func TestNoParsingError(t *testing.T) {
	t.Parallel()

	got := lint(t, NoParsingError, "<template>\n  <div :a=\"1 +\"></div>\n</template>\n")
	if len(got) == 0 {
		t.Fatal("Got no diagnostics, expected a parsing error")
	}

	for _, d := range got {
		if !strings.HasPrefix(d, "2: Parsing error: ") {
			t.Errorf("Got %q, expected a parsing error on line 2", d)
		}
	}

	if got := lint(t, NoParsingError, "<template>\n  <div :a=\"1 + 2\"></div>\n</template>\n"); len(got) > 0 {
		t.Errorf("Got %q on a valid file", got)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	names := Names()

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Rules %q and %q are not sorted or not unique", names[i-1], names[i])
		}
	}

	for _, r := range All() {
		if err := config.ValidateOptions(r.Schema, nil); err != nil {
			t.Errorf("Schema of rule %s: %v", r.Name, err)
		}

		if got, ok := Lookup(r.Name); !ok || got != r {
			t.Errorf("Lookup(%q) = %v, %t", r.Name, got, ok)
		}

		if len(r.Messages) == 0 {
			t.Errorf("Rule %s has no messages", r.Name)
		}
	}

	if _, ok := Lookup("no-such-rule"); ok {
		t.Error("Lookup found an unknown rule")
	}

	if diff := cmp.Diff(len(names), len(All())); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestPartialFiles(t *testing.T) {
	t.Parallel()

	cfg := make(map[string]config.RuleConfig)
	for _, name := range Names() {
		cfg[name] = config.RuleConfig{Severity: config.SeverityError}
	}

	runner := rule.NewRunner(All(), cfg, config.DefaultBehavior(), slog.New(slog.DiscardHandler))

	tests := [...]struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"script_only", "<script>\nexport default { props: ['a'] }\n</script>\n"},
		{"script_setup_only", "<script setup>\nconst props = defineProps(['a'])\nprops.a = 1\n</script>\n"},
		{"style_only", "<style>.a { color: k-bind(color) }</style>\n"},
		{"stray_element", "<div></div>"},
		{"unterminated_template", "<template>"},
		{"bare_end_tag", "<template><p>a </ b</p></template>\n<script>\nexport default {}\n</script>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, _ := parser.ParseFile(token.NewFileSet(), "partial.kdu", []byte(tt.src))

			for _, m := range testsource.Messages(runner.Lint(context.Background(), f)) {
				if strings.HasPrefix(m, "Internal Error") {
					t.Errorf("Got %q", m)
				}
			}
		})
	}
}
