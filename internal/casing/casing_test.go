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

package casing_test

import (
	"testing"

	. "fillmore-labs.com/kdulint/internal/casing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		in                          string
		camel, pascal, kebab, snake string
	}{
		{"fooBar", "fooBar", "FooBar", "foo-bar", "foo_bar"},
		{"FooBar", "fooBar", "FooBar", "foo-bar", "foo_bar"},
		{"foo-bar", "fooBar", "FooBar", "foo-bar", "foo_bar"},
		{"foo_bar", "fooBar", "FooBar", "foo-bar", "foo_bar"},
		{"foo2Bar", "foo2Bar", "Foo2Bar", "foo2-bar", "foo2_bar"},
		{"update:modelValue", "update:modelValue", "Update:modelValue", "update:model-value", "update:model_value"},
		{"x", "x", "X", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			for _, c := range [...]struct {
				f    Family
				want string
			}{{CamelCase, tt.camel}, {PascalCase, tt.pascal}, {KebabCase, tt.kebab}, {SnakeCase, tt.snake}} {
				if got := c.f.Convert(tt.in); got != c.want {
					t.Errorf("%s(%q) = %q, expected %q", c.f, tt.in, got, c.want)
				}
			}
		})
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		in                          string
		camel, pascal, kebab, snake bool
	}{
		{"fooBar", true, false, false, false},
		{"FooBar", false, true, false, false},
		{"foo-bar", false, false, true, false},
		{"foo_bar", false, false, false, true},
		{"foo", true, false, true, true},
		{"-foo", false, false, false, false},
		{"foo--bar", false, false, false, false},
		{"foo bar", false, false, false, false},
		{"foo.bar", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := IsCamelCase(tt.in); got != tt.camel {
				t.Errorf("IsCamelCase(%q) = %t, expected %t", tt.in, got, tt.camel)
			}

			if got := IsPascalCase(tt.in); got != tt.pascal {
				t.Errorf("IsPascalCase(%q) = %t, expected %t", tt.in, got, tt.pascal)
			}

			if got := IsKebabCase(tt.in); got != tt.kebab {
				t.Errorf("IsKebabCase(%q) = %t, expected %t", tt.in, got, tt.kebab)
			}

			if got := IsSnakeCase(tt.in); got != tt.snake {
				t.Errorf("IsSnakeCase(%q) = %t, expected %t", tt.in, got, tt.snake)
			}
		})
	}
}

func TestMatchesBinding(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		usage, binding string
		want           bool
	}{
		{"foo-bar", "fooBar", true},
		{"fooBar", "fooBar", true},
		{"foo-bar", "FooBar", true},
		{"fooBar", "foo_bar", false},
		{"foo-bar", "foo_bar", false},
		{"foo_bar", "foo_bar", true},
		{"fooBar", "fooBaz", false},
		{"foo_bar", "fooBar", false},
		{"FooBar", "fooBar", false},
		{"fooBar", "FooBar", false},
		{"my-comp", "MyComp", true},
	}

	for _, tt := range tests {
		if got := MatchesBinding(tt.usage, tt.binding); got != tt.want {
			t.Errorf("MatchesBinding(%q, %q) = %t, expected %t", tt.usage, tt.binding, got, tt.want)
		}
	}
}

func TestParseFamily(t *testing.T) {
	t.Parallel()

	for _, f := range Families {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%q) = %v, %v", f.String(), got, err)
		}
	}

	if _, err := ParseFamily("Title Case"); err == nil {
		t.Error("Expected error for unknown casing")
	}
}

func TestSameComponent(t *testing.T) {
	t.Parallel()

	if !SameComponent("my-comp", "MyComp") || !SameComponent("myComp", "MyComp") {
		t.Error("Equivalent component names should match")
	}

	if SameComponent("my-comp", "MyOther") {
		t.Error("Different component names should not match")
	}
}
