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

// Package casing detects and converts between the name casing families used
// across templates and scripts.
package casing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Family is a casing convention.
type Family uint8

//go:generate go tool stringer -type Family -linecomment
const (
	CamelCase  Family = iota // camelCase
	PascalCase               // PascalCase
	KebabCase                // kebab-case
	SnakeCase                // snake_case
)

// Families lists all casing families.
var Families = [...]Family{CamelCase, PascalCase, KebabCase, SnakeCase}

// ParseFamily parses a family name as written in rule options.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown casing %q", name)
}

// Is reports whether s is written in family f.
func (f Family) Is(s string) bool {
	switch f {
	case CamelCase:
		return IsCamelCase(s)
	case PascalCase:
		return IsPascalCase(s)
	case KebabCase:
		return IsKebabCase(s)
	case SnakeCase:
		return IsSnakeCase(s)
	default:
		return false
	}
}

// Convert rewrites s into family f.
func (f Family) Convert(s string) string {
	switch f {
	case CamelCase:
		return Camel(s)
	case PascalCase:
		return Pascal(s)
	case KebabCase:
		return Kebab(s)
	case SnakeCase:
		return Snake(s)
	default:
		return s
	}
}

func hasSymbols(s string) bool { return strings.ContainsAny(s, "!\"#%&'()*+,./:;<=>?@[\\]^`{|}") }

func hasUpper(s string) bool { return strings.IndexFunc(s, unicode.IsUpper) >= 0 }

func hasSpace(s string) bool { return strings.IndexFunc(s, unicode.IsSpace) >= 0 }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)

	return r
}

// IsKebabCase reports whether s is lower case words joined by single hyphens.
func IsKebabCase(s string) bool {
	return !hasUpper(s) && !hasSymbols(s) && !hasSpace(s) &&
		!strings.HasPrefix(s, "-") && !strings.Contains(s, "_") && !strings.Contains(s, "--")
}

// IsSnakeCase reports whether s is lower case words joined by single underscores.
func IsSnakeCase(s string) bool {
	return !hasUpper(s) && !hasSymbols(s) && !hasSpace(s) &&
		!strings.Contains(s, "-") && !strings.Contains(s, "__")
}

// IsCamelCase reports whether s starts lower case and has no separators.
func IsCamelCase(s string) bool {
	return !hasSymbols(s) && !hasSpace(s) && !unicode.IsUpper(firstRune(s)) && !strings.ContainsAny(s, "-_")
}

// IsPascalCase reports whether s starts upper case and has no separators.
func IsPascalCase(s string) bool {
	return !hasSymbols(s) && !hasSpace(s) && !unicode.IsLower(firstRune(s)) && !strings.ContainsAny(s, "-_")
}

// delimit lower-cases s and inserts sep before every upper case letter
// that is not at a word start, replacing other separators.
func delimit(s string, sep byte) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prev := rune(-1)
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			b.WriteByte(sep)

		case unicode.IsUpper(r):
			if prev >= 0 && (unicode.IsLetter(prev) || unicode.IsDigit(prev)) {
				b.WriteByte(sep)
			}

			b.WriteRune(unicode.ToLower(r))

		default:
			b.WriteRune(r)
		}

		prev = r
	}

	return b.String()
}

// Kebab converts s to kebab-case: `fooBar` and `foo_bar` become `foo-bar`.
func Kebab(s string) string { return delimit(s, '-') }

// Snake converts s to snake_case: `fooBar` and `foo-bar` become `foo_bar`.
func Snake(s string) string { return delimit(s, '_') }

// Camel converts s to camelCase: `foo-bar`, `foo_bar` and `FooBar` become `fooBar`.
func Camel(s string) string {
	if IsPascalCase(s) {
		r, n := utf8.DecodeRuneInString(s)

		return string(unicode.ToLower(r)) + s[n:]
	}

	var b strings.Builder
	b.Grow(len(s))

	upper := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			upper = true

		case upper:
			b.WriteRune(unicode.ToUpper(r))

			upper = false

		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Pascal converts s to PascalCase.
func Pascal(s string) string {
	c := Camel(s)
	r, n := utf8.DecodeRuneInString(c)

	return string(unicode.ToUpper(r)) + c[n:]
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, n := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[n:]
}

// MatchesBinding reports whether a template usage refers to a script binding.
// A usage matches when it equals the binding. A kebab-case usage also matches
// the camelCase or PascalCase form of the binding; a snake_case binding is
// only matched verbatim.
func MatchesBinding(usage, binding string) bool {
	if usage == binding {
		return true
	}

	if !strings.Contains(usage, "-") || strings.Contains(binding, "_") {
		return false
	}

	return Camel(usage) == binding || Pascal(usage) == binding
}

// SameComponent reports whether two component names denote the same
// component, comparing their PascalCase forms.
func SameComponent(a, b string) bool {
	return a == b || Pascal(a) == Pascal(b)
}
