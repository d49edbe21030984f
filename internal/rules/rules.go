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

// Package rules contains the lint rules built on the component analysis
// packages.
package rules

import (
	"cmp"
	"slices"

	"fillmore-labs.com/kdulint/internal/rule"
)

// All returns every rule, sorted by name.
func All() []*rule.Rule {
	all := []*rule.Rule{
		AttributeHyphenation,
		NoDeprecatedSlotAttribute,
		NoDupeKeys,
		NoMutatingProps,
		NoParsingError,
		NoRestrictedElements,
		NoTemplateShadow,
		NoUndefProperties,
		NoUnusedComponents,
		NoUnusedProps,
		OneComponentPerFile,
		RequireExplicitEmits,
		RequirePropTypes,
	}

	slices.SortFunc(all, func(a, b *rule.Rule) int { return cmp.Compare(a.Name, b.Name) })

	return all
}

// Names returns the names of all rules.
func Names() []string {
	all := All()

	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Name)
	}

	return names
}

// Lookup returns the rule with the given name.
func Lookup(name string) (*rule.Rule, bool) {
	for _, r := range All() {
		if r.Name == name {
			return r, true
		}
	}

	return nil, false
}
