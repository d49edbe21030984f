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

package rules

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/component"
	"fillmore-labs.com/kdulint/internal/property"
	"fillmore-labs.com/kdulint/internal/rule"
)

// propNames returns the statically known prop names of d.
func propNames(f *rule.File, d *component.Descriptor) map[string]bool {
	names := make(map[string]bool)

	if d == nil {
		return names
	}

	for _, p := range f.Props(d) {
		if p.Known {
			names[p.Name] = true
		}
	}

	return names
}

// propsObjects returns the bindings holding the props object of d: the
// first parameter of setup and the target of defineProps or withDefaults.
// Both may be identifiers or destructuring patterns.
func propsObjects(d *component.Descriptor) []ast.Node {
	var objects []ast.Node

	if p := d.Option("setup"); p != nil {
		if fn, ok := ast.AsFunc(astutil.Unwrap(p.Value)); ok && len(fn.Params) > 0 {
			objects = append(objects, fn.Params[0])
		}
	}

	for _, m := range d.MacrosNamed("defineProps") {
		if m.Target != nil {
			objects = append(objects, m.Target)
		}
	}

	return objects
}

// isThisProps reports whether n is `this` or `this.$props`.
func isThisProps(n ast.Node) bool {
	n = astutil.Unwrap(n)
	if astutil.IsThis(n) {
		return true
	}

	m, ok := n.(*ast.MemberExpression)
	if !ok || !astutil.IsThis(m.Object) {
		return false
	}

	name, _ := astutil.MemberName(m)

	return name == "$props"
}

// primaryProps returns the props of the file's component.
func primaryProps(f *rule.File) []*property.Property {
	var props []*property.Property

	for _, d := range f.Components().Primary() {
		props = append(props, f.Props(d)...)
	}

	return props
}
