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

// Package property extracts declared props, emits, computed properties,
// registered components and option members from component descriptors.
//
// Array, object and type declarations are unified into one [Property]
// shape. Entries whose name cannot be determined statically are kept as
// placeholders with Known unset, so positional checks stay valid.
package property

import (
	"fillmore-labs.com/kdulint/internal/ast"
)

// Form is the declaration style of a [Property].
type Form uint8

//go:generate go tool stringer -type Form -linecomment
const (
	FormArray   Form = iota // array
	FormObject              // object
	FormType                // type
	FormBinding             // binding
)

// Property is one declared prop, emit or computed property.
type Property struct {
	Name  string
	Known bool // false when the name is not statically known
	Form  Form

	Node ast.Node // the declaration entry
	Key  ast.Node // the name node, nil when unknown

	// Value is the option value of object declarations.
	Value ast.Node
	// Type is the `type` option of object declarations, or the annotation
	// of type declarations.
	Type ast.Node
	// Default is the default value from the `default` option, withDefaults
	// or a destructuring default.
	Default ast.Node

	Required bool
	// Types are the runtime type names, like String or Array. Empty means
	// any type.
	Types []string
}

// Registered is an entry of a components option.
type Registered struct {
	Name  string
	Node  *ast.Property
	Value ast.Node
}

func unknown(form Form, node ast.Node) *Property {
	return &Property{Form: form, Node: node}
}

func known(form Form, name string, node, key ast.Node) *Property {
	return &Property{Name: name, Known: true, Form: form, Node: node, Key: key}
}

// Names returns the known names of props in declaration order.
func Names(props []*Property) []string {
	names := make([]string, 0, len(props))

	for _, p := range props {
		if p.Known {
			names = append(names, p.Name)
		}
	}

	return names
}
