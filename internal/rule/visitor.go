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

package rule

import (
	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/inspector"
)

// Handler is called for a node of a registered kind.
type Handler func(c inspector.Cursor)

// Domain is the part of a file a handler is registered for.
type Domain uint8

const (
	// Template is the <template> block.
	Template Domain = iota
	// Script is the merged script program.
	Script
	domains
)

type phase uint8

const (
	enter phase = iota
	exit
	phases
)

// Visitor holds the handlers of one rule for one file.
type Visitor struct {
	handlers [domains][phases]map[ast.Kind][]Handler
	done     []func()
}

// NewVisitor returns an empty [Visitor].
func NewVisitor() *Visitor { return &Visitor{} }

func (v *Visitor) on(d Domain, p phase, h Handler, kinds []ast.Kind) *Visitor {
	m := v.handlers[d][p]
	if m == nil {
		m = make(map[ast.Kind][]Handler)
		v.handlers[d][p] = m
	}

	for _, k := range kinds {
		m[k] = append(m[k], h)
	}

	return v
}

// Template registers h for template nodes of the given kinds, in preorder.
func (v *Visitor) Template(h Handler, kinds ...ast.Kind) *Visitor {
	return v.on(Template, enter, h, kinds)
}

// TemplateExit registers h for template nodes of the given kinds, in postorder.
func (v *Visitor) TemplateExit(h Handler, kinds ...ast.Kind) *Visitor {
	return v.on(Template, exit, h, kinds)
}

// Script registers h for script nodes of the given kinds, in preorder.
func (v *Visitor) Script(h Handler, kinds ...ast.Kind) *Visitor {
	return v.on(Script, enter, h, kinds)
}

// ScriptExit registers h for script nodes of the given kinds, in postorder.
func (v *Visitor) ScriptExit(h Handler, kinds ...ast.Kind) *Visitor {
	return v.on(Script, exit, h, kinds)
}

// Done registers f to run after both traversals of the file.
func (v *Visitor) Done(f func()) *Visitor {
	v.done = append(v.done, f)

	return v
}

// entry is a handler with the index of its rule.
type entry struct {
	rule    int
	handler Handler
}

// dispatch is the merged handler table of all rules.
type dispatch struct {
	table [domains][phases]map[ast.Kind][]entry
	kinds [domains]ast.KindSet
}

func (t *dispatch) add(rule int, v *Visitor, skipTemplate bool) {
	for d := range domains {
		if d == Template && skipTemplate {
			continue
		}

		for p := range phases {
			for k, hs := range v.handlers[d][p] {
				if t.table[d][p] == nil {
					t.table[d][p] = make(map[ast.Kind][]entry)
				}

				for _, h := range hs {
					t.table[d][p][k] = append(t.table[d][p][k], entry{rule, h})
				}

				t.kinds[d].Union(ast.KindsOf(k))
			}
		}
	}
}

func (t *dispatch) empty(d Domain) bool {
	return t.kinds[d].Empty()
}
