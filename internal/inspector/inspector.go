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

// Package inspector provides an arena over the nodes of one component file.
//
// Nodes do not carry parent pointers. Instead, an [Inspector] records a
// preorder event table holding, for every node, the index of its parent,
// its previous sibling and its last descendant. A [Cursor] navigates this
// table in constant time per step. The arena owns the table for the
// lifetime of one file's analysis and is discarded together with the tree.
package inspector

import (
	"iter"

	"fillmore-labs.com/kdulint/internal/ast"
)

type entry struct {
	node   ast.Node
	parent int32 // -1 for roots
	prev   int32 // previous sibling, -1 when first
	last   int32 // last descendant, equal to own index for leaves
}

// Inspector is the node arena of one file.
type Inspector struct {
	entries []entry
	index   map[ast.Node]int32
}

// New builds an arena over the given trees. Each root becomes a child of the
// virtual [Inspector.Root] cursor, in argument order. Nil roots are skipped.
func New(roots ...ast.Node) *Inspector {
	in := &Inspector{index: make(map[ast.Node]int32)}

	prev := int32(-1)
	for _, root := range roots {
		if root == nil {
			continue
		}

		prev = in.add(root, -1, prev)
	}

	return in
}

func (in *Inspector) add(n ast.Node, parent, prev int32) int32 {
	i := int32(len(in.entries))
	in.entries = append(in.entries, entry{node: n, parent: parent, prev: prev})
	in.index[n] = i

	last := int32(-1)
	for c := range ast.Children(n) {
		last = in.add(c, i, last)
	}

	in.entries[i].last = int32(len(in.entries)) - 1

	return i
}

// Len returns the number of nodes in the arena.
func (in *Inspector) Len() int { return len(in.entries) }

// Root returns the virtual cursor above all roots.
func (in *Inspector) Root() Cursor { return Cursor{in: in, index: -1} }

// At returns the cursor at the given index.
func (in *Inspector) At(index int32) Cursor {
	if index < -1 || int(index) >= len(in.entries) {
		panic("inspector: index out of range")
	}

	return Cursor{in: in, index: index}
}

// Find returns the cursor of n.
func (in *Inspector) Find(n ast.Node) (Cursor, bool) {
	i, ok := in.index[n]
	if !ok {
		return Cursor{}, false
	}

	return Cursor{in: in, index: i}, true
}

// Parent returns the parent node of n, or nil for roots and unknown nodes.
func (in *Inspector) Parent(n ast.Node) ast.Node {
	c, ok := in.Find(n)
	if !ok {
		return nil
	}

	return c.Parent().Node()
}

// Cursor is a position in an [Inspector] arena.
type Cursor struct {
	in    *Inspector
	index int32
}

// Valid reports whether the cursor belongs to an arena.
func (c Cursor) Valid() bool { return c.in != nil }

// Inspector returns the arena of c.
func (c Cursor) Inspector() *Inspector { return c.in }

// Index returns the preorder index of the node, -1 for the root cursor.
func (c Cursor) Index() int32 { return c.index }

// Node returns the node at the cursor, nil for the root cursor.
func (c Cursor) Node() ast.Node {
	if c.index < 0 {
		return nil
	}

	return c.in.entries[c.index].node
}

// Parent returns the cursor of the parent node. The parent of a root is the
// root cursor; the parent of the root cursor is itself.
func (c Cursor) Parent() Cursor {
	if c.index < 0 {
		return c
	}

	return Cursor{in: c.in, index: c.in.entries[c.index].parent}
}

func (c Cursor) end() int32 {
	if c.index < 0 {
		return int32(len(c.in.entries)) - 1
	}

	return c.in.entries[c.index].last
}

// FirstChild returns the first child of c.
func (c Cursor) FirstChild() (Cursor, bool) {
	if i := c.index + 1; i <= c.end() {
		return Cursor{in: c.in, index: i}, true
	}

	return Cursor{}, false
}

// NextSibling returns the following sibling of c.
func (c Cursor) NextSibling() (Cursor, bool) {
	if c.index < 0 {
		return Cursor{}, false
	}

	i := c.in.entries[c.index].last + 1
	if int(i) < len(c.in.entries) && c.in.entries[i].parent == c.in.entries[c.index].parent {
		return Cursor{in: c.in, index: i}, true
	}

	return Cursor{}, false
}

// PrevSibling returns the preceding sibling of c.
func (c Cursor) PrevSibling() (Cursor, bool) {
	if c.index < 0 {
		return Cursor{}, false
	}

	if i := c.in.entries[c.index].prev; i >= 0 {
		return Cursor{in: c.in, index: i}, true
	}

	return Cursor{}, false
}

// Children yields the direct children of c in source order.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for child, ok := c.FirstChild(); ok; child, ok = child.NextSibling() {
			if !yield(child) {
				return
			}
		}
	}
}

// Contains reports whether d is c or one of its descendants.
func (c Cursor) Contains(d Cursor) bool {
	return c.in == d.in && c.index <= d.index && d.index <= c.end()
}

// Preorder yields the strict descendants of c in depth-first source order,
// restricted to the given kinds when any are given.
func (c Cursor) Preorder(kinds ...ast.Kind) iter.Seq[Cursor] {
	filter := ast.KindsOf(kinds...)
	all := filter.Empty()

	return func(yield func(Cursor) bool) {
		for i, end := c.index+1, c.end(); i <= end; i++ {
			if !all && !filter.Has(c.in.entries[i].node.Kind()) {
				continue
			}

			if !yield(Cursor{in: c.in, index: i}) {
				return
			}
		}
	}
}

// Enclosing yields c and its ancestors, innermost first, restricted to the
// given kinds when any are given. The root cursor is never yielded.
func (c Cursor) Enclosing(kinds ...ast.Kind) iter.Seq[Cursor] {
	filter := ast.KindsOf(kinds...)
	all := filter.Empty()

	return func(yield func(Cursor) bool) {
		for i := c.index; i >= 0; i = c.in.entries[i].parent {
			if !all && !filter.Has(c.in.entries[i].node.Kind()) {
				continue
			}

			if !yield(Cursor{in: c.in, index: i}) {
				return
			}
		}
	}
}

// Inspect visits the descendants of c in depth-first order. If f returns
// false, the subtree of that node is skipped.
func (c Cursor) Inspect(f func(Cursor) bool) {
	for i, end := c.index+1, c.end(); i <= end; {
		if f(Cursor{in: c.in, index: i}) {
			i++
		} else {
			i = c.in.entries[i].last + 1
		}
	}
}

// Walk visits the descendants of c, calling enter in preorder and exit in
// postorder. If enter returns false, the subtree is skipped but exit is
// still called for that node.
func (c Cursor) Walk(enter func(Cursor) bool, exit func(Cursor)) {
	var stack []int32

	for i, end := c.index+1, c.end(); i <= end; {
		// Close all nodes whose subtree ends before i.
		for len(stack) > 0 && c.in.entries[stack[len(stack)-1]].last < i {
			exit(Cursor{in: c.in, index: stack[len(stack)-1]})
			stack = stack[:len(stack)-1]
		}

		if enter(Cursor{in: c.in, index: i}) {
			stack = append(stack, i)
			i++

			continue
		}

		exit(Cursor{in: c.in, index: i})
		i = c.in.entries[i].last + 1
	}

	for len(stack) > 0 {
		exit(Cursor{in: c.in, index: stack[len(stack)-1]})
		stack = stack[:len(stack)-1]
	}
}
