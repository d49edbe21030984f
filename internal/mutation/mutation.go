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

// Package mutation finds expressions that modify an object in place.
package mutation

import (
	"strconv"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
	"fillmore-labs.com/kdulint/internal/inspector"
)

// Kind classifies a mutation.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	KindAssignment         Kind = iota // assignment
	KindCompoundAssignment             // compound-assignment
	KindUpdate                         // update
	KindDestructiveCall                // destructive-call
	KindKduSet                         // kdu-set-call
	KindDelete                         // delete
)

// Mutation is the outermost expression modifying a value reached from a
// leaf expression.
type Mutation struct {
	Node ast.Node
	// Path lists the member expressions between the leaf and Node, innermost
	// first. An empty path means the leaf itself is reassigned.
	Path []*ast.MemberExpression
	Kind Kind
}

// destructive are array methods that modify the receiver.
var destructive = map[string]bool{
	"push": true, "pop": true, "shift": true, "unshift": true, "reverse": true,
	"splice": true, "sort": true, "copyWithin": true, "fill": true,
}

// setters are the reactive set and delete helpers taking the target first.
var setters = map[string]bool{
	"Kdu.set": true, "Kdu.delete": true, "set": true, "del": true,
	"$set": true, "$delete": true, "this.$set": true, "this.$delete": true,
}

// Find walks from leaf through member accesses to the expression that
// mutates it, if any.
//
//nolint:gocyclo,cyclop,funlen
func Find(in *inspector.Inspector, leaf ast.Node) (*Mutation, bool) {
	cur, ok := in.Find(leaf)
	if !ok {
		return nil, false
	}

	var path []*ast.MemberExpression

	for {
		parent := cur.Parent()
		node := cur.Node()

		switch p := parent.Node().(type) {
		case *ast.MemberExpression:
			if p.Object != node {
				return nil, false
			}

			if name, ok := astutil.MemberName(p); ok && destructive[name] {
				if call, ok := parent.Parent().Node().(*ast.CallExpression); ok && call.Callee == ast.Node(p) {
					return &Mutation{Node: call, Path: path, Kind: KindDestructiveCall}, true
				}
			}

			path = append(path, p)

		case *ast.ChainExpression, *ast.TSNonNullExpression, *ast.TSAsExpression, *ast.TSSatisfiesExpression:

		case *ast.AssignmentExpression:
			if p.Left != node {
				return nil, false
			}

			kind := KindCompoundAssignment
			if p.Operator == "=" {
				kind = KindAssignment
			}

			return &Mutation{Node: p, Path: path, Kind: kind}, true

		case *ast.UpdateExpression:
			return &Mutation{Node: p, Path: path, Kind: KindUpdate}, true

		case *ast.UnaryExpression:
			if p.Operator != "delete" {
				return nil, false
			}

			return &Mutation{Node: p, Path: path, Kind: KindDelete}, true

		case *ast.CallExpression:
			if len(p.Arguments) == 0 || p.Arguments[0] != node || !setters[astutil.CalleeName(p.Callee)] {
				return nil, false
			}

			return &Mutation{Node: p, Path: path, Kind: KindKduSet}, true

		case *ast.ArrayPattern, *ast.RestElement, *ast.ObjectPattern:
			if target, ok := patternTarget(parent); ok {
				return &Mutation{Node: target, Path: path, Kind: KindAssignment}, true
			}

			return nil, false

		case *ast.Property:
			if p.Value != node {
				return nil, false
			}

			if _, ok := parent.Parent().Node().(*ast.ObjectPattern); !ok {
				return nil, false
			}

		case *ast.AssignmentPattern:
			if p.Left != node {
				return nil, false
			}

		default:
			return nil, false
		}

		cur = parent
	}
}

// patternTarget returns the assignment or loop that a destructuring
// pattern assigns to. Declarations bind new variables and yield false.
func patternTarget(c inspector.Cursor) (ast.Node, bool) {
	for {
		child := c.Node()
		c = c.Parent()

		switch p := c.Node().(type) {
		case *ast.ArrayPattern, *ast.ObjectPattern, *ast.RestElement, *ast.Property:

		case *ast.AssignmentPattern:
			if p.Left != child {
				return nil, false
			}

		case *ast.AssignmentExpression:
			return p, p.Left == child

		case *ast.ForInStatement:
			return p, p.Left == child

		case *ast.ForOfStatement:
			return p, p.Left == child

		default:
			return nil, false
		}
	}
}

// Leaf is a binding introduced by destructuring.
type Leaf struct {
	ID *ast.Identifier
	// Path is the chain of keys from the destructured value to the leaf.
	// Array elements use their index.
	Path []string
	// Rest is set for bindings of rest elements, which receive a shallow
	// copy of the remaining entries.
	Rest bool
}

// Leaves returns the bindings of a destructuring pattern in source order.
// Entries with computed keys are skipped.
func Leaves(pattern ast.Node) []Leaf {
	var leaves []Leaf

	var walk func(n ast.Node, path []string, rest bool)
	walk = func(n ast.Node, path []string, rest bool) {
		switch n := n.(type) {
		case *ast.Identifier:
			leaves = append(leaves, Leaf{ID: n, Path: path, Rest: rest})

		case *ast.AssignmentPattern:
			walk(n.Left, path, rest)

		case *ast.RestElement:
			walk(n.Argument, path, true)

		case *ast.ObjectPattern:
			for _, p := range n.Properties {
				prop, ok := p.(*ast.Property)
				if !ok {
					walk(p, path, rest)

					continue
				}

				key, ok := astutil.PropertyName(prop)
				if !ok {
					continue
				}

				walk(prop.Value, append(path[:len(path):len(path)], key), false)
			}

		case *ast.ArrayPattern:
			for i, e := range n.Elements {
				if e != nil {
					walk(e, append(path[:len(path):len(path)], strconv.Itoa(i)), false)
				}
			}
		}
	}

	walk(pattern, nil, false)

	return leaves
}

// Reaches reports whether a mutation through the leaf modifies the
// destructured value itself rather than a local copy. Reassigning a leaf
// never does; for rest bindings the first level only touches the copy.
func (l Leaf) Reaches(m *Mutation) bool {
	depth := len(m.Path)
	if m.Kind == KindDestructiveCall || m.Kind == KindKduSet {
		depth++ // modifies the value the path leads to
	}

	if l.Rest {
		return depth >= 2
	}

	return depth >= 1
}

// Source returns the top-level key of the destructured value that the
// mutation modifies.
func (l Leaf) Source(m *Mutation) (string, bool) {
	if len(l.Path) > 0 {
		return l.Path[0], true
	}

	if l.Rest && len(m.Path) > 0 {
		return astutil.MemberName(m.Path[0])
	}

	return "", false
}
