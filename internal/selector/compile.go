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

package selector

import (
	"fmt"
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/casing"
	"fillmore-labs.com/kdulint/internal/inspector"
)

// matchFunc tests a candidate element. scope is the anchor of an enclosing
// :has, the candidate's own cursor otherwise.
type matchFunc func(c, scope inspector.Cursor) bool

func never(inspector.Cursor, inspector.Cursor) bool { return false }

func isScope(c, scope inspector.Cursor) bool {
	return c.Inspector() == scope.Inspector() && c.Index() == scope.Index()
}

type compiler struct {
	depth int // nesting level inside functional pseudo-classes
}

func (cc *compiler) list(list []*complexSel) (matchFunc, error) {
	fns := make([]matchFunc, 0, len(list))

	for _, cs := range list {
		fn, err := cc.complex(cs)
		if err != nil {
			return nil, err
		}

		fns = append(fns, fn)
	}

	if len(fns) == 1 {
		return fns[0], nil
	}

	return func(c, scope inspector.Cursor) bool {
		for _, fn := range fns {
			if fn(c, scope) {
				return true
			}
		}

		return false
	}, nil
}

// complex builds the chain right to left: the rightmost compound tests the
// candidate and every combinator walks outward or backward for its left side.
func (cc *compiler) complex(cs *complexSel) (matchFunc, error) {
	fn, err := cc.compound(cs.compounds[0])
	if err != nil {
		return nil, err
	}

	if cs.relative != 0 {
		fn = combine(cs.relative, isScope, fn)
	}

	for i, comb := range cs.combs {
		right, err := cc.compound(cs.compounds[i+1])
		if err != nil {
			return nil, err
		}

		fn = combine(comb, fn, right)
	}

	return fn, nil
}

func combine(comb combinator, left, right matchFunc) matchFunc {
	switch comb {
	case child:
		return func(c, scope inspector.Cursor) bool {
			if !right(c, scope) {
				return false
			}

			p, ok := parentElement(c)

			return ok && left(p, scope)
		}

	case adjacent:
		return func(c, scope inspector.Cursor) bool {
			if !right(c, scope) {
				return false
			}

			p, ok := previousElement(c)

			return ok && left(p, scope)
		}

	case sibling:
		return func(c, scope inspector.Cursor) bool {
			if !right(c, scope) {
				return false
			}

			for p, ok := previousElement(c); ok; p, ok = previousElement(p) {
				if left(p, scope) {
					return true
				}
			}

			return false
		}

	default: // descendant
		return func(c, scope inspector.Cursor) bool {
			if !right(c, scope) {
				return false
			}

			for p, ok := parentElement(c); ok; p, ok = parentElement(p) {
				if left(p, scope) {
					return true
				}
			}

			return false
		}
	}
}

func (cc *compiler) compound(comp *compound) (matchFunc, error) {
	preds := make([]func(el *ast.Element, c, scope inspector.Cursor) bool, 0, len(comp.simples)+1)

	if comp.tag != "" && comp.tag != "*" {
		tag := comp.tag
		preds = append(preds, func(el *ast.Element, _, _ inspector.Cursor) bool { return matchTag(el, tag) })
	}

	for _, s := range comp.simples {
		pred, err := cc.simple(s)
		if err != nil {
			return nil, err
		}

		preds = append(preds, pred)
	}

	return func(c, scope inspector.Cursor) bool {
		el, ok := c.Node().(*ast.Element)
		if !ok {
			return false
		}

		for _, pred := range preds {
			if !pred(el, c, scope) {
				return false
			}
		}

		return true
	}, nil
}

//nolint:gocyclo,cyclop
func (cc *compiler) simple(s simple) (func(el *ast.Element, c, scope inspector.Cursor) bool, error) {
	switch s := s.(type) {
	case idSel:
		return func(el *ast.Element, _, _ inspector.Cursor) bool {
			id, ok := el.AttrValueOf("id")

			return ok && id == s.name
		}, nil

	case classSel:
		return func(el *ast.Element, _, _ inspector.Cursor) bool {
			class, _ := el.AttrValueOf("class")

			for _, name := range strings.Fields(class) {
				if name == s.name {
					return true
				}
			}

			return false
		}, nil

	case attrSel:
		return func(el *ast.Element, _, _ inspector.Cursor) bool { return matchAttr(el, s) }, nil

	case pseudoSel:
		return cc.pseudo(s)
	}

	return nil, ErrUnsupported
}

//nolint:gocyclo,cyclop,funlen
func (cc *compiler) pseudo(s pseudoSel) (func(el *ast.Element, c, scope inspector.Cursor) bool, error) {
	switch s.name {
	case "root":
		if cc.depth > 0 {
			return nil, fmt.Errorf("%w: nested :root", ErrUnsupported)
		}

		return func(_ *ast.Element, c, _ inspector.Cursor) bool {
			_, ok := parentElement(c)

			return !ok
		}, nil

	case "empty":
		return func(el *ast.Element, _, _ inspector.Cursor) bool { return isEmpty(el) }, nil

	case "first-child":
		return position(false, false, func(i, _ int) bool { return i == 1 }), nil

	case "last-child":
		return position(false, true, func(i, _ int) bool { return i == 1 }), nil

	case "only-child":
		return position(false, false, func(_, n int) bool { return n == 1 }), nil

	case "first-of-type":
		return position(true, false, func(i, _ int) bool { return i == 1 }), nil

	case "last-of-type":
		return position(true, true, func(i, _ int) bool { return i == 1 }), nil

	case "only-of-type":
		return position(true, false, func(_, n int) bool { return n == 1 }), nil

	case "nth-child":
		return position(false, false, nth(s.a, s.b)), nil

	case "nth-last-child":
		return position(false, true, nth(s.a, s.b)), nil

	case "nth-of-type":
		return position(true, false, nth(s.a, s.b)), nil

	case "nth-last-of-type":
		return position(true, true, nth(s.a, s.b)), nil
	}

	cc.depth++
	fn, err := cc.list(s.list)
	cc.depth--

	if err != nil {
		return nil, err
	}

	switch s.name {
	case "not":
		return func(_ *ast.Element, c, scope inspector.Cursor) bool { return !fn(c, scope) }, nil

	case "is", "where":
		return func(_ *ast.Element, c, scope inspector.Cursor) bool { return fn(c, scope) }, nil

	case "has":
		forward := false
		for _, cs := range s.list {
			if cs.relative == adjacent || cs.relative == sibling {
				forward = true
			}
		}

		return func(_ *ast.Element, c, _ inspector.Cursor) bool { return has(c, fn, forward) }, nil
	}

	return nil, fmt.Errorf("%w: :%s", ErrUnsupported, s.name)
}

// has searches the subtree of c, and the following siblings with their
// subtrees when the relative selector starts with a sibling combinator.
func has(c inspector.Cursor, fn matchFunc, forward bool) bool {
	for d := range c.Preorder(ast.KindElement) {
		if fn(d, c) {
			return true
		}
	}

	if !forward {
		return false
	}

	for s, ok := nextElement(c); ok; s, ok = nextElement(s) {
		if fn(s, c) {
			return true
		}

		for d := range s.Preorder(ast.KindElement) {
			if fn(d, c) {
				return true
			}
		}
	}

	return false
}

// position evaluates an index predicate over the 1-based position of the
// element among its element siblings, counted from the end when fromEnd is set.
func position(ofType, fromEnd bool, pred func(i, n int) bool) func(el *ast.Element, c, scope inspector.Cursor) bool {
	return func(el *ast.Element, c, _ inspector.Cursor) bool {
		var i, n int

		for s := range elementSiblings(c) {
			if ofType && s.Node().(*ast.Element).Name != el.Name {
				continue
			}

			n++

			if s.Index() == c.Index() {
				i = n
			}
		}

		if fromEnd {
			i = n - i + 1
		}

		return pred(i, n)
	}
}

func nth(a, b int) func(i, _ int) bool {
	return func(i, _ int) bool {
		if a == 0 {
			return i == b
		}

		d := i - b

		return d%a == 0 && d/a >= 0
	}
}

func matchTag(el *ast.Element, tag string) bool {
	return strings.EqualFold(el.Name, tag) ||
		el.RawName == tag ||
		casing.SameComponent(el.RawName, tag)
}

func matchAttr(el *ast.Element, s attrSel) bool {
	value, ok := el.AttrValueOf(s.name)
	if !ok {
		value, ok = el.AttrValueOf(strings.ToLower(s.name))
	}

	if !ok {
		return false
	}

	want := s.value
	if s.caseFold {
		value, want = strings.ToLower(value), strings.ToLower(want)
	}

	switch s.op {
	case "":
		return true
	case "=":
		return value == want
	case "~=":
		for _, w := range strings.Fields(value) {
			if w == want {
				return true
			}
		}

		return false
	case "|=":
		return value == want || strings.HasPrefix(value, want+"-")
	case "^=":
		return want != "" && strings.HasPrefix(value, want)
	case "$=":
		return want != "" && strings.HasSuffix(value, want)
	case "*=":
		return want != "" && strings.Contains(value, want)
	}

	return false
}

func isEmpty(el *ast.Element) bool {
	for _, c := range el.Children {
		switch c := c.(type) {
		case *ast.Text:
			if c.Value != "" {
				return false
			}

		default:
			return false
		}
	}

	return true
}
