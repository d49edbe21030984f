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
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/testsource"
)

// oracle evaluates parsed selectors by scanning the whole element list for
// every relationship instead of navigating the arena.
type oracle struct {
	all    []*ast.Element
	parent map[*ast.Element]*ast.Element
}

func newOracle(root *ast.Element) *oracle {
	o := &oracle{parent: make(map[*ast.Element]*ast.Element)}

	var walk func(el *ast.Element)
	walk = func(el *ast.Element) {
		o.all = append(o.all, el)
		for _, c := range el.ElementChildren() {
			o.parent[c] = el
			walk(c)
		}
	}
	walk(root)

	return o
}

func (o *oracle) isAncestor(a, d *ast.Element) bool {
	for _, c := range a.ElementChildren() {
		if c == d || o.isAncestor(c, d) {
			return true
		}
	}

	return false
}

func (o *oracle) siblings(el *ast.Element) []*ast.Element {
	if p, ok := o.parent[el]; ok {
		return p.ElementChildren()
	}

	return []*ast.Element{el}
}

func (o *oracle) related(comb combinator, left, right *ast.Element) bool {
	switch comb {
	case child:
		return slices.Contains(left.ElementChildren(), right)

	case adjacent, sibling:
		sibs := o.siblings(right)
		i, j := slices.Index(sibs, left), slices.Index(sibs, right)

		if comb == adjacent {
			return i >= 0 && i == j-1
		}

		return i >= 0 && i < j

	default:
		return o.isAncestor(left, right)
	}
}

func (o *oracle) list(list []*complexSel, el, scope *ast.Element) bool {
	for _, cs := range list {
		if o.chain(cs, len(cs.compounds)-1, el, scope) {
			return true
		}
	}

	return false
}

func (o *oracle) chain(cs *complexSel, k int, el, scope *ast.Element) bool {
	if !o.compound(cs.compounds[k], el, scope) {
		return false
	}

	if k == 0 {
		return cs.relative == 0 || o.related(cs.relative, scope, el)
	}

	for _, x := range o.all {
		if o.related(cs.combs[k-1], x, el) && o.chain(cs, k-1, x, scope) {
			return true
		}
	}

	return false
}

func (o *oracle) compound(comp *compound, el, scope *ast.Element) bool {
	if comp.tag != "" && comp.tag != "*" && !strings.EqualFold(comp.tag, el.Name) {
		return false
	}

	for _, s := range comp.simples {
		if !o.simple(s, el, scope) {
			return false
		}
	}

	return true
}

func (o *oracle) simple(s simple, el, scope *ast.Element) bool {
	switch s := s.(type) {
	case idSel:
		id, ok := el.AttrValueOf("id")

		return ok && id == s.name

	case classSel:
		class, _ := el.AttrValueOf("class")

		return slices.Contains(strings.Fields(class), s.name)

	case attrSel:
		return matchAttr(el, s)

	case pseudoSel:
		return o.pseudo(s, el, scope)
	}

	return false
}

func (o *oracle) pseudo(s pseudoSel, el, scope *ast.Element) bool {
	sibs := o.siblings(el)
	if strings.HasSuffix(s.name, "of-type") {
		sibs = slices.DeleteFunc(slices.Clone(sibs), func(x *ast.Element) bool { return x.Name != el.Name })
	}

	i, n := slices.Index(sibs, el)+1, len(sibs)
	if strings.Contains(s.name, "last") {
		i = n - i + 1
	}

	switch s.name {
	case "first-child", "first-of-type", "last-child", "last-of-type":
		return i == 1
	case "only-child", "only-of-type":
		return n == 1
	case "nth-child", "nth-of-type", "nth-last-child", "nth-last-of-type":
		for k := 0; k <= n; k++ {
			if s.a*k+s.b == i {
				return true
			}
		}

		return false
	case "empty":
		return len(el.Children) == 0
	case "not":
		return !o.list(s.list, el, scope)
	case "is", "where":
		return o.list(s.list, el, scope)
	case "has":
		for _, x := range o.all {
			if x != el && o.list(s.list, x, el) {
				return true
			}
		}
	}

	return false
}

func randomTree(r *rand.Rand, b *strings.Builder, depth int) {
	tags := [...]string{"div", "p", "span", "ul", "li"}
	classes := [...]string{"", ` class="a"`, ` class="b"`, ` class="a b"`}

	for range r.IntN(4) {
		tag := tags[r.IntN(len(tags))]
		fmt.Fprintf(b, "<%s%s>", tag, classes[r.IntN(len(classes))])

		if depth > 0 {
			randomTree(r, b, depth-1)
		}

		fmt.Fprintf(b, "</%s>", tag)
	}
}

func TestOracle(t *testing.T) {
	t.Parallel()

	selectors := [...]string{
		"div", "*", ".a", "p.b", "div > p", "div p", "p + span", "p ~ span", "ul > li + li",
		"div .a > span", ":first-child", "li:last-child", "span:only-child", "p:first-of-type",
		"li:nth-child(2n+1)", "li:nth-child(-n+2)", "div:nth-last-child(2)", "p:nth-of-type(even)",
		"span:empty", ":not(.a)", "div:not(p > *)", ":is(p, span).b", ":where(ul, div) > li",
		"div:has(> p)", "div:has(span .a)", "p:has(+ span)", "li:has(~ li.b)", "div:has(p:has(span))",
		"[class~=b]", "[class^=a]", "ul:has(> li:only-child)",
	}

	r := rand.New(rand.NewPCG(1, 2))

	for tree := range 40 {
		var b strings.Builder
		randomTree(r, &b, 3)
		src := b.String()

		f := testsource.Template(t, src)
		in := testsource.Inspector(f)
		o := newOracle(f.TemplateBody)

		for _, sel := range selectors {
			list, err := parse(sel)
			if err != nil {
				t.Fatalf("parse(%q) failed: %v", sel, err)
			}

			m := compile(sel)
			if m.err != nil {
				t.Fatalf("compile(%q) failed: %v", sel, m.err)
			}

			for _, el := range o.all[1:] {
				c, _ := in.Find(el)

				got, want := m.Test(c), o.list(list, el, el)
				if got != want {
					t.Errorf("tree %d %q: %q on %s = %t, oracle %t", tree, src, sel, f.Describe(el), got, want)
				}
			}
		}
	}
}
