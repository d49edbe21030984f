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

// Package selector matches template elements against a subset of CSS
// selectors: type, class, id and attribute selectors, the four combinators,
// structural pseudo-classes, :not, :is, :where and :has.
//
// Type selectors compare case-insensitively against HTML elements and in
// any casing family against component elements, so `my-button` matches
// <MyButton>.
package selector

import (
	"fmt"
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/inspector"
)

// Matcher is a compiled selector. A Matcher that failed to compile matches
// nothing.
type Matcher struct {
	text  string
	match matchFunc
	err   error
}

// Test reports whether the element at c matches.
func (m *Matcher) Test(c inspector.Cursor) bool {
	if !c.Valid() || c.Node() == nil {
		return false
	}

	return m.match(c, c)
}

// Select yields the elements below root that match, in document order.
func (m *Matcher) Select(root inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		if m.err != nil {
			return
		}

		for c := range root.Preorder(ast.KindElement) {
			if m.match(c, c) && !yield(c) {
				return
			}
		}
	}
}

// Err returns the compilation error, if any.
func (m *Matcher) Err() error { return m.err }

func (m *Matcher) String() string { return m.text }

// Compile parses a selector using the default cache. On error the returned
// Matcher is still usable and matches nothing.
func Compile(text string) (*Matcher, error) { return defaultCache.Compile(text) }

const defaultCacheSize = 256

var defaultCache = NewCache(defaultCacheSize)

// Cache memoizes compiled selectors by text. Matchers are immutable and
// shared across files.
type Cache struct {
	lru *lru.Cache[string, *Matcher]
}

// NewCache creates a cache holding up to size matchers.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}

	c, err := lru.New[string, *Matcher](size)
	if err != nil {
		panic(err) // only for non-positive sizes
	}

	return &Cache{lru: c}
}

// Compile returns the cached matcher for text, compiling it on first use.
func (c *Cache) Compile(text string) (*Matcher, error) {
	if m, ok := c.lru.Get(text); ok {
		return m, m.err
	}

	m := compile(text)
	c.lru.Add(text, m)

	return m, m.err
}

func compile(text string) *Matcher {
	m := &Matcher{text: text, match: never}

	list, err := parse(text)
	if err != nil {
		m.err = fmt.Errorf("selector %q: %w", text, err)

		return m
	}

	cc := &compiler{}

	fn, err := cc.list(list)
	if err != nil {
		m.err = fmt.Errorf("selector %q: %w", text, err)

		return m
	}

	m.match = fn

	return m
}

func parentElement(c inspector.Cursor) (inspector.Cursor, bool) {
	if c.Index() < 0 {
		return inspector.Cursor{}, false
	}

	p := c.Parent()
	if _, ok := p.Node().(*ast.Element); !ok {
		return inspector.Cursor{}, false
	}

	return p, true
}

func previousElement(c inspector.Cursor) (inspector.Cursor, bool) {
	for s, ok := c.PrevSibling(); ok; s, ok = s.PrevSibling() {
		if _, ok := s.Node().(*ast.Element); ok {
			return s, true
		}
	}

	return inspector.Cursor{}, false
}

func nextElement(c inspector.Cursor) (inspector.Cursor, bool) {
	for s, ok := c.NextSibling(); ok; s, ok = s.NextSibling() {
		if _, ok := s.Node().(*ast.Element); ok {
			return s, true
		}
	}

	return inspector.Cursor{}, false
}

// elementSiblings yields the element children of the parent of c, c included.
func elementSiblings(c inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		for s := range c.Parent().Children() {
			if _, ok := s.Node().(*ast.Element); ok && !yield(s) {
				return
			}
		}
	}
}
