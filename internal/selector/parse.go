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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned for malformed selector text.
	ErrSyntax = errors.New("selector syntax error")
	// ErrUnsupported is returned for valid CSS the matcher does not implement.
	ErrUnsupported = errors.New("unsupported selector")
)

// combinator joins two compound selectors.
type combinator byte

const (
	descendant combinator = ' '
	child      combinator = '>'
	adjacent   combinator = '+'
	sibling    combinator = '~'
)

// complexSel is a chain of compounds, left to right. combinators[i] joins
// compounds[i] and compounds[i+1]. A relative selector starts with a
// combinator applied to the scope element.
type complexSel struct {
	relative  combinator // leading combinator of a relative selector, 0 otherwise
	compounds []*compound
	combs     []combinator
}

type compound struct {
	tag     string // empty or "*" matches any element
	simples []simple
}

type simple interface{ isSimple() }

type idSel struct{ name string }

type classSel struct{ name string }

type attrSel struct {
	name     string
	op       string // "", "=", "~=", "|=", "^=", "$=", "*="
	value    string
	caseFold bool
}

type pseudoSel struct {
	name string // first-child, nth-of-type, ...
	a, b int    // An+B for nth-* pseudo-classes
	list []*complexSel
}

func (idSel) isSimple()     {}
func (classSel) isSimple()  {}
func (attrSel) isSimple()   {}
func (pseudoSel) isSimple() {}

type parser struct {
	src string
	off int
}

func parse(src string) ([]*complexSel, error) {
	p := &parser{src: src}

	list, err := p.selectorList(false)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.off:])
	}

	return list, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.off, fmt.Sprintf(format, args...))
}

func (p *parser) eof() bool { return p.off >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.off]
}

func (p *parser) skipSpace() bool {
	start := p.off
	for !p.eof() && strings.IndexByte(" \t\n\r\f", p.src[p.off]) >= 0 {
		p.off++
	}

	return p.off > start
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' || c >= 0x80 ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func (p *parser) ident() (string, error) {
	var b strings.Builder

	for !p.eof() {
		c := p.src[p.off]

		if c == '\\' && p.off+1 < len(p.src) {
			b.WriteByte(p.src[p.off+1])
			p.off += 2

			continue
		}

		if !isNameByte(c) {
			break
		}

		b.WriteByte(c)
		p.off++
	}

	if b.Len() == 0 {
		return "", p.errorf("expected identifier")
	}

	return b.String(), nil
}

func (p *parser) selectorList(relative bool) ([]*complexSel, error) {
	var list []*complexSel

	for {
		p.skipSpace()

		c, err := p.complex(relative)
		if err != nil {
			return nil, err
		}

		list = append(list, c)

		p.skipSpace()
		if p.peek() != ',' {
			return list, nil
		}

		p.off++
	}
}

func (p *parser) combinator() (combinator, bool) {
	switch c := p.peek(); c {
	case '>', '+', '~':
		p.off++
		p.skipSpace()

		return combinator(c), true
	}

	return 0, false
}

func (p *parser) complex(relative bool) (*complexSel, error) {
	c := &complexSel{}

	if relative {
		if comb, ok := p.combinator(); ok {
			c.relative = comb
		} else {
			c.relative = descendant
		}
	}

	for {
		comp, err := p.compound()
		if err != nil {
			return nil, err
		}

		c.compounds = append(c.compounds, comp)

		space := p.skipSpace()

		comb, ok := p.combinator()
		switch {
		case ok:
		case space && !p.eof() && p.peek() != ',' && p.peek() != ')':
			comb = descendant
		default:
			return c, nil
		}

		c.combs = append(c.combs, comb)
	}
}

//nolint:gocyclo,cyclop
func (p *parser) compound() (*compound, error) {
	c := &compound{}

	switch ch := p.peek(); {
	case ch == '*':
		p.off++
		c.tag = "*"

	case ch == '&':
		return nil, fmt.Errorf("%w: nesting selector", ErrUnsupported)

	case isNameByte(ch) || ch == '\\':
		tag, err := p.ident()
		if err != nil {
			return nil, err
		}

		c.tag = tag
	}

	for !p.eof() {
		var (
			s   simple
			err error
		)

		switch p.peek() {
		case '#':
			p.off++

			var name string
			name, err = p.ident()
			s = idSel{name: name}

		case '.':
			p.off++

			var name string
			name, err = p.ident()
			s = classSel{name: name}

		case '[':
			s, err = p.attribute()

		case ':':
			s, err = p.pseudo()

		default:
			if c.tag == "" && len(c.simples) == 0 {
				return nil, p.errorf("expected selector")
			}

			return c, nil
		}

		if err != nil {
			return nil, err
		}

		c.simples = append(c.simples, s)
	}

	if c.tag == "" && len(c.simples) == 0 {
		return nil, p.errorf("expected selector")
	}

	return c, nil
}

func (p *parser) attribute() (simple, error) {
	p.off++ // [
	p.skipSpace()

	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	a := attrSel{name: name}

	p.skipSpace()

	if strings.HasPrefix(p.src[p.off:], "=") {
		a.op = "="
		p.off++
	} else {
		for _, op := range [...]string{"~=", "|=", "^=", "$=", "*="} {
			if strings.HasPrefix(p.src[p.off:], op) {
				a.op = op
				p.off += 2

				break
			}
		}
	}

	if a.op != "" {
		p.skipSpace()

		if a.value, err = p.value(); err != nil {
			return nil, err
		}

		p.skipSpace()

		switch p.peek() {
		case 'i', 'I':
			a.caseFold = true
			p.off++
		case 's', 'S':
			p.off++
		}
	}

	p.skipSpace()

	if p.peek() != ']' {
		return nil, p.errorf("expected ']'")
	}

	p.off++

	return a, nil
}

func (p *parser) value() (string, error) {
	q := p.peek()
	if q != '"' && q != '\'' {
		return p.ident()
	}

	var b strings.Builder

	for p.off++; !p.eof(); p.off++ {
		c := p.src[p.off]

		switch {
		case c == q:
			p.off++

			return b.String(), nil

		case c == '\\' && p.off+1 < len(p.src):
			p.off++
			b.WriteByte(p.src[p.off])

		default:
			b.WriteByte(c)
		}
	}

	return "", p.errorf("unterminated string")
}

var structural = map[string]bool{
	"first-child": true, "last-child": true, "only-child": true,
	"first-of-type": true, "last-of-type": true, "only-of-type": true,
	"empty": true, "root": true,
}

func (p *parser) pseudo() (simple, error) {
	p.off++ // :

	if p.peek() == ':' {
		return nil, fmt.Errorf("%w: pseudo-element", ErrUnsupported)
	}

	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	name = strings.ToLower(name)

	if structural[name] {
		return pseudoSel{name: name}, nil
	}

	if p.peek() != '(' {
		return nil, fmt.Errorf("%w: :%s", ErrUnsupported, name)
	}

	p.off++
	p.skipSpace()

	s := pseudoSel{name: name}

	switch name {
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		end := strings.IndexByte(p.src[p.off:], ')')
		if end < 0 {
			return nil, p.errorf("expected ')'")
		}

		if s.a, s.b, err = parseNth(p.src[p.off : p.off+end]); err != nil {
			return nil, p.errorf("%v", err)
		}

		p.off += end

	case "not", "is", "where", "matches":
		if s.list, err = p.selectorList(false); err != nil {
			return nil, err
		}

		if name == "matches" {
			s.name = "is"
		}

	case "has":
		if s.list, err = p.selectorList(true); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: :%s()", ErrUnsupported, name)
	}

	p.skipSpace()

	if p.peek() != ')' {
		return nil, p.errorf("expected ')'")
	}

	p.off++

	return s, nil
}

// parseNth parses the An+B micro syntax.
func parseNth(s string) (a, b int, err error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))

	switch s {
	case "odd":
		return 2, 1, nil
	case "even":
		return 2, 0, nil
	case "":
		return 0, 0, errors.New("empty An+B")
	}

	n := strings.IndexByte(s, 'n')
	if n < 0 {
		b, err = strconv.Atoi(s)

		return 0, b, err
	}

	switch coef := s[:n]; coef {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		if a, err = strconv.Atoi(coef); err != nil {
			return 0, 0, err
		}
	}

	if rest := s[n+1:]; rest != "" {
		if rest[0] != '+' && rest[0] != '-' {
			return 0, 0, fmt.Errorf("invalid An+B %q", s)
		}

		if b, err = strconv.Atoi(rest); err != nil {
			return 0, 0, err
		}
	}

	return a, b, nil
}
