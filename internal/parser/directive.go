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

package parser

import (
	"strings"

	"golang.org/x/net/html"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
)

// attribute parses one attribute of the start tag of el.
func (h *htmlParser) attribute(el *ast.Element, inPre bool) ast.Node {
	from, to := h.attrName()
	if to == from {
		h.errorf(from, "unexpected character in tag")
		h.off++

		return nil
	}

	h.token(ast.TokenHTMLIdentifier, from, to)
	raw := string(h.src[from:to])

	valueFrom, valueTo, outerFrom := -1, -1, -1

	save := h.off
	h.skipSpace()

	if h.off < h.end && h.src[h.off] == '=' {
		h.token(ast.TokenHTMLAssociation, h.off, h.off+1)
		h.off++
		h.skipSpace()

		outerFrom = h.off
		valueFrom, valueTo = h.attrValue()
		h.token(ast.TokenHTMLLiteral, outerFrom, h.off)
	} else {
		h.off = save
	}

	span := h.span(from, h.off)

	if !inPre && isDirectiveName(raw, el) {
		d := &ast.Directive{Span: span, Key: h.directiveKey(from, to)}

		if valueFrom >= 0 {
			c := &ast.ExpressionContainer{Span: h.span(outerFrom, h.off)}
			d.Value = c

			name := d.Key.Name.Name
			h.pending = append(h.pending, func() { h.parseValue(c, name, valueFrom, valueTo) })
		}

		return d
	}

	name := raw
	if el.Namespace == ast.NamespaceHTML && astutil.IsHTMLElementName(el.Name) {
		name = strings.ToLower(raw)
	}

	attr := &ast.Attribute{Span: span, Key: &ast.AttrName{Span: h.span(from, to), Name: name, RawName: raw}}
	if valueFrom >= 0 {
		attr.Value = &ast.AttrValue{
			Span:  h.span(outerFrom, h.off),
			Value: html.UnescapeString(string(h.src[valueFrom:valueTo])),
		}
	}

	return attr
}

// attrValue consumes a quoted or unquoted attribute value and returns the content range.
func (h *htmlParser) attrValue() (int, int) {
	if h.off >= h.end {
		h.errorf(h.off, "missing attribute value")

		return h.off, h.off
	}

	if q := h.src[h.off]; q == '"' || q == '\'' {
		from := h.off + 1

		for i := from; i < h.end; i++ {
			if h.src[i] == q {
				h.off = i + 1

				return from, i
			}
		}

		h.errorf(h.off, "unterminated attribute value")
		h.off = h.end

		return from, h.end
	}

	from := h.off
	for h.off < h.end && !isSpace(h.src[h.off]) && h.src[h.off] != '>' {
		h.off++
	}

	return from, h.off
}

func isDirectiveName(raw string, el *ast.Element) bool {
	switch {
	case strings.HasPrefix(raw, "k-"):
		return len(raw) > 2
	case len(raw) > 1 && strings.ContainsRune(":@#.", rune(raw[0])):
		return true
	case raw == "slot-scope":
		return true
	case raw == "scope":
		return el.Name == "template"
	default:
		return false
	}
}

var shorthands = map[byte]string{':': "bind", '.': "bind", '@': "on", '#': "slot"}

// directiveKey parses `k-name:argument.modifiers` and its shorthand forms.
func (h *htmlParser) directiveKey(from, to int) *ast.DirectiveKey {
	key := &ast.DirectiveKey{Span: h.span(from, to)}

	off := from

	switch name, ok := shorthands[h.src[from]]; {
	case ok:
		key.Name = &ast.AttrName{Span: h.span(from, from+1), Name: name, RawName: string(h.src[from])}
		off++

	case !strings.HasPrefix(string(h.src[from:to]), "k-"):
		raw := string(h.src[from:to])
		key.Name = &ast.AttrName{Span: h.span(from, to), Name: raw, RawName: raw}

		return key

	default:
		i := from + 2
		for i < to && h.src[i] != ':' && h.src[i] != '.' {
			i++
		}

		key.Name = &ast.AttrName{Span: h.span(from, i), Name: string(h.src[from+2 : i]), RawName: string(h.src[from:i])}

		off = i
		if off < to && h.src[off] == ':' {
			off++
		}
	}

	if off < to && h.src[off] != '.' {
		off = h.directiveArgument(key, off, to)
	}

	if h.src[from] == '.' {
		key.Modifiers = append(key.Modifiers, &ast.AttrName{Span: h.span(from, from+1), Name: "prop", RawName: "."})
	}

	for off < to && h.src[off] == '.' {
		off++

		i := off
		for i < to && h.src[i] != '.' {
			i++
		}

		m := string(h.src[off:i])
		key.Modifiers = append(key.Modifiers, &ast.AttrName{Span: h.span(off, i), Name: m, RawName: m})
		off = i
	}

	return key
}

func (h *htmlParser) directiveArgument(key *ast.DirectiveKey, off, to int) int {
	if h.src[off] != '[' {
		i := off
		for i < to && h.src[i] != '.' {
			i++
		}

		arg := string(h.src[off:i])
		key.Argument = &ast.AttrName{Span: h.span(off, i), Name: arg, RawName: arg}

		return i
	}

	depth, i := 0, off
	for ; i < to; i++ {
		switch h.src[i] {
		case '[':
			depth++
		case ']':
			depth--
		}

		if depth == 0 {
			break
		}
	}

	if i >= to {
		h.errorf(off, "unterminated dynamic argument")
		i = to - 1
	}

	c := &ast.ExpressionContainer{Span: h.span(off, i+1)}
	key.Argument = c

	inner, innerEnd := off+1, i
	h.pending = append(h.pending, func() { h.parseValue(c, "", inner, innerEnd) })

	return i + 1
}

// parseValue parses the script content of an expression container.
func (h *htmlParser) parseValue(c *ast.ExpressionContainer, directive string, from, to int) {
	p, l := newScriptParser(h.f.TokFile, h.src, from, to, h.ts)

	h.tokens = append(h.tokens, astTokens(h.f.TokFile, l.tokens)...)
	h.comments = append(h.comments, astTokens(h.f.TokFile, l.comments)...)

	if !p.eof() {
		switch directive {
		case "for":
			c.Expression = p.parseForExpression()
		case "on":
			c.Expression = p.parseOnExpression()
		case "slot", "slot-scope", "scope":
			c.Expression = p.parseSlotScopeExpression()
		case "bind":
			c.Expression = p.parseFilterSequence()
		default:
			c.Expression = p.parseExpression()
		}

		if !p.eof() {
			p.unexpected()
		}
	}

	h.errs = append(h.errs, p.errs...)
}

// sub returns a parser over the tokens [from, to) of p.
func (p *scriptParser) sub(from, to int) *scriptParser {
	end := p.end
	if to < len(p.toks) {
		end = p.toks[to].from
	}

	return &scriptParser{file: p.file, toks: p.toks[from:to], end: end, ts: p.ts}
}

// topLevel iterates over the indices of tokens outside brackets from the current position.
func (p *scriptParser) topLevel(yield func(int) bool) {
	depth := 0

	for i := p.i; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.kind == ast.TokenPunctuator {
			switch t.val {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
		}

		if depth == 0 && !yield(i) {
			return
		}
	}
}

// parseForExpression parses `(item, index) in items` and `item of items`.
func (p *scriptParser) parseForExpression() ast.Node {
	start := p.cur().from

	split, of := -1, false

	for i := range p.topLevel {
		if t := p.toks[i]; i > p.i && (t.is(ast.TokenKeyword, "in") || t.is(ast.TokenIdentifier, "of")) {
			split, of = i, t.val == "of"

			break
		}
	}

	if split < 0 {
		p.errorf(start, "expected 'in' or 'of' in iteration")
		p.i = len(p.toks)

		return nil
	}

	left := p.sub(p.i, split)

	var params []ast.Node
	if left.isPunct("(") && left.toks[len(left.toks)-1].punct(")") {
		left.next()
		params = left.parseParamList(")")
		left.expect(")")
	} else {
		params = left.parseParamList("")
	}

	if !left.eof() {
		left.unexpected()
	}

	p.errs = append(p.errs, left.errs...)
	p.i = split + 1

	right := p.parseExpression()

	return &ast.ForExpression{Span: p.span(start), Left: params, Right: right, Of: of}
}

// parseOnExpression parses an event handler. A lone function or handler
// path is kept as an expression, anything else becomes a statement list.
func (p *scriptParser) parseOnExpression() ast.Node {
	start := p.cur().from

	s := p.save()
	if e := p.parseExpression(); p.eof() && len(p.errs) == s.errs {
		switch e.(type) {
		case *ast.Identifier, *ast.MemberExpression, *ast.ArrowFunctionExpression, *ast.FunctionExpression:
			return e
		}
	}

	p.restore(s)

	body := p.parseStatements("")

	return &ast.OnExpression{Span: p.span(start), Body: body}
}

func (p *scriptParser) parseSlotScopeExpression() ast.Node {
	start := p.cur().from
	params := p.parseParamList("")

	return &ast.SlotScopeExpression{Span: p.span(start), Params: params}
}

// parseFilterSequence parses an expression followed by `| filter(args)` stages.
func (p *scriptParser) parseFilterSequence() ast.Node {
	var cuts []int

	for i := range p.topLevel {
		if p.toks[i].punct("|") {
			cuts = append(cuts, i)
		}
	}

	if len(cuts) == 0 {
		return p.parseExpression()
	}

	start := p.cur().from

	head := p.sub(p.i, cuts[0])
	expr := head.parseExpression()
	p.finish(head)

	filters := make([]*ast.Filter, 0, len(cuts))
	for k, c := range cuts {
		end := len(p.toks)
		if k+1 < len(cuts) {
			end = cuts[k+1]
		}

		f := p.sub(c+1, end)
		if filter := f.parseFilter(); filter != nil {
			filters = append(filters, filter)
		}
		p.finish(f)
	}

	p.i = len(p.toks)

	return &ast.FilterSequenceExpression{Span: p.span(start), Expression: expr, Filters: filters}
}

// finish reports trailing tokens of a sub-parser and collects its errors.
func (p *scriptParser) finish(sub *scriptParser) {
	if !sub.eof() {
		sub.unexpected()
	}

	p.errs = append(p.errs, sub.errs...)
}

func (p *scriptParser) parseFilter() *ast.Filter {
	start := p.cur().from

	callee := p.ident()
	if callee == nil {
		return nil
	}

	var args []ast.Node
	if p.isPunct("(") {
		args = p.parseArgs()
	}

	return &ast.Filter{Span: p.span(start), Callee: callee, Arguments: args}
}
