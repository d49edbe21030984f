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
	"fmt"
	"go/token"

	"fillmore-labs.com/kdulint/internal/ast"
)

// scriptParser is a recursive descent parser over a fully lexed token slice.
type scriptParser struct {
	file *token.File
	toks []tok
	i    int
	errs []offsetError
	end  int // offset of the end of input

	ts       bool // accept TypeScript syntax
	inFunc   bool
	inAsync  bool
	inGen    bool
	noIn     bool // 'in' is not a binary operator (for-init)
	inType   int  // nesting depth of type contexts
	noCondTy bool // conditional types are not allowed (extends constraints)
}

func newScriptParser(file *token.File, src []byte, from, to int, ts bool) (*scriptParser, *lexer) {
	l := lex(src, from, to)

	p := &scriptParser{file: file, toks: l.tokens, end: to, ts: ts}
	p.errs = append(p.errs, l.errs...)

	return p, l
}

func (p *scriptParser) pos(off int) token.Pos { return p.file.Pos(off) }

func (p *scriptParser) cur() tok { return p.peek(0) }

func (p *scriptParser) peek(n int) tok {
	if i := p.i + n; i < len(p.toks) {
		return p.toks[i]
	}

	return tok{kind: tokEOF, from: p.end, to: p.end, nl: true}
}

// tokEOF marks the end of input. It never appears in the token slice.
const tokEOF ast.TokenKind = 255

func (p *scriptParser) eof() bool { return p.i >= len(p.toks) }

func (p *scriptParser) next() tok {
	t := p.cur()
	if p.i < len(p.toks) {
		p.i++
	}

	return t
}

// prevEnd is the end offset of the last consumed token.
func (p *scriptParser) prevEnd() int {
	if p.i == 0 {
		if len(p.toks) > 0 {
			return p.toks[0].from
		}

		return p.end
	}

	return p.toks[p.i-1].to
}

func (p *scriptParser) span(start int) ast.Span {
	return ast.Span{From: p.pos(start), To: p.pos(max(start, p.prevEnd()))}
}

func (p *scriptParser) errorf(off int, format string, args ...any) {
	if n := len(p.errs); n > 0 && p.errs[n-1].off == off {
		return // one error per position
	}

	p.errs = append(p.errs, offsetError{off: off, msg: fmt.Sprintf(format, args...)})
}

func (p *scriptParser) unexpected() {
	t := p.cur()
	if t.kind == tokEOF {
		p.errorf(t.from, "unexpected end of input")

		return
	}

	p.errorf(t.from, "unexpected token %s", t.val)
}

func (p *scriptParser) isPunct(val string) bool { return p.cur().punct(val) }

// isWord reports whether the current token is the identifier or keyword val.
func (p *scriptParser) isWord(val string) bool {
	t := p.cur()

	return (t.kind == ast.TokenIdentifier || t.kind == ast.TokenKeyword) && t.val == val
}

func (p *scriptParser) eat(val string) bool {
	if p.isPunct(val) {
		p.next()

		return true
	}

	return false
}

func (p *scriptParser) eatWord(val string) bool {
	if p.isWord(val) {
		p.next()

		return true
	}

	return false
}

func (p *scriptParser) expect(val string) bool {
	if p.eat(val) {
		return true
	}

	p.errorf(p.cur().from, "expected %q", val)

	return false
}

// expectClose consumes a single '>' closing a type parameter or argument list.
func (p *scriptParser) expectClose() bool { return p.expect(">") }

// semicolon implements automatic semicolon insertion.
func (p *scriptParser) semicolon() {
	if p.eat(";") {
		return
	}

	if t := p.cur(); t.punct("}") || t.kind == tokEOF || t.nl {
		return
	}

	p.errorf(p.cur().from, "missing semicolon")
}

// state is a parser snapshot for speculative parsing.
type state struct {
	i, errs int
}

func (p *scriptParser) save() state { return state{i: p.i, errs: len(p.errs)} }

func (p *scriptParser) restore(s state) {
	p.i = s.i
	p.errs = p.errs[:s.errs]
}

// try runs f speculatively. The parser state is restored when f reports
// failure or recorded errors.
func (p *scriptParser) try(f func() bool) bool {
	s := p.save()
	if f() && len(p.errs) == s.errs {
		return true
	}

	p.restore(s)

	return false
}

// binaryOp returns the operator at the current position, joining adjacent
// '>' tokens into shift and comparison operators, and the number of tokens it spans.
func (p *scriptParser) binaryOp() (string, int) {
	t := p.cur()
	if t.kind != ast.TokenPunctuator {
		if t.kind == ast.TokenKeyword && (t.val == "instanceof" || t.val == "in") {
			return t.val, 1
		}

		return "", 0
	}

	if t.val != ">" {
		return t.val, 1
	}

	op, n, end := ">", 1, t.to
	for {
		nt := p.peek(n)
		if nt.from != end || nt.kind != ast.TokenPunctuator {
			return op, n
		}

		switch {
		case nt.val == ">" && len(op) < 3:
			op += ">"
		case nt.val == "=":
			return op + "=", n + 1
		default:
			return op, n
		}

		n++
		end = nt.to
	}
}

// identName accepts any identifier or keyword as a property name.
func (p *scriptParser) identName() (*ast.Identifier, bool) {
	t := p.cur()
	if t.kind != ast.TokenIdentifier && t.kind != ast.TokenKeyword {
		return nil, false
	}

	p.next()

	return &ast.Identifier{Span: p.span(t.from), Name: t.val}, true
}

var reservedBindings = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "null": true, "true": true, "false": true, "enum": true,
}

// ident parses a binding or reference identifier.
func (p *scriptParser) ident() *ast.Identifier {
	t := p.cur()
	if t.kind != ast.TokenIdentifier || reservedBindings[t.val] {
		p.unexpected()

		return nil
	}

	p.next()

	return &ast.Identifier{Span: p.span(t.from), Name: t.val}
}

func (p *scriptParser) isIdent() bool {
	t := p.cur()

	return t.kind == ast.TokenIdentifier
}
