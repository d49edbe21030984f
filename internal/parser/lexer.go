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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/kdulint/internal/ast"
)

// tmplPart marks the role of a template token.
type tmplPart uint8

const (
	tmplNone   tmplPart = iota
	tmplFull            // `...`
	tmplHead            // `...${
	tmplMiddle          // }...${
	tmplTail            // }...`
)

// tok is a lexed script token. Offsets are absolute byte offsets into the file source.
type tok struct {
	kind   ast.TokenKind
	val    string // raw text
	cooked string // string value or cooked template chunk
	from   int
	to     int
	nl     bool // a line terminator precedes the token
	part   tmplPart
}

func (t tok) is(kind ast.TokenKind, val string) bool { return t.kind == kind && t.val == val }

func (t tok) punct(val string) bool { return t.kind == ast.TokenPunctuator && t.val == val }

var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "null": true, "true": true, "false": true, "enum": true,
}

// regexAfter lists keywords and contextual words after which a slash starts a regular expression.
var regexAfter = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true, "new": true,
	"delete": true, "void": true, "throw": true, "case": true, "do": true, "else": true,
	"yield": true, "await": true,
}

// puncts is ordered longest first. '>' is always lexed alone so that nested
// type argument lists close cleanly; the parser joins adjacent '>' tokens
// into shift and comparison operators.
var puncts = [...]string{
	"...", "===", "!==", "**=", "&&=", "||=", "??=", "<<=",
	"=>", "==", "!=", "<=", "&&", "||", "??", "?.", "++", "--", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<", "**",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/", "%", "&", "|", "^",
	"!", "~", "?", ":", "=", ".", "@",
}

type lexer struct {
	src      []byte
	off      int
	end      int
	tokens   []tok
	comments []tok
	errs     []offsetError
	braces   []bool // true marks a template substitution
	nl       bool
}

type offsetError struct {
	off int
	msg string
}

// lex tokenizes src[from:to].
func lex(src []byte, from, to int) *lexer {
	l := &lexer{src: src, off: from, end: to}
	l.run()

	return l
}

func (l *lexer) errorf(off int, msg string) {
	l.errs = append(l.errs, offsetError{off: off, msg: msg})
}

func (l *lexer) peekByte(n int) byte {
	if l.off+n < l.end {
		return l.src[l.off+n]
	}

	return 0
}

func (l *lexer) emit(t tok) {
	t.nl = l.nl
	l.nl = false
	l.tokens = append(l.tokens, t)
}

func (l *lexer) regexAllowed() bool {
	if len(l.tokens) == 0 {
		return true
	}

	prev := l.tokens[len(l.tokens)-1]
	switch prev.kind {
	case ast.TokenPunctuator:
		switch prev.val {
		case ")", "]", "}", "++", "--":
			return false
		}

		return true
	case ast.TokenKeyword, ast.TokenIdentifier:
		return regexAfter[prev.val]
	case ast.TokenTemplate:
		return prev.part == tmplHead || prev.part == tmplMiddle
	default:
		return false
	}
}

//nolint:gocyclo,cyclop,funlen
func (l *lexer) run() {
	for l.off < l.end {
		c := l.src[l.off]

		switch {
		case c == '\n' || c == '\r':
			l.nl = true
			l.off++

		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			l.off++

		case c == '/' && l.peekByte(1) == '/':
			start := l.off
			for l.off < l.end && l.src[l.off] != '\n' && l.src[l.off] != '\r' {
				l.off++
			}

			l.comments = append(l.comments, tok{kind: ast.TokenLineComment, val: string(l.src[start+2 : l.off]), from: start, to: l.off})

		case c == '/' && l.peekByte(1) == '*':
			start := l.off

			i := strings.Index(string(l.src[l.off+2:l.end]), "*/")
			if i < 0 {
				l.errorf(start, "unterminated comment")
				l.off = l.end
			} else {
				l.off += i + 4
			}

			text := string(l.src[start:l.off])
			if strings.ContainsAny(text, "\n\r") {
				l.nl = true
			}

			body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
			l.comments = append(l.comments, tok{kind: ast.TokenBlockComment, val: body, from: start, to: l.off})

		case c == '`':
			l.template(l.off+1, l.off, true)

		case c == '}' && len(l.braces) > 0 && l.braces[len(l.braces)-1]:
			l.braces = l.braces[:len(l.braces)-1]
			l.template(l.off+1, l.off, false)

		case c == '\'' || c == '"':
			l.string(c)

		case isDigit(c) || (c == '.' && isDigit(l.peekByte(1))):
			l.number()

		case c == '/' && l.regexAllowed():
			l.regexp()

		case c == '#':
			start := l.off
			l.off++
			name := l.identName()
			if name == "" {
				l.errorf(start, "invalid character '#'")
				continue
			}

			l.emit(tok{kind: ast.TokenPrivateName, val: name, from: start, to: l.off})

		default:
			if r, _ := utf8.DecodeRune(l.src[l.off:l.end]); isIDStart(r) || r == '\\' {
				start := l.off
				name := l.identName()

				kind := ast.TokenIdentifier
				if keywords[name] {
					kind = ast.TokenKeyword
				}

				l.emit(tok{kind: kind, val: name, from: start, to: l.off})

				continue
			}

			if r, size := utf8.DecodeRune(l.src[l.off:l.end]); r == '\u2028' || r == '\u2029' {
				l.nl = true
				l.off += size

				continue
			} else if unicode.IsSpace(r) {
				l.off += size

				continue
			}

			l.punctuator()
		}
	}
}

func (l *lexer) punctuator() {
	rest := l.src[l.off:l.end]
	for _, p := range puncts {
		if len(rest) < len(p) || string(rest[:len(p)]) != p {
			continue
		}

		if p == "?." && len(rest) > 2 && isDigit(rest[2]) {
			continue // conditional followed by a number
		}

		switch p {
		case "{":
			l.braces = append(l.braces, false)
		case "}":
			if len(l.braces) > 0 {
				l.braces = l.braces[:len(l.braces)-1]
			}
		}

		l.emit(tok{kind: ast.TokenPunctuator, val: p, from: l.off, to: l.off + len(p)})
		l.off += len(p)

		return
	}

	_, size := utf8.DecodeRune(rest)
	l.errorf(l.off, "unexpected character "+strconv.QuoteToASCII(string(rest[:size])))
	l.off += size
}

func (l *lexer) identName() string {
	start := l.off
	for l.off < l.end {
		r, size := utf8.DecodeRune(l.src[l.off:l.end])
		if r == '\\' && l.peekByte(1) == 'u' {
			l.off += 2
			for l.off < l.end && (isHex(l.src[l.off]) || l.src[l.off] == '{' || l.src[l.off] == '}') {
				l.off++
			}

			continue
		}

		if l.off == start && !isIDStart(r) || l.off > start && !isIDPart(r) {
			break
		}

		l.off += size
	}

	return string(l.src[start:l.off])
}

func (l *lexer) string(quote byte) {
	start := l.off
	l.off++

	var b strings.Builder
	for {
		if l.off >= l.end || l.src[l.off] == '\n' || l.src[l.off] == '\r' {
			l.errorf(start, "unterminated string literal")

			break
		}

		c := l.src[l.off]
		if c == quote {
			l.off++

			break
		}

		if c == '\\' {
			l.escape(&b)

			continue
		}

		b.WriteByte(c)
		l.off++
	}

	l.emit(tok{kind: ast.TokenString, val: string(l.src[start:l.off]), cooked: b.String(), from: start, to: l.off})
}

// escape decodes one escape sequence starting at the backslash.
func (l *lexer) escape(b *strings.Builder) {
	l.off++ // backslash
	if l.off >= l.end {
		return
	}

	c := l.src[l.off]
	l.off++

	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\r':
		if l.peekByte(0) == '\n' {
			l.off++
		}
	case '\n':
	case 'x':
		if l.off+2 <= l.end {
			if v, err := strconv.ParseUint(string(l.src[l.off:l.off+2]), 16, 8); err == nil {
				b.WriteRune(rune(v))
				l.off += 2
			}
		}
	case 'u':
		var digits string
		if l.peekByte(0) == '{' {
			if i := strings.IndexByte(string(l.src[l.off:l.end]), '}'); i > 0 {
				digits = string(l.src[l.off+1 : l.off+i])
				l.off += i + 1
			}
		} else if l.off+4 <= l.end {
			digits = string(l.src[l.off : l.off+4])
			l.off += 4
		}

		if v, err := strconv.ParseUint(digits, 16, 32); err == nil {
			b.WriteRune(rune(v))
		}
	default:
		b.WriteByte(c)
	}
}

func (l *lexer) number() {
	start := l.off

	if l.src[l.off] == '0' && l.off+1 < l.end && strings.IndexByte("xXoObB", l.src[l.off+1]) >= 0 {
		l.off += 2
		for l.off < l.end && (isHex(l.src[l.off]) || l.src[l.off] == '_') {
			l.off++
		}
	} else {
		digits := func() {
			for l.off < l.end && (isDigit(l.src[l.off]) || l.src[l.off] == '_') {
				l.off++
			}
		}

		digits()
		if l.peekByte(0) == '.' {
			l.off++
			digits()
		}

		if c := l.peekByte(0); c == 'e' || c == 'E' {
			l.off++
			if c := l.peekByte(0); c == '+' || c == '-' {
				l.off++
			}

			digits()
		}
	}

	if l.peekByte(0) == 'n' {
		l.off++
	}

	l.emit(tok{kind: ast.TokenNumeric, val: string(l.src[start:l.off]), from: start, to: l.off})
}

func (l *lexer) regexp() {
	start := l.off
	l.off++

	inClass := false
	for {
		if l.off >= l.end || l.src[l.off] == '\n' {
			l.errorf(start, "unterminated regular expression")

			break
		}

		c := l.src[l.off]
		l.off++

		if c == '\\' {
			l.off++

			continue
		}

		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			break
		}
	}

	for l.off < l.end && isIDPart(rune(l.src[l.off])) {
		l.off++ // flags
	}

	l.off = min(l.off, l.end)
	l.emit(tok{kind: ast.TokenRegExp, val: string(l.src[start:l.off]), from: start, to: l.off})
}

// template lexes a template chunk starting after '`' or '}'.
func (l *lexer) template(body, start int, head bool) {
	l.off = body

	var b strings.Builder
	for {
		if l.off >= l.end {
			l.errorf(start, "unterminated template literal")

			break
		}

		c := l.src[l.off]
		if c == '`' {
			l.off++

			part := tmplTail
			if head {
				part = tmplFull
			}

			l.emit(tok{kind: ast.TokenTemplate, val: string(l.src[start:l.off]), cooked: b.String(), from: start, to: l.off, part: part})

			return
		}

		if c == '$' && l.peekByte(1) == '{' {
			l.off += 2
			l.braces = append(l.braces, true)

			part := tmplMiddle
			if head {
				part = tmplHead
			}

			l.emit(tok{kind: ast.TokenTemplate, val: string(l.src[start:l.off]), cooked: b.String(), from: start, to: l.off, part: part})

			return
		}

		if c == '\\' {
			l.escape(&b)

			continue
		}

		b.WriteByte(c)
		l.off++
	}

	part := tmplTail
	if head {
		part = tmplFull
	}

	l.emit(tok{kind: ast.TokenTemplate, val: string(l.src[start:l.off]), cooked: b.String(), from: start, to: l.off, part: part})
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isIDStart(r rune) bool {
	return r == '$' || r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' ||
		r >= utf8.RuneSelf && unicode.IsLetter(r)
}

func isIDPart(r rune) bool {
	return isIDStart(r) || '0' <= r && r <= '9' || r == '\u200c' || r == '\u200d' ||
		r >= utf8.RuneSelf && (unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc))
}
