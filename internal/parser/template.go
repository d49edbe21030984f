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
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"fillmore-labs.com/kdulint/internal/ast"
	"fillmore-labs.com/kdulint/internal/astutil"
)

// htmlParser builds the document tree of a component file.
type htmlParser struct {
	f    *ast.File
	src  []byte
	off  int
	end  int
	errs []offsetError

	doc   *ast.DocumentFragment
	stack []*ast.Element
	pre   *ast.Element // outermost element with k-pre
	ts    bool         // a script block uses TypeScript

	tokens   []ast.Token
	comments []ast.Token

	// directive values are parsed after the script language is known
	pending []func()
}

func (h *htmlParser) errorf(off int, msg string) {
	h.errs = append(h.errs, offsetError{off: off, msg: msg})
}

func (h *htmlParser) span(from, to int) ast.Span {
	return ast.Span{From: h.f.Pos(from), To: h.f.Pos(to)}
}

func (h *htmlParser) token(kind ast.TokenKind, from, to int) {
	h.tokens = append(h.tokens, ast.Token{Span: h.span(from, to), TokKind: kind, Value: string(h.src[from:to])})
}

func (h *htmlParser) hasPrefix(s string) bool {
	return bytes.HasPrefix(h.src[h.off:h.end], []byte(s))
}

// inTemplate reports whether the parser is inside the top-level <template>.
func (h *htmlParser) inTemplate() bool { return len(h.stack) > 0 }

func (h *htmlParser) parent() *ast.Element {
	if len(h.stack) == 0 {
		return nil
	}

	return h.stack[len(h.stack)-1]
}

func (h *htmlParser) appendChild(n ast.Node) {
	if p := h.parent(); p != nil {
		p.Children = append(p.Children, n)

		return
	}

	h.doc.Children = append(h.doc.Children, n)
}

func isTagStart(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' }

// atTag reports whether markup handled by [htmlParser.parse] starts at the
// current offset. Anything else is consumed as text.
func (h *htmlParser) atTag() bool {
	if h.src[h.off] != '<' || h.off+1 >= h.end {
		return false
	}

	switch c := h.src[h.off+1]; {
	case c == '!' || c == '?':
		return true

	case c == '/':
		return h.off+2 < h.end && isTagStart(h.src[h.off+2])

	default:
		return isTagStart(c)
	}
}

func (h *htmlParser) parse() {
	for h.off < h.end {
		switch {
		case !h.atTag():
			h.text()

		case h.hasPrefix("<!--"):
			h.comment()

		case h.hasPrefix("</"):
			h.endTag()

		case isTagStart(h.src[h.off+1]):
			h.startTag()

		default: // <!doctype> or <?processing instruction>
			i := bytes.IndexByte(h.src[h.off:h.end], '>')
			if i < 0 {
				h.off = h.end
			} else {
				h.off += i + 1
			}
		}
	}

	for len(h.stack) > 0 {
		el := h.stack[len(h.stack)-1]
		if !astutil.HasOptionalEndTag(el.Name) {
			h.errorf(h.f.Offset(el.Pos()), "element <"+el.RawName+"> is missing end tag")
		}

		h.close(el, h.end)
	}

	h.doc.Span = h.span(0, h.end)
}

func (h *htmlParser) comment() {
	start := h.off

	i := bytes.Index(h.src[h.off+4:h.end], []byte("-->"))
	if i < 0 {
		h.errorf(start, "unterminated comment")
		h.off = h.end
	} else {
		h.off += 4 + i + 3
	}

	body := strings.TrimSuffix(string(h.src[start+4:h.off]), "-->")
	h.comments = append(h.comments, ast.Token{Span: h.span(start, h.off), TokKind: ast.TokenHTMLComment, Value: body})
}

// text consumes character data and mustaches up to the next tag.
func (h *htmlParser) text() {
	start := h.off
	flush := func(to int) {
		if to > start {
			h.textNode(start, to)
		}
	}

	for h.off < h.end {
		c := h.src[h.off]
		if h.atTag() {
			break
		}

		if c == '<' && h.hasPrefix("</") {
			h.errorf(h.off, "invalid first character of tag name")
		}

		if c == '{' && h.pre == nil && h.inTemplate() && h.hasPrefix("{{") {
			i := bytes.Index(h.src[h.off+2:h.end], []byte("}}"))
			if i >= 0 {
				flush(h.off)
				h.mustache(h.off, h.off+2+i+2)
				start = h.off

				continue
			}
		}

		h.off++
	}

	flush(h.off)
}

func (h *htmlParser) textNode(from, to int) {
	raw := string(h.src[from:to])
	if !h.inTemplate() && strings.TrimSpace(raw) == "" {
		return
	}

	h.token(ast.TokenHTMLText, from, to)
	h.appendChild(&ast.Text{Span: h.span(from, to), Value: html.UnescapeString(raw)})
}

func (h *htmlParser) mustache(from, to int) {
	h.token(ast.TokenMustacheStart, from, from+2)
	h.token(ast.TokenMustacheEnd, to-2, to)

	c := &ast.ExpressionContainer{Span: h.span(from, to)}
	h.appendChild(c)
	h.pending = append(h.pending, func() { h.parseValue(c, "bind", from+2, to-2) })
	h.off = to
}

// attrName reads an attribute name, allowing brackets around dynamic arguments.
func (h *htmlParser) attrName() (int, int) {
	start := h.off

	depth := 0
	for h.off < h.end {
		c := h.src[h.off]
		if depth == 0 && (isSpace(c) || c == '>' || c == '=' || c == '/' && h.off > start) {
			break
		}

		switch c {
		case '[':
			depth++
		case ']':
			depth = max(0, depth-1)
		}

		h.off++
	}

	return start, h.off
}

func (h *htmlParser) skipSpace() {
	for h.off < h.end && isSpace(h.src[h.off]) {
		h.off++
	}
}

//nolint:gocyclo,cyclop,funlen
func (h *htmlParser) startTag() {
	start := h.off
	h.off++ // <

	nameStart := h.off
	for h.off < h.end && !isSpace(h.src[h.off]) && h.src[h.off] != '>' && h.src[h.off] != '/' {
		h.off++
	}

	rawName := string(h.src[nameStart:h.off])
	h.token(ast.TokenHTMLTagOpen, start, h.off)

	el := &ast.Element{RawName: rawName, Name: rawName}

	parent := h.parent()
	switch {
	case parent != nil && parent.Namespace != ast.NamespaceHTML && parent.RawName != "foreignObject":
		el.Namespace = parent.Namespace
	case rawName == "svg":
		el.Namespace = ast.NamespaceSVG
	case rawName == "math":
		el.Namespace = ast.NamespaceMathML
	}

	if lower := strings.ToLower(rawName); el.Namespace == ast.NamespaceHTML && astutil.IsHTMLElementName(lower) {
		el.Name = lower
	}

	tag := &ast.StartTag{}
	inPre := h.pre != nil

	for {
		h.skipSpace()

		if h.off >= h.end {
			h.errorf(start, "unexpected end of input in tag <"+rawName+">")

			break
		}

		if h.src[h.off] == '>' {
			h.token(ast.TokenHTMLTagClose, h.off, h.off+1)
			h.off++

			break
		}

		if h.hasPrefix("/>") {
			h.token(ast.TokenHTMLSelfClosingTagClose, h.off, h.off+2)
			h.off += 2
			tag.SelfClosing = true

			break
		}

		if h.src[h.off] == '/' {
			h.off++

			continue
		}

		if attr := h.attribute(el, inPre); attr != nil {
			tag.Attributes = append(tag.Attributes, attr)
		}
	}

	tag.Span = h.span(start, h.off)
	el.StartTag = tag
	el.Span = tag.Span
	h.appendChild(el)

	if h.pre == nil && el.HasDirective("pre") {
		h.pre = el
	}

	topLevel := parent == nil

	switch {
	case tag.SelfClosing || el.Namespace == ast.NamespaceHTML && astutil.IsVoidElementName(el.Name):
		h.closed(el)

	case topLevel && (el.Name != "template" || h.templateLang(el) != ""),
		!topLevel && (el.Name == "script" || el.Name == "style"):
		h.rawText(el, false)

	case !topLevel && (el.Name == "textarea" || el.Name == "title"):
		h.rawText(el, true)

	default:
		h.stack = append(h.stack, el)
	}
}

func (h *htmlParser) templateLang(el *ast.Element) string {
	if lang, ok := el.AttrValueOf("lang"); ok && lang != "html" {
		return lang
	}

	return ""
}

// closed finishes an element that has no content.
func (h *htmlParser) closed(el *ast.Element) {
	if h.pre == el {
		h.pre = nil
	}
}

// rawText consumes the content of raw text elements up to their end tag.
func (h *htmlParser) rawText(el *ast.Element, decode bool) {
	start := h.off

	end := h.end
	closeFrom, closeTo := h.end, h.end

	lower := bytes.ToLower(h.src[h.off:h.end])
	needle := []byte("</" + strings.ToLower(el.RawName))

	for i := 0; ; {
		j := bytes.Index(lower[i:], needle)
		if j < 0 {
			h.errorf(h.f.Offset(el.Pos()), "element <"+el.RawName+"> is missing end tag")

			break
		}

		k := i + j + len(needle)
		if k >= len(lower) || lower[k] == '>' || isSpace(lower[k]) {
			end = h.off + i + j
			closeFrom = end

			gt := bytes.IndexByte(h.src[closeFrom:h.end], '>')
			if gt < 0 {
				closeTo = h.end
			} else {
				closeTo = closeFrom + gt + 1
			}

			break
		}

		i = k
	}

	if end > start {
		raw := string(h.src[start:end])
		if decode {
			raw = html.UnescapeString(raw)
		}

		h.token(ast.TokenHTMLText, start, end)
		el.Children = append(el.Children, &ast.Text{Span: h.span(start, end), Value: raw})
	}

	if closeFrom < h.end {
		h.token(ast.TokenHTMLEndTagOpen, closeFrom, closeTo)
		el.EndTag = &ast.EndTag{Span: h.span(closeFrom, closeTo)}
	}

	el.Span = h.span(h.f.Offset(el.Pos()), closeTo)
	h.off = closeTo
	h.closed(el)
}

func (h *htmlParser) endTag() {
	start := h.off
	h.off += 2

	nameStart := h.off
	for h.off < h.end && !isSpace(h.src[h.off]) && h.src[h.off] != '>' {
		h.off++
	}

	name := string(h.src[nameStart:h.off])

	if gt := bytes.IndexByte(h.src[h.off:h.end], '>'); gt < 0 {
		h.off = h.end
	} else {
		h.off += gt + 1
	}

	h.token(ast.TokenHTMLEndTagOpen, start, h.off)

	match := -1
	for i := len(h.stack) - 1; i >= 0; i-- {
		if strings.EqualFold(h.stack[i].RawName, name) {
			match = i

			break
		}
	}

	if match < 0 {
		h.errorf(start, "unexpected end tag </"+name+">")

		return
	}

	for len(h.stack)-1 > match {
		el := h.stack[len(h.stack)-1]
		if !astutil.HasOptionalEndTag(el.Name) {
			h.errorf(h.f.Offset(el.Pos()), "element <"+el.RawName+"> is missing end tag")
		}

		h.close(el, start)
	}

	el := h.stack[match]
	el.EndTag = &ast.EndTag{Span: h.span(start, h.off)}
	h.close(el, h.off)
}

// close pops the innermost element, ending it at offset end.
func (h *htmlParser) close(el *ast.Element, end int) {
	h.stack = h.stack[:len(h.stack)-1]

	if el.EndTag == nil && len(el.Children) > 0 {
		end = max(h.f.Offset(el.Children[len(el.Children)-1].End()), h.f.Offset(el.StartTag.End()))
	} else if el.EndTag == nil {
		end = h.f.Offset(el.StartTag.End())
	}

	el.Span = h.span(h.f.Offset(el.Pos()), end)
	h.closed(el)
}
