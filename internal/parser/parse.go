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

// Package parser reads component files into [ast.File] trees.
//
// A component file consists of top-level blocks: one <template>, up to two
// <script> blocks (one of them with the setup attribute), any number of
// <style> blocks and custom blocks. The template is parsed into elements,
// directives and expression containers; script blocks are parsed into one
// merged [ast.Program].
package parser

import (
	"cmp"
	"go/scanner"
	"go/token"
	"slices"
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
)

// ParseFile parses the component source src and registers it in fset.
//
// The returned file is always usable. If there are parse errors, err is a
// [scanner.ErrorList] sorted by position and the file flags them through
// [ast.File.HasTemplateErrors] and [ast.File.HasScriptErrors].
func ParseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	tf := fset.AddFile(filename, -1, len(src))
	tf.SetLinesForContent(src)

	f := &ast.File{Name: filename, Src: src, TokFile: tf}

	h := &htmlParser{f: f, src: src, end: len(src), doc: &ast.DocumentFragment{}}
	h.parse()
	f.Document = h.doc

	for _, c := range h.doc.Children {
		el, ok := c.(*ast.Element)
		if !ok {
			continue
		}

		switch el.Name {
		case "template":
			if f.TemplateBody == nil {
				f.TemplateBody = el
			} else {
				h.errorf(f.Offset(el.Pos()), "duplicate <template> block")
			}

		case "script":
			b := block(el)
			f.Scripts = append(f.Scripts, b)

			if b.Lang == "ts" || b.Lang == "tsx" {
				h.ts = true
			}

		case "style":
			f.Styles = append(f.Styles, block(el))
		}
	}

	for _, parse := range h.pending {
		parse()
	}

	resolveReferences(h.doc)

	f.TemplateTokens = ast.NewTokenStore(sortTokens(h.tokens), sortTokens(h.comments))
	f.TemplateErrors = parseErrors(tf, h.errs)

	var (
		body             []ast.Node
		tokens, comments []ast.Token
		errs             []offsetError
	)

	for _, s := range f.Scripts {
		from, to := f.Offset(s.Content.From), f.Offset(s.Content.To)

		p, l := newScriptParser(tf, src, from, to, h.ts)
		body = append(body, p.parseProgram(from, to).Body...)

		tokens = append(tokens, astTokens(tf, l.tokens)...)
		comments = append(comments, astTokens(tf, l.comments)...)
		errs = append(errs, p.errs...)
	}

	f.Program = &ast.Program{Span: programSpan(tf, f.Scripts), Body: body}
	f.ScriptTokens = ast.NewTokenStore(tokens, comments)
	f.ScriptErrors = parseErrors(tf, errs)

	var list scanner.ErrorList
	for _, e := range slices.Concat(f.TemplateErrors, f.ScriptErrors) {
		list.Add(tf.Position(e.Pos), e.Msg)
	}

	list.Sort()

	return f, list.Err()
}

// ParseExpression parses the source range [from, to) of f as a standalone
// expression. Free identifiers are reported as unresolved references.
func ParseExpression(f *ast.File, from, to int) (*ast.ExpressionContainer, error) {
	ts := slices.ContainsFunc(f.Scripts, func(b ast.Block) bool { return b.Lang == "ts" || b.Lang == "tsx" })

	p, _ := newScriptParser(f.TokFile, f.Src, from, to, ts)

	c := &ast.ExpressionContainer{Span: ast.Span{From: f.Pos(from), To: f.Pos(to)}}
	if !p.eof() {
		c.Expression = p.parseExpression()
		if !p.eof() {
			p.unexpected()
		}
	}

	if c.Expression != nil {
		c.References = freeReferences(c.Expression, "")
	}

	var list scanner.ErrorList
	for _, e := range p.errs {
		list.Add(f.TokFile.Position(f.Pos(e.off)), e.msg)
	}

	return c, list.Err()
}

func block(el *ast.Element) ast.Block {
	b := ast.Block{
		Element: el,
		Setup:   el.Attr("setup") != nil,
		Scoped:  el.Attr("scoped") != nil,
		Module:  el.Attr("module") != nil,
	}

	b.Lang, _ = el.AttrValueOf("lang")
	b.Lang = strings.ToLower(b.Lang)

	b.Content.From = el.StartTag.End()
	if el.EndTag != nil {
		b.Content.To = el.EndTag.Pos()
	} else {
		b.Content.To = el.End()
	}

	b.Content.To = max(b.Content.From, b.Content.To)

	return b
}

func programSpan(tf *token.File, scripts []ast.Block) ast.Span {
	if len(scripts) == 0 {
		return ast.Span{From: tf.Pos(0), To: tf.Pos(0)}
	}

	return ast.Span{From: scripts[0].Content.From, To: scripts[len(scripts)-1].Content.To}
}

func astTokens(tf *token.File, toks []tok) []ast.Token {
	out := make([]ast.Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, ast.Token{
			Span:    ast.Span{From: tf.Pos(t.from), To: tf.Pos(t.to)},
			TokKind: t.kind,
			Value:   t.val,
		})
	}

	return out
}

func sortTokens(toks []ast.Token) []ast.Token {
	slices.SortStableFunc(toks, func(a, b ast.Token) int { return cmp.Compare(a.From, b.From) })

	return toks
}

func parseErrors(tf *token.File, errs []offsetError) []*ast.ParseError {
	if len(errs) == 0 {
		return nil
	}

	out := make([]*ast.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &ast.ParseError{Pos: tf.Pos(min(e.off, tf.Size())), Msg: e.msg})
	}

	slices.SortStableFunc(out, func(a, b *ast.ParseError) int { return cmp.Compare(a.Pos, b.Pos) })

	return out
}
