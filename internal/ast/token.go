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

package ast

import (
	"go/token"
	"slices"
)

// TokenKind classifies a [Token].
type TokenKind uint8

const (
	TokenPunctuator TokenKind = iota
	TokenIdentifier
	TokenKeyword
	TokenString
	TokenNumeric
	TokenTemplate
	TokenRegExp
	TokenPrivateName

	// Template tokens.
	TokenHTMLTagOpen
	TokenHTMLEndTagOpen
	TokenHTMLTagClose
	TokenHTMLSelfClosingTagClose
	TokenHTMLIdentifier
	TokenHTMLAssociation
	TokenHTMLLiteral
	TokenHTMLText
	TokenHTMLWhitespace
	TokenHTMLComment
	TokenMustacheStart
	TokenMustacheEnd

	// Comments of both domains.
	TokenLineComment
	TokenBlockComment
)

var tokenKindNames = [...]string{
	TokenPunctuator:              "Punctuator",
	TokenIdentifier:              "Identifier",
	TokenKeyword:                 "Keyword",
	TokenString:                  "String",
	TokenNumeric:                 "Numeric",
	TokenTemplate:                "Template",
	TokenRegExp:                  "RegularExpression",
	TokenPrivateName:             "PrivateIdentifier",
	TokenHTMLTagOpen:             "HTMLTagOpen",
	TokenHTMLEndTagOpen:          "HTMLEndTagOpen",
	TokenHTMLTagClose:            "HTMLTagClose",
	TokenHTMLSelfClosingTagClose: "HTMLSelfClosingTagClose",
	TokenHTMLIdentifier:          "HTMLIdentifier",
	TokenHTMLAssociation:         "HTMLAssociation",
	TokenHTMLLiteral:             "HTMLLiteral",
	TokenHTMLText:                "HTMLText",
	TokenHTMLWhitespace:          "HTMLWhitespace",
	TokenHTMLComment:             "HTMLComment",
	TokenMustacheStart:           "MustacheStart",
	TokenMustacheEnd:             "MustacheEnd",
	TokenLineComment:             "Line",
	TokenBlockComment:            "Block",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}

	return "Unknown"
}

// IsComment reports whether the token is a comment of either domain.
func (k TokenKind) IsComment() bool {
	return k == TokenLineComment || k == TokenBlockComment || k == TokenHTMLComment
}

// Token is a lexical token with its source range.
type Token struct {
	Span
	TokKind TokenKind
	Value   string
}

// TokenStore answers positional token queries over a sorted token stream.
// Comments are kept separately and never returned by the token queries.
type TokenStore struct {
	tokens   []Token
	comments []Token
}

// NewTokenStore builds a store. tokens and comments must be sorted by position.
func NewTokenStore(tokens, comments []Token) *TokenStore {
	return &TokenStore{tokens: tokens, comments: comments}
}

// Tokens returns all tokens in source order.
func (s *TokenStore) Tokens() []Token {
	if s == nil {
		return nil
	}

	return s.tokens
}

// Comments returns all comments in source order.
func (s *TokenStore) Comments() []Token {
	if s == nil {
		return nil
	}

	return s.comments
}

// search returns the index of the first token starting at or after pos.
func search(tokens []Token, pos token.Pos) int {
	i, _ := slices.BinarySearchFunc(tokens, pos, func(t Token, p token.Pos) int {
		return int(t.From) - int(p)
	})

	return i
}

// Before returns the last token ending at or before pos.
func (s *TokenStore) Before(pos token.Pos) (Token, bool) {
	if s == nil {
		return Token{}, false
	}

	for i := search(s.tokens, pos) - 1; i >= 0; i-- {
		if s.tokens[i].To <= pos {
			return s.tokens[i], true
		}
	}

	return Token{}, false
}

// After returns the first token starting at or after pos.
func (s *TokenStore) After(pos token.Pos) (Token, bool) {
	if s == nil {
		return Token{}, false
	}

	if i := search(s.tokens, pos); i < len(s.tokens) {
		return s.tokens[i], true
	}

	return Token{}, false
}

// Between returns the tokens lying entirely inside [pos, end).
func (s *TokenStore) Between(pos, end token.Pos) []Token {
	if s == nil {
		return nil
	}

	i := search(s.tokens, pos)

	j := i
	for j < len(s.tokens) && s.tokens[j].To <= end {
		j++
	}

	return s.tokens[i:j]
}

// First returns the first token of n.
func (s *TokenStore) First(n Node) (Token, bool) {
	t, ok := s.After(n.Pos())
	if !ok || t.To > n.End() {
		return Token{}, false
	}

	return t, true
}

// Last returns the last token of n.
func (s *TokenStore) Last(n Node) (Token, bool) {
	t, ok := s.Before(n.End())
	if !ok || t.From < n.Pos() {
		return Token{}, false
	}

	return t, true
}

// CommentsBefore returns the comments between the previous token and pos.
func (s *TokenStore) CommentsBefore(pos token.Pos) []Token {
	if s == nil {
		return nil
	}

	var from token.Pos
	if t, ok := s.Before(pos); ok {
		from = t.To
	}

	i := search(s.comments, from)

	j := i
	for j < len(s.comments) && s.comments[j].To <= pos {
		j++
	}

	return s.comments[i:j]
}
