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
	"fmt"
	"go/token"
)

// Block is a top-level section of a component file.
type Block struct {
	Element *Element
	Content Span   // range of the raw block content
	Lang    string // lang attribute, empty when absent
	Setup   bool   // <script setup>
	Scoped  bool   // <style scoped>
	Module  bool   // <style module>
}

// ParseError is a syntax error with its position.
type ParseError struct {
	Pos token.Pos
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// File is a parsed component file.
type File struct {
	Name    string
	Src     []byte
	TokFile *token.File

	Document     *DocumentFragment
	TemplateBody *Element // the <template> block, nil when absent
	Program      *Program // merged body of all script blocks, never nil

	Scripts []Block
	Styles  []Block

	TemplateTokens *TokenStore
	ScriptTokens   *TokenStore

	TemplateErrors []*ParseError
	ScriptErrors   []*ParseError
}

// HasTemplateErrors reports whether the template body could not be parsed cleanly.
func (f *File) HasTemplateErrors() bool { return len(f.TemplateErrors) > 0 }

// HasScriptErrors reports whether a script block could not be parsed cleanly.
func (f *File) HasScriptErrors() bool { return len(f.ScriptErrors) > 0 }

// SetupScript returns the <script setup> block.
func (f *File) SetupScript() (Block, bool) {
	for _, s := range f.Scripts {
		if s.Setup {
			return s, true
		}
	}

	return Block{}, false
}

// InSetup reports whether pos lies inside a <script setup> block.
func (f *File) InSetup(pos token.Pos) bool {
	s, ok := f.SetupScript()

	return ok && s.Content.From <= pos && pos < s.Content.To
}

// Offset returns the byte offset of pos.
func (f *File) Offset(pos token.Pos) int { return f.TokFile.Offset(pos) }

// Pos returns the position of a byte offset.
func (f *File) Pos(offset int) token.Pos { return f.TokFile.Pos(offset) }

// Text returns the source text covered by n.
func (f *File) Text(n Node) string {
	return f.Slice(n.Pos(), n.End())
}

// Slice returns the source text of [pos, end).
func (f *File) Slice(pos, end token.Pos) string {
	if !pos.IsValid() || end < pos {
		return ""
	}

	return string(f.Src[f.Offset(pos):f.Offset(end)])
}

// Position returns the line and column of pos.
func (f *File) Position(pos token.Pos) token.Position { return f.TokFile.Position(pos) }

// Describe formats a node as kind and position for log messages.
func (f *File) Describe(n Node) string {
	p := f.Position(n.Pos())

	return fmt.Sprintf("%s@%d:%d", n.Kind(), p.Line, p.Column)
}
