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

package report

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
)

// Fixer creates text edits over the source of one file.
type Fixer struct {
	file *ast.File
}

// NewFixer creates a [Fixer] for f.
func NewFixer(f *ast.File) *Fixer {
	return &Fixer{file: f}
}

// Text returns the source text of n.
func (fx *Fixer) Text(n ast.Node) string { return fx.file.Text(n) }

// InsertTextBefore inserts text before n.
func (fx *Fixer) InsertTextBefore(n ast.Node, text string) analysis.TextEdit {
	return fx.InsertTextBeforeRange(n.Pos(), text)
}

// InsertTextAfter inserts text after n.
func (fx *Fixer) InsertTextAfter(n ast.Node, text string) analysis.TextEdit {
	return fx.InsertTextAfterRange(n.End(), text)
}

// InsertTextBeforeRange inserts text at pos.
func (*Fixer) InsertTextBeforeRange(pos token.Pos, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(text)}
}

// InsertTextAfterRange inserts text at end.
func (*Fixer) InsertTextAfterRange(end token.Pos, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: end, End: end, NewText: []byte(text)}
}

// ReplaceText replaces the source of n.
func (fx *Fixer) ReplaceText(n ast.Node, text string) analysis.TextEdit {
	return fx.ReplaceTextRange(n.Pos(), n.End(), text)
}

// ReplaceTextRange replaces the source of [pos, end).
func (*Fixer) ReplaceTextRange(pos, end token.Pos, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: pos, End: end, NewText: []byte(text)}
}

// Remove deletes the source of n.
func (fx *Fixer) Remove(n ast.Node) analysis.TextEdit {
	return fx.RemoveRange(n.Pos(), n.End())
}

// RemoveRange deletes the source of [pos, end).
func (*Fixer) RemoveRange(pos, end token.Pos) analysis.TextEdit {
	return analysis.TextEdit{Pos: pos, End: end}
}

// ErrOverlap is returned when edits of one fix overlap.
var ErrOverlap = errors.New("overlapping edits")

// ErrOutside is returned when an edit lies outside of the file.
var ErrOutside = errors.New("edit outside of file")

func end(e analysis.TextEdit) token.Pos {
	if e.End.IsValid() {
		return e.End
	}

	return e.Pos
}

func sortEdits(edits []analysis.TextEdit) []analysis.TextEdit {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b analysis.TextEdit) int { return cmp.Compare(a.Pos, b.Pos) })

	return sorted
}

// Apply applies edits to src, the content of tf. Insertions at the same
// position keep their order.
func Apply(tf *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	var (
		out  bytes.Buffer
		last int
	)

	out.Grow(len(src))

	base, size := tf.Base(), tf.Size()

	for _, e := range sortEdits(edits) {
		if int(e.Pos) < base || int(end(e)) > base+size || end(e) < e.Pos {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrOutside, e.Pos, end(e))
		}

		from, to := tf.Offset(e.Pos), tf.Offset(end(e))
		if from < last {
			return nil, fmt.Errorf("%w at %s", ErrOverlap, tf.Position(e.Pos))
		}

		out.Write(src[last:from]) // ignore error
		out.Write(e.NewText)      // ignore error
		last = to
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}

// conflicts reports whether two edits touch the same source range.
// Edits starting at the same position conflict since their order is undefined.
func conflicts(a, b analysis.TextEdit) bool {
	return a.Pos == b.Pos || (a.Pos < end(b) && b.Pos < end(a))
}

// ApplyFixes applies the first suggested fix of each diagnostic. Fixes
// conflicting with an already accepted fix are skipped and can be applied
// in a later pass. It returns the new source and the number of applied fixes.
func ApplyFixes(tf *token.File, src []byte, diagnostics []analysis.Diagnostic) ([]byte, int, error) {
	var (
		accepted []analysis.TextEdit
		applied  int
	)

	ordered := slices.Clone(diagnostics)
	slices.SortStableFunc(ordered, func(a, b analysis.Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

fixes:
	for _, d := range ordered {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		edits := d.SuggestedFixes[0].TextEdits
		for _, e := range edits {
			for _, a := range accepted {
				if conflicts(a, e) {
					continue fixes
				}
			}
		}

		if _, err := Apply(tf, src, edits); err != nil {
			continue // a fix with inconsistent edits is never applied
		}

		accepted = append(accepted, edits...)
		applied++
	}

	if applied == 0 {
		return src, 0, nil
	}

	out, err := Apply(tf, src, accepted)
	if err != nil {
		return nil, 0, err
	}

	return out, applied, nil
}
