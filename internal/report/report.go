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

// Package report turns rule findings into diagnostics with optional fixes.
package report

import (
	"go/token"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/ast"
)

// Descriptor is a finding reported by a rule.
//
// The message is either given directly or looked up by MessageID in the
// rule's message table. Placeholders of the form {{name}} are replaced with
// the matching Data entry.
type Descriptor struct {
	// Node locates the finding unless Pos is valid.
	Node ast.Node
	Pos  token.Pos
	End  token.Pos

	MessageID string
	Message   string
	Data      map[string]string

	Related []analysis.RelatedInformation

	// Fix produces the edits of an automatic fix, if any.
	Fix FixFunc
}

// FixFunc computes the text edits of a fix.
type FixFunc func(fx *Fixer) []analysis.TextEdit

// Range returns the source range of the finding.
func (d *Descriptor) Range() (pos, end token.Pos) {
	switch {
	case d.Pos.IsValid():
		if d.End < d.Pos {
			return d.Pos, d.Pos
		}

		return d.Pos, d.End

	case d.Node != nil:
		return d.Node.Pos(), d.Node.End()

	default:
		return token.NoPos, token.NoPos
	}
}

// Diagnostic renders the descriptor for rule category with its message table.
func (d *Descriptor) Diagnostic(fx *Fixer, category string, messages map[string]string) analysis.Diagnostic {
	message := d.Message
	if d.MessageID != "" {
		var ok bool
		if message, ok = messages[d.MessageID]; !ok {
			message = d.MessageID
		}
	}

	message = Interpolate(message, d.Data)

	pos, end := d.Range()
	diagnostic := analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: category,
		Message:  message,
		Related:  d.Related,
	}

	if d.Fix != nil && fx != nil {
		if edits := d.Fix(fx); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
		}
	}

	return diagnostic
}

var placeholder = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// Interpolate replaces {{name}} placeholders with values from data.
// Unknown placeholders are kept.
func Interpolate(message string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	return placeholder.ReplaceAllStringFunc(message, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		if v, ok := data[key]; ok {
			return v
		}

		return m
	})
}

// Names renders a list of names as 'a', 'b' and 'c'.
func Names(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
