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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/kdulint/internal/ast"
)

// kdulint is the name of the linter.
const kdulint = "kdulint"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file       *ast.File
	generated  bool
	directives []*Directive
}

// Directive is an in-file comment disabling rules on one line.
type Directive struct {
	Comment ast.Token
	Line    int      // the line the directive applies to
	Rules   []string // empty for all rules
	used    bool
}

// Used reports whether the directive suppressed at least one diagnostic.
func (d *Directive) Used() bool { return d.used }

func (d *Directive) matches(rule string) bool {
	return len(d.Rules) == 0 || slices.Contains(d.Rules, rule)
}

// NewCurrentFile creates a new [CurrentFile] from a parsed component file.
func NewCurrentFile(file *ast.File) *CurrentFile {
	if file == nil || file.TokFile == nil {
		return &CurrentFile{}
	}

	c := &CurrentFile{file: file}

	for _, comments := range [][]ast.Token{file.TemplateTokens.Comments(), file.ScriptTokens.Comments()} {
		for i, comment := range comments {
			if i == 0 && generatedPattern.MatchString(strings.TrimSpace(comment.Value)) {
				c.generated = true
			}

			if d, ok := c.directive(comment); ok {
				c.directives = append(c.directives, d)
			}
		}
	}

	return c
}

// Valid returns true if the [CurrentFile] was created from a parsed file.
func (c *CurrentFile) Valid() bool {
	return c.file != nil
}

// Generated returns true if the file starts with a generated code marker.
func (c *CurrentFile) Generated() bool {
	return c.generated
}

// Lines returns the number of lines a node spans.
func (c *CurrentFile) Lines(n ast.Node) int {
	return c.line(n.End()) - c.line(n.Pos()) + 1
}

func (c *CurrentFile) line(pos token.Pos) int {
	return c.file.TokFile.PositionFor(pos, false).Line
}

// Disabled reports whether a directive suppresses rule at pos, marking the
// directive as used.
func (c *CurrentFile) Disabled(pos token.Pos, rule string) bool {
	if c.file == nil || !pos.IsValid() || len(c.directives) == 0 {
		return false
	}

	line := c.line(pos)
	disabled := false

	for _, d := range c.directives {
		if d.Line == line && d.matches(rule) {
			d.used = true
			disabled = true
		}
	}

	return disabled
}

// Unused returns the directives that did not suppress anything.
func (c *CurrentFile) Unused() []*Directive {
	var unused []*Directive

	for _, d := range c.directives {
		if !d.used {
			unused = append(unused, d)
		}
	}

	return unused
}

var (
	generatedPattern = regexp.MustCompile(`^Code generated .* DO NOT EDIT\.?$`)
	disablePattern   = regexp.MustCompile(`^\s*kdulint-disable-(next-)?line(?:\s+([^-][^\n]*?))?\s*(?:--.*)?$`)
	nolintPattern    = regexp.MustCompile(`^\s*nolint:([a-zA-Z0-9,_-]+)`)
)

func (c *CurrentFile) directive(comment ast.Token) (*Directive, bool) {
	line := c.line(comment.From)

	if matches := disablePattern.FindStringSubmatch(comment.Value); matches != nil {
		if matches[1] != "" {
			line = c.line(comment.To) + 1
		}

		var rules []string
		for rule := range strings.SplitSeq(matches[2], ",") {
			if rule = strings.TrimSpace(rule); rule != "" {
				rules = append(rules, rule)
			}
		}

		return &Directive{Comment: comment, Line: line, Rules: rules}, true
	}

	if CommentHasNoLint(comment.Value) {
		return &Directive{Comment: comment, Line: line}, true
	}

	return nil, false
}

// CommentHasNoLint checks if the comment text contains a `nolint:kdulint` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == kdulint || l == "all" {
			return true
		}
	}

	return false
}
