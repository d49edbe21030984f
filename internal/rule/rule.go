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

// Package rule defines lint rules and runs them over component files.
//
// A rule registers typed handlers for template and script node kinds on a
// [Visitor]. The [Runner] walks each file once per domain and dispatches
// every node to the handlers registered for its kind, in rule order.
package rule

import (
	"log/slog"

	"fillmore-labs.com/kdulint/internal/config"
)

// Meta describes a rule.
type Meta struct {
	Name        string
	Description string
	// Default is the severity of the rule when the configuration does not
	// mention it.
	Default config.Severity
	Fixable bool
	// Schema is the JSON schema of the option list, empty for rules without options.
	Schema   string
	Messages map[string]string
	// ParseErrors lets the rule run on files with parse errors.
	ParseErrors bool
}

// Rule is a lint rule.
type Rule struct {
	Meta

	// Parse decodes the option list once per run. It may return usable
	// fallback options together with an error. Nil for rules without options.
	Parse func(raw []any) (any, error)

	// Create registers the rule's handlers for one file.
	Create func(ctx *Context) *Visitor
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (r *Rule) LogAttr() slog.Attr {
	return slog.String("rule", r.Name)
}

// Configured is a rule with its settings for a run.
type Configured struct {
	*Rule
	Severity config.Severity
	Options  any
}

// OptionsOf returns the decoded options of the rule running in ctx.
func OptionsOf[T any](ctx *Context) T {
	v, _ := ctx.rule.Options.(T)

	return v
}
