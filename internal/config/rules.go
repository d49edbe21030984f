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

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/agext/levenshtein"
	"github.com/go-viper/mapstructure/v2"
	"github.com/xeipuuv/gojsonschema"
)

// RuleConfig is the configured severity and options of one rule.
type RuleConfig struct {
	Severity Severity `yaml:"severity"`
	Options  []any    `yaml:"options,omitempty"`
}

// Enabled reports whether the rule runs.
func (r RuleConfig) Enabled() bool { return r.Severity != SeverityOff }

var (
	// ErrUnknownRule is returned for rule names that are not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidOptions is returned when rule options do not match the rule's schema.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrRuleValue is returned for values that are neither a severity nor a list.
	ErrRuleValue = errors.New("expected severity or [severity, options...]")
)

// ParseRule parses a rule entry given as `severity` or `[severity, options...]`.
func ParseRule(v any) (RuleConfig, error) {
	switch v := v.(type) {
	case []any:
		if len(v) == 0 {
			return RuleConfig{}, ErrRuleValue
		}

		s, err := ParseSeverity(v[0])
		if err != nil {
			return RuleConfig{}, err
		}

		var options []any
		if len(v) > 1 {
			options = v[1:]
		}

		return RuleConfig{Severity: s, Options: options}, nil

	case RuleConfig:
		return v, nil

	default:
		s, err := ParseSeverity(v)
		if err != nil {
			return RuleConfig{}, fmt.Errorf("%w: %w", ErrRuleValue, err)
		}

		return RuleConfig{Severity: s}, nil
	}
}

// ParseRules parses the `rules` section of a configuration. Rule names are
// checked against known, suggesting the closest name for typos.
func ParseRules(raw map[string]any, known []string) (map[string]RuleConfig, error) {
	rules := make(map[string]RuleConfig, len(raw))

	var errs []error

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if !slices.Contains(known, name) {
			errs = append(errs, UnknownRule(name, known))

			continue
		}

		r, err := ParseRule(raw[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %q: %w", name, err))

			continue
		}

		rules[name] = r
	}

	return rules, errors.Join(errs...)
}

// UnknownRule returns an [ErrUnknownRule] error for name, with a suggestion
// when a known name is close.
func UnknownRule(name string, known []string) error {
	if s, ok := Suggest(name, known); ok {
		return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownRule, name, s)
	}

	return fmt.Errorf("%w %q", ErrUnknownRule, name)
}

// Suggest returns the candidate closest to name by edit distance, if it
// is close enough to be a likely typo.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1

	for _, c := range candidates {
		d := levenshtein.Distance(name, c, nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := max(2, len(name)/3)
	if bestDist < 0 || bestDist > limit {
		return "", false
	}

	return best, true
}

var schemas sync.Map // map[string]*gojsonschema.Schema

func compileSchema(schema string) (*gojsonschema.Schema, error) {
	if s, ok := schemas.Load(schema); ok {
		return s.(*gojsonschema.Schema), nil
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, err
	}

	schemas.Store(schema, s)

	return s, nil
}

// ValidateOptions checks a rule's option list against its JSON schema.
// An empty schema admits no options.
func ValidateOptions(schema string, options []any) error {
	if schema == "" {
		if len(options) > 0 {
			return fmt.Errorf("%w: rule takes no options", ErrInvalidOptions)
		}

		return nil
	}

	s, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("rule schema: %w", err)
	}

	if options == nil {
		options = []any{}
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(options))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

// Decode decodes an option value into out using its json tags.
func Decode(input, out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	if err := d.Decode(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}
