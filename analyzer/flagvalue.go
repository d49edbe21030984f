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

package analyzer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/rules"
)

// BehaviorValue is a boolean [flag.Value] controlling one behavior flag.
type BehaviorValue struct {
	flags *config.BitMask[config.Behavior]
	value config.Behavior
}

// NewBehaviorValue returns a flag value setting value in flags.
func NewBehaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) BehaviorValue {
	return BehaviorValue{flags: flags, value: value}
}

// Set implements [flag.Value].
func (f BehaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f BehaviorValue) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f BehaviorValue) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f BehaviorValue) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// RuleValue is a [flag.Value] setting rule severities from `name=severity`.
type RuleValue struct {
	rules map[string]config.RuleConfig
}

// NewRuleValue returns a flag value adding to rules.
func NewRuleValue(rules map[string]config.RuleConfig) RuleValue {
	return RuleValue{rules: rules}
}

// Set implements [flag.Value].
func (f RuleValue) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%w: %q is not name=severity", config.ErrRuleValue, s)
	}

	if _, ok := rules.Lookup(name); !ok {
		return config.UnknownRule(name, rules.Names())
	}

	severity, err := config.ParseSeverity(value)
	if err != nil {
		return err
	}

	c := f.rules[name]
	c.Severity = severity
	f.rules[name] = c

	return nil
}

// String implements [flag.Value].
func (f RuleValue) String() string {
	names := make([]string, 0, len(f.rules))
	for name := range f.rules {
		names = append(names, name)
	}

	slices.Sort(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(f.rules[name].Severity.String())
	}

	return b.String()
}
