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

package run

import (
	"log/slog"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/rule"
	"fillmore-labs.com/kdulint/internal/rules"
)

// Options represent the configuration of a kdulint run.
type Options struct {
	// Rules holds the configured rules. Rules not mentioned run at their
	// default severity.
	Rules map[string]config.RuleConfig

	// Behavior holds run-wide flags.
	Behavior config.BitMask[config.Behavior]

	// Logger receives debug output, nil for [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:    make(map[string]config.RuleConfig),
		Behavior: config.DefaultBehavior(),
	}
}

// FromFile returns the options of a loaded configuration file.
func FromFile(f *config.File) (*Options, error) {
	cfg, err := config.ParseRules(f.Rules, rules.Names())
	if err != nil {
		return nil, err
	}

	return &Options{Rules: cfg, Behavior: f.Behavior()}, nil
}

// Runner configures the rule set.
func (o *Options) Runner() *rule.Runner {
	return rule.NewRunner(rules.All(), o.Rules, o.Behavior, o.Logger)
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o.Rules)+2)
	as = append(as,
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("fix", o.Behavior.Enabled(config.Fix)))

	for name, c := range o.Rules {
		as = append(as, slog.String(name, c.Severity.String()))
	}

	return slog.GroupValue(as...)
}
