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

package gclplugin

import (
	"slices"

	kdulint "fillmore-labs.com/kdulint/analyzer"
	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/rules"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated includes generated component files.
	Generated *bool `json:"generated,omitzero"`
	// ReportUnusedDisable reports disable directives that suppress nothing.
	ReportUnusedDisable *bool `json:"report-unused-disable,omitzero"`
	// Config is a kdulint configuration file.
	Config *string `json:"config,omitzero"`
	// Rules maps rule names to `severity` or `[severity, options...]`.
	Rules map[string]any `json:"rules,omitzero"`
}

// Options converts [Settings] into a list of [kdulint.Option] for the kdulint analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]kdulint.Option, error) {
	var opts []kdulint.Option

	opts = appendOption(opts, s.Generated, kdulint.WithGenerated)
	opts = appendOption(opts, s.ReportUnusedDisable, kdulint.WithReportUnusedDisable)
	opts = appendOption(opts, s.Config, kdulint.WithConfigFile)

	if len(s.Rules) == 0 {
		return opts, nil
	}

	cfg, err := config.ParseRules(s.Rules, rules.Names())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		opts = append(opts, kdulint.WithRule(name, cfg[name].Severity, cfg[name].Options...))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [kdulint.Option] list.
func appendOption[T any](opts []kdulint.Option, value *T, constructor func(T) kdulint.Option) []kdulint.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
