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
	"log/slog"

	"fillmore-labs.com/kdulint/internal/config"
)

// Option configures specific behavior of a [New] kdulint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated component files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithReportUnusedDisable is an [Option] to report disable directives that suppress nothing.
func WithReportUnusedDisable(report bool) Option { return unusedDisableOption{report: report} }

type unusedDisableOption struct{ report bool }

func (o unusedDisableOption) apply(r *runOptions) {
	r.behavior.Set(config.ReportUnusedDisable, o.report)
}

func (o unusedDisableOption) LogAttr() slog.Attr {
	return slog.Bool("report-unused-disable", o.report)
}

// WithRule is an [Option] to configure the severity and options of one rule.
func WithRule(name string, severity config.Severity, options ...any) Option {
	return ruleOption{name: name, config: config.RuleConfig{Severity: severity, Options: options}}
}

type ruleOption struct {
	name   string
	config config.RuleConfig
}

func (o ruleOption) apply(r *runOptions) {
	r.rules[o.name] = o.config
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.String(o.name, o.config.Severity.String())
}

// WithConfigFile is an [Option] to load rule configuration from a file.
// Rules set by [WithRule] take precedence.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *runOptions) {
	r.configFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithLogger is an [Option] to set the logger receiving debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
