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
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/run"
)

// runOptions represent configuration runOptions for the kdulint analyzer.
type runOptions struct {
	// behavior holds run-wide flags.
	behavior config.BitMask[config.Behavior]

	// rules overrides the configuration of single rules.
	rules map[string]config.RuleConfig

	// configFile is loaded on each run, when set.
	configFile string

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior: config.DefaultBehavior(),
		rules:    make(map[string]config.RuleConfig),
	}
}

// analyzer returns a kdulint *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}
}

// options merges the configuration file with the explicit settings, which
// take precedence.
func (r *runOptions) options() (*run.Options, error) {
	o := run.DefaultOptions()

	if r.configFile != "" {
		f, err := config.Load(r.configFile)
		if err != nil {
			return nil, err
		}

		if o, err = run.FromFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
	}

	o.Behavior = config.NewBitMask(o.Behavior.Flags() | r.behavior.Flags())
	o.Behavior.Disable(config.Fix) // analysis drivers apply suggested fixes

	for name, c := range r.rules {
		o.Rules[name] = c
	}

	o.Logger = r.logger

	return o, nil
}

func (r *runOptions) run(p *analysis.Pass) (any, error) {
	o, err := r.options()
	if err != nil {
		return nil, fmt.Errorf("kdulint: %w", err)
	}

	return o.Run(p)
}
