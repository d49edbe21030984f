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

// Command kdulint lints single-file components.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/kdulint/internal/config"
	"fillmore-labs.com/kdulint/internal/run"
)

// errProblems is returned when diagnostics of error severity were reported.
var errProblems = errors.New("problems found")

// globalFlags are the persistent flags of all commands.
type globalFlags struct {
	config  string
	verbose bool
	noColor bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "kdulint",
		Short: "Lint single-file components",
		Long: `kdulint checks .kdu component files for framework specific mistakes.

Configuration is read from .kdulint.yaml in the current directory or $HOME,
KDULINT_* environment variables override file settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if g.noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}
		},
	}

	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(lintCommand(g), rulesCommand(g), configCommand(g))

	return root
}

// load reads the configuration file named by the flags.
func (g *globalFlags) load() (*config.File, *run.Options, error) {
	f, err := config.Load(g.config)
	if err != nil {
		return nil, nil, err
	}

	o, err := run.FromFile(f)
	if err != nil {
		if f.Path != "" {
			err = fmt.Errorf("%s: %w", f.Path, err)
		}

		return nil, nil, err
	}

	o.Logger = g.logger()

	return f, o, nil
}

func (g *globalFlags) logger() *slog.Logger {
	if !g.verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fprintf writes formatted output, ignoring write errors like [fmt.Printf].
func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
