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

package main

import (
	"github.com/spf13/cobra"

	"fillmore-labs.com/kdulint/internal/rules"
)

func configCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML. Rules not mentioned in the
configuration file are listed with their default severity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, _, err := g.load()
			if err != nil {
				return err
			}

			effective := make(map[string]any, len(f.Rules))
			for _, r := range rules.All() {
				effective[r.Name] = r.Default.String()
			}

			for name, v := range f.Rules {
				effective[name] = v
			}

			f.Rules = effective

			out, err := f.YAML()
			if err != nil {
				return err
			}

			if f.Path != "" {
				fprintf(cmd.OutOrStdout(), "# %s\n", f.Path)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
