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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fillmore-labs.com/kdulint/internal/rules"
)

func rulesCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rules and their configured severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, o, err := g.load()
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Rule", "Severity", "Default", "Fix", "Options", "Description"})

			for _, r := range rules.All() {
				severity := r.Default
				if c, ok := o.Rules[r.Name]; ok {
					severity = c.Severity
				}

				tbl.AppendRow(table.Row{r.Name, severity, r.Default, mark(r.Fixable), mark(r.Schema != ""), r.Description})
			}

			tbl.AppendFooter(table.Row{"", "", "", "", "", pluralCount(len(rules.All()), "rule", "rules")})
			tbl.Render()

			return nil
		},
	}
}

func mark(b bool) string {
	if b {
		return "✓"
	}

	return ""
}
