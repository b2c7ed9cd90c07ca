/*
 *   Copyright 2024 Martin Proffitt <mproffitt@choclab.net>
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */
package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List parameter profiles",
	Long: `List the available parameter profiles: the built in
	"default" and "hardened" sets plus any profiles defined in the
	config file. The active default profile is marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Profile", "Algorithm", "Salt", "Iterations", "Key", "IV"})
		for _, name := range cfg.Names() {
			params, err := cfg.Parameters(name)
			if err != nil {
				return err
			}
			label := name
			if name == cfg.Profile {
				label = name + " *"
			}
			t.AppendRow(table.Row{
				label, params.Algorithm.String(),
				params.SaltLength, params.Iterations,
				params.KeyLength, params.IVLength,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
