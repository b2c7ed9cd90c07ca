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
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hexseal",
	Short: "Password based envelope encryption",
	Long: `
Password based envelope encryption

hexseal seals text under a password into a self describing envelope of
colon delimited hex fields (salt, IV, ciphertext and, for GCM, an
authentication tag) and opens such envelopes given only the password.

Keys are derived with PBKDF2-HMAC-SHA256 from a fresh random salt on
every encryption. The envelope carries no algorithm tag; decoders infer
AES-CBC from 3 fields and AES-GCM from 4.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	if c, err := rootCmd.ExecuteC(); err != nil {
		if rootCmd != c {
			return
		}
		fatal("%s", err)
		os.Exit(1)
	}
}
