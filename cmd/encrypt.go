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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notapipeline/hexseal/pkg/seal"
)

var encryptFlags struct {
	profile    string
	algorithm  string
	saltLength int
	iterations int
	keyLength  int
}

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Seal text into an envelope",
	Long: `Seal text under a password into an envelope string.

	The text is taken from the first argument, or from stdin when no
	argument is given. The password is taken from HEXSEAL_PASSWORD, the
	OS keyring, or an interactive prompt, in that order.

	Parameters come from the selected profile ("default" is AES-CBC at
	100,000 iterations, "hardened" is AES-GCM at 310,000) and can be
	overridden individually. The IV length is fixed by the algorithm
	and cannot be overridden.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		params, err := buildParameters(cfg,
			encryptFlags.profile, encryptFlags.algorithm,
			encryptFlags.saltLength, encryptFlags.iterations, encryptFlags.keyLength)
		if err != nil {
			return err
		}

		plaintext, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		password, err := getPassword()
		if err != nil {
			return err
		}

		envelope, err := seal.Encrypt(context.Background(), plaintext, password, params)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), envelope)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().StringVarP(&encryptFlags.profile, "profile", "p", "", "parameter profile to seal with")
	encryptCmd.Flags().StringVarP(&encryptFlags.algorithm, "algorithm", "a", "", "cipher mode (aes-cbc or aes-gcm)")
	encryptCmd.Flags().IntVar(&encryptFlags.saltLength, "salt-length", 0, "salt length in bytes (16-64)")
	encryptCmd.Flags().IntVar(&encryptFlags.iterations, "iterations", 0, "PBKDF2 iteration count (10000-1000000)")
	encryptCmd.Flags().IntVar(&encryptFlags.keyLength, "key-length", 0, "key length in bytes (16, 24 or 32)")
}
