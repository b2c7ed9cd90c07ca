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
	"github.com/notapipeline/hexseal/pkg/types"
)

var decryptFlags struct {
	algorithm  string
	iterations int
	keyLength  int
}

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [envelope]",
	Short: "Open an envelope",
	Long: `Open an envelope string and print the plaintext.

	The envelope is taken from the first argument, or from stdin when
	no argument is given. The algorithm is inferred from the envelope
	field count. If --key-length is not given, key lengths 32, 24 and
	16 are tried in that order until one opens the envelope.

	A wrong password, a wrong key length and a tampered envelope are
	indistinguishable: all report a generic decryption failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		if decryptFlags.algorithm != "" {
			expected, err := types.ParseAlgorithm(decryptFlags.algorithm)
			if err != nil {
				return err
			}
			var env types.Envelope
			if err = env.UnmarshalText([]byte(envelope)); err != nil {
				return err
			}
			if env.Algorithm() != expected {
				return types.MalformedEnvelopeError{
					Reason: fmt.Sprintf("envelope is %s but %s was requested",
						env.Algorithm(), expected),
				}
			}
		}

		password, err := getPassword()
		if err != nil {
			return err
		}

		plaintext, err := seal.Decrypt(context.Background(), envelope, password, seal.Hints{
			Iterations: decryptFlags.iterations,
			KeyLength:  decryptFlags.keyLength,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), plaintext)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().StringVarP(&decryptFlags.algorithm, "algorithm", "a", "", "expected cipher mode; errors if the envelope disagrees")
	decryptCmd.Flags().IntVar(&decryptFlags.iterations, "iterations", 0, "PBKDF2 iteration count the envelope was sealed with")
	decryptCmd.Flags().IntVar(&decryptFlags.keyLength, "key-length", 0, "key length hint in bytes (16, 24 or 32)")
}
