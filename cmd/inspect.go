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
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/notapipeline/hexseal/pkg/types"
)

type envelopeInfo struct {
	Algorithm        string `json:"algorithm"`
	Fields           int    `json:"fields"`
	SaltLength       int    `json:"saltLength"`
	IVLength         int    `json:"ivLength"`
	CiphertextLength int    `json:"ciphertextLength"`
	TagLength        int    `json:"tagLength,omitempty"`
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [envelope]",
	Short: "Show the structure of an envelope",
	Long: `Parse an envelope without decrypting it and print its
	structure: the inferred algorithm and the byte length of each
	field. No password is required; none of the fields is secret.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		var env types.Envelope
		if err = env.UnmarshalText([]byte(envelope)); err != nil {
			return err
		}

		info := envelopeInfo{
			Algorithm:        env.Algorithm().String(),
			Fields:           types.FieldsCBC,
			SaltLength:       len(env.Salt),
			IVLength:         len(env.IV),
			CiphertextLength: len(env.CT),
			TagLength:        len(env.Tag),
		}
		if env.Algorithm() == types.AesGcm {
			info.Fields = types.FieldsGCM
		}

		b, err := prettyjson.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
