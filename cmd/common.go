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
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/twpayne/go-pinentry"
	"github.com/zalando/go-keyring"

	"github.com/notapipeline/hexseal/pkg/config"
	"github.com/notapipeline/hexseal/pkg/types"
)

const (
	keyringService = "hexseal"
	keyringUser    = "master"
)

var fatal func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

var loadConfig func() (*config.Config, error) = func() (*config.Config, error) {
	c := config.New()
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// getPassword resolves the password in fixed order: the HEXSEAL_PASSWORD
// environment variable, the OS keyring, a pinentry dialog, and finally
// a terminal prompt when no pinentry binary is available.
var getPassword func() (string, error) = func() (string, error) {
	if password := os.Getenv("HEXSEAL_PASSWORD"); password != "" {
		return password, nil
	}

	if password, err := keyring.Get(keyringService, keyringUser); err == nil && password != "" {
		return password, nil
	}

	var (
		err         error
		client      *pinentry.Client
		password    string
		usePinentry bool = true
	)

	if client, err = getPinentry(
		pinentry.WithBinaryNameFromGnuPGAgentConf(),
		pinentry.WithDesc("Please enter the envelope password."),
		pinentry.WithGPGTTY(),
		pinentry.WithPrompt("Password:"),
		pinentry.WithTitle("Envelope password"),
	); err != nil {
		if password, err = readPassword("Please enter the envelope password: "); err != nil {
			return "", err
		}
		usePinentry = false
	}

	if usePinentry {
		defer client.Close()
		password, _, err = client.GetPIN()
		if pinentry.IsCancelled(err) {
			return "", fmt.Errorf("Cancelled")
		}
	}
	if password == "" {
		return "", fmt.Errorf("No password provided")
	}
	password = strings.TrimSpace(password)
	return password, err
}

var getPinentry func(options ...pinentry.ClientOption) (c *pinentry.Client, err error) = func(options ...pinentry.ClientOption) (c *pinentry.Client, err error) {
	return pinentry.NewClient(options...)
}

var readPassword func(prompt string) (string, error) = func(prompt string) (string, error) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()
	var (
		password string
		err      error
	)
	if password, err = line.PasswordPrompt(prompt); err != nil {
		if err == liner.ErrPromptAborted {
			line.Close()
			os.Exit(0)
		}
		return "", err
	}
	return password, nil
}

// readInput returns the first positional argument, or the whole of
// stdin when no argument was given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// buildParameters resolves the profile then layers explicit flag
// overrides on top, in one place, before any cryptographic call.
func buildParameters(cfg *config.Config, profile, algorithm string, saltLength, iterations, keyLength int) (types.CipherParameters, error) {
	params, err := cfg.Parameters(profile)
	if err != nil {
		return params, err
	}

	if algorithm != "" {
		a, err := types.ParseAlgorithm(algorithm)
		if err != nil {
			return params, err
		}
		params.Algorithm = a
		params.IVLength = a.IVLength()
	}
	if saltLength != 0 {
		params.SaltLength = saltLength
	}
	if iterations != 0 {
		params.Iterations = iterations
	}
	if keyLength != 0 {
		params.KeyLength = keyLength
	}
	return params, params.Validate()
}
