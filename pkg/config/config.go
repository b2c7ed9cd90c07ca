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
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v2"

	"github.com/notapipeline/hexseal/pkg/types"
)

// Referenced as a variable to enable it to be mocked in tests
var ConfigPath func() string = getConfigPath

// Profile is a named parameter set. Zero fields take the canonical
// defaults when the profile is resolved; resolution is a pure function
// and never falls back between profiles.
type Profile struct {
	Algorithm  string `yaml:"algorithm"`
	SaltLength int    `yaml:"saltLength"`
	Iterations int    `yaml:"iterations"`
	KeyLength  int    `yaml:"keyLength"`
}

type Config struct {
	Profile  string             `yaml:"profile" env:"HEXSEAL_PROFILE"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// New returns a config pre-seeded with the two built in profiles.
//
// "default" is the canonical interoperable profile: AES-CBC, 32 byte
// salt, 100,000 PBKDF2 iterations, AES-256. "hardened" is the named
// alternate: AES-GCM at 310,000 iterations. The two are incompatible
// by design and are never merged; selecting one is always explicit.
func New() *Config {
	return &Config{
		Profile: "default",
		Profiles: map[string]Profile{
			"default": {
				Algorithm:  types.AesCbc.String(),
				SaltLength: types.DefaultSaltLength,
				Iterations: types.DefaultIterations,
				KeyLength:  types.DefaultKeyLength,
			},
			"hardened": {
				Algorithm:  types.AesGcm.String(),
				SaltLength: types.DefaultSaltLength,
				Iterations: types.HardenedIterations,
				KeyLength:  types.DefaultKeyLength,
			},
		},
	}
}

// Load the config file from the user local config directory
//
// The config file will be loaded from ~/.config/hexseal/config.yaml if
// it exists and then the environment will be checked for overrides.
// File profiles are merged over the built in set by name; the built in
// profiles themselves may be redefined but never silently altered.
func (c *Config) Load() (err error) {
	if err = c.loadYaml(); err != nil {
		return
	}
	if err = c.loadEnv(); err != nil {
		return
	}
	return
}

func (c *Config) loadYaml() (err error) {
	var (
		cp       string = ConfigPath()
		yamlFile []byte
	)

	if _, err = os.Stat(cp); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if yamlFile, err = os.ReadFile(cp); err != nil {
		return err
	}

	var loaded Config
	if err = yaml.Unmarshal(yamlFile, &loaded); err != nil {
		return err
	}
	if loaded.Profile != "" {
		c.Profile = loaded.Profile
	}
	for name, p := range loaded.Profiles {
		c.Profiles[name] = p
	}
	return nil
}

func (c *Config) loadEnv() (err error) {
	return env.Parse(c)
}

// Names returns the profile names in sorted order
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameters resolves a named profile into a validated parameter set.
// An empty name selects the configured default profile. Unknown names
// are an error, never a fallback.
func (c *Config) Parameters(name string) (types.CipherParameters, error) {
	if name == "" {
		name = c.Profile
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return types.CipherParameters{}, types.InvalidArgumentError{
			Argument: "profile",
			Reason:   fmt.Sprintf("unknown profile %q", name),
		}
	}

	algorithm := types.AesCbc
	if profile.Algorithm != "" {
		var err error
		if algorithm, err = types.ParseAlgorithm(profile.Algorithm); err != nil {
			return types.CipherParameters{}, err
		}
	}

	params := types.DefaultParameters(algorithm)
	if profile.SaltLength != 0 {
		params.SaltLength = profile.SaltLength
	}
	if profile.Iterations != 0 {
		params.Iterations = profile.Iterations
	}
	if profile.KeyLength != 0 {
		params.KeyLength = profile.KeyLength
	}
	return params, params.Validate()
}

func getConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hexseal", "config.yaml")
}
