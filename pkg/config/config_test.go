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
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notapipeline/hexseal/pkg/types"
)

func mockConfigPath(t *testing.T, contents string) {
	t.Helper()
	orig := ConfigPath
	t.Cleanup(func() { ConfigPath = orig })

	path := filepath.Join(t.TempDir(), "config.yaml")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	}
	ConfigPath = func() string { return path }
}

func TestBuiltinProfiles(t *testing.T) {
	mockConfigPath(t, "")
	c := New()
	require.NoError(t, c.Load())

	assert.Equal(t, []string{"default", "hardened"}, c.Names())

	params, err := c.Parameters("")
	require.NoError(t, err)
	if diff := pretty.Compare(types.DefaultParameters(types.AesCbc), params); diff != "" {
		t.Errorf("default profile mismatch (-want +got):\n%s", diff)
	}

	params, err = c.Parameters("hardened")
	require.NoError(t, err)
	if diff := pretty.Compare(types.HardenedParameters(), params); diff != "" {
		t.Errorf("hardened profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYamlMergesProfiles(t *testing.T) {
	mockConfigPath(t, `
profile: archive
profiles:
  archive:
    algorithm: aes-gcm
    iterations: 500000
    keyLength: 24
`)
	c := New()
	require.NoError(t, c.Load())

	assert.Equal(t, []string{"archive", "default", "hardened"}, c.Names())

	params, err := c.Parameters("")
	require.NoError(t, err)
	expected := types.DefaultParameters(types.AesGcm)
	expected.Iterations = 500000
	expected.KeyLength = 24
	if diff := pretty.Compare(expected, params); diff != "" {
		t.Errorf("archive profile mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesProfileSelection(t *testing.T) {
	mockConfigPath(t, "")
	t.Setenv("HEXSEAL_PROFILE", "hardened")

	c := New()
	require.NoError(t, c.Load())
	assert.Equal(t, "hardened", c.Profile)
}

func TestUnknownProfileIsAnError(t *testing.T) {
	mockConfigPath(t, "")
	c := New()
	require.NoError(t, c.Load())

	_, err := c.Parameters("missing")
	require.Error(t, err)
	assert.IsType(t, types.InvalidArgumentError{}, err)
}

// A profile carrying out of bound values fails resolution rather than
// being silently corrected.
func TestInvalidProfileFailsValidation(t *testing.T) {
	mockConfigPath(t, `
profiles:
  broken:
    saltLength: 8
`)
	c := New()
	require.NoError(t, c.Load())

	_, err := c.Parameters("broken")
	require.Error(t, err)
	assert.IsType(t, types.InvalidParametersError{}, err)
}
