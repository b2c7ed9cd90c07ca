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
package seal

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/notapipeline/hexseal/pkg/crypto"
	"github.com/notapipeline/hexseal/pkg/types"
)

// Hints narrows the decryption candidate search. Iterations defaults
// to the canonical 100,000 when zero. KeyLength of zero means unknown,
// in which case candidates are tried largest first: 32, 24, 16.
type Hints struct {
	Iterations int
	KeyLength  int
}

// Encrypt seals plaintext under a key derived from password and a
// fresh random salt, returning the envelope string. A single pass:
// there is no retry on failure. Every intermediate buffer is wiped
// before return on both the success and error paths.
func Encrypt(ctx context.Context, plaintext, password string, params types.CipherParameters) (out string, err error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", types.InvalidArgumentError{Argument: "plaintext", Reason: "must not be empty"}
	}
	if strings.TrimSpace(password) == "" {
		return "", types.InvalidArgumentError{Argument: "password", Reason: "must not be empty"}
	}
	if err = params.Validate(); err != nil {
		return "", err
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	var scratch [][]byte
	defer func() {
		for _, b := range scratch {
			crypto.Wipe(b)
		}
	}()

	var salt, iv []byte
	if salt, err = crypto.RandomBytes(params.SaltLength); err != nil {
		return "", err
	}
	scratch = append(scratch, salt)
	if iv, err = crypto.RandomBytes(params.IVLength); err != nil {
		return "", err
	}
	scratch = append(scratch, iv)

	if err = ctx.Err(); err != nil {
		return "", err
	}

	var key *crypto.DerivedKey
	if key, err = crypto.DeriveKey(password, salt, params.Iterations, params.KeyLength, params.Algorithm); err != nil {
		return "", err
	}
	defer key.Destroy()

	data := []byte(plaintext)
	scratch = append(scratch, data)
	if params.Algorithm == types.AesCbc {
		data = crypto.PadPKCS7(data, types.BlockSize)
		scratch = append(scratch, data)
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	var sealed []byte
	if sealed, err = crypto.Encrypt(key, iv, data); err != nil {
		return "", err
	}
	scratch = append(scratch, sealed)

	env := types.Envelope{Salt: salt, IV: iv, CT: sealed}
	if params.Algorithm == types.AesGcm {
		env.CT = sealed[:len(sealed)-types.TagLength]
		env.Tag = sealed[len(sealed)-types.TagLength:]
	}
	return env.String(), nil
}

// Decrypt parses the envelope, infers the algorithm from its field
// count and walks the ordered key length candidates until one
// succeeds. Every failure past envelope validation collapses into the
// generic DecryptionFailedError so that the error kind cannot be used
// to distinguish a wrong password from corrupted input.
func Decrypt(ctx context.Context, envelope, password string, hints Hints) (out string, err error) {
	if strings.TrimSpace(envelope) == "" {
		return "", types.InvalidArgumentError{Argument: "envelope", Reason: "must not be empty"}
	}
	if strings.TrimSpace(password) == "" {
		return "", types.InvalidArgumentError{Argument: "password", Reason: "must not be empty"}
	}

	var env types.Envelope
	if err = env.UnmarshalText([]byte(envelope)); err != nil {
		return "", err
	}

	algorithm := env.Algorithm()
	if len(env.IV) != algorithm.IVLength() {
		return "", types.InvalidParametersError{
			Reason: fmt.Sprintf("iv length %d does not match %s (requires %d)",
				len(env.IV), algorithm, algorithm.IVLength()),
		}
	}
	if len(env.Salt) < types.SaltLengthMin || len(env.Salt) > types.SaltLengthMax {
		return "", types.InvalidParametersError{
			Reason: fmt.Sprintf("salt length %d outside range %d-%d",
				len(env.Salt), types.SaltLengthMin, types.SaltLengthMax),
		}
	}

	iterations := hints.Iterations
	if iterations == 0 {
		iterations = types.DefaultIterations
	}
	if iterations < types.IterationsMin || iterations > types.IterationsMax {
		return "", types.InvalidParametersError{
			Reason: fmt.Sprintf("iteration count %d outside range %d-%d",
				iterations, types.IterationsMin, types.IterationsMax),
		}
	}

	candidates, err := keyLengthCandidates(hints.KeyLength)
	if err != nil {
		return "", err
	}

	for _, keyLength := range candidates {
		if err = ctx.Err(); err != nil {
			return "", err
		}

		var key *crypto.DerivedKey
		if key, err = crypto.DeriveKey(password, env.Salt, iterations, keyLength, algorithm); err != nil {
			return "", err
		}

		plaintext, ok := attempt(key, env)
		key.Destroy()
		if ok {
			return plaintext, nil
		}
	}
	return "", types.DecryptionFailedError{}
}

// keyLengthCandidates builds the ordered search list: the caller's
// hint first when given, then the remaining lengths largest first.
func keyLengthCandidates(hint int) ([]int, error) {
	if hint == 0 {
		return types.KeyLengthCandidates, nil
	}
	if !types.ValidKeyLength(hint) {
		return nil, types.InvalidArgumentError{
			Argument: "keyLength",
			Reason:   "must be one of 16, 24 or 32",
		}
	}
	candidates := []int{hint}
	for _, n := range types.KeyLengthCandidates {
		if n != hint {
			candidates = append(candidates, n)
		}
	}
	return candidates, nil
}

// attempt runs a single mode specific decryption under one candidate
// key. The boolean result carries no detail about why a candidate was
// rejected.
func attempt(key *crypto.DerivedKey, env types.Envelope) (string, bool) {
	if env.Algorithm() == types.AesGcm {
		sealed := make([]byte, 0, len(env.CT)+len(env.Tag))
		sealed = append(sealed, env.CT...)
		sealed = append(sealed, env.Tag...)
		defer crypto.Wipe(sealed)

		plaintext, err := crypto.Decrypt(key, env.IV, sealed)
		if err != nil {
			return "", false
		}
		defer crypto.Wipe(plaintext)
		return string(plaintext), true
	}

	raw, err := crypto.Decrypt(key, env.IV, env.CT)
	if err != nil {
		return "", false
	}
	defer crypto.Wipe(raw)

	// CBC envelopes are also produced by writers that never pad, so a
	// failed unpad falls back to the raw block as final plaintext.
	// Unpad is attempted first to keep our own round trips
	// deterministic; the fallback can mis-classify an unpadded
	// plaintext whose tail happens to form valid padding, and that is
	// accepted as best effort. Either reading must survive a UTF-8
	// check to count as a success.
	if unpadded, err := crypto.UnpadPKCS7(raw, types.BlockSize); err == nil && utf8.Valid(unpadded) {
		return string(unpadded), true
	}
	if utf8.Valid(raw) {
		return string(raw), true
	}
	return "", false
}
