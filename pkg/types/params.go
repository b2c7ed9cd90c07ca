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
package types

import (
	"fmt"
	"strings"
)

// Algorithm selects the cipher mode an envelope is sealed under.
//
// Only two modes exist:
//
//	AesCbc - AES in CBC mode, PKCS#7 padded, unauthenticated
//	AesGcm - AES in GCM mode, authenticated with a 16 byte tag
type Algorithm int

const (
	AesCbc Algorithm = iota
	AesGcm
)

// String - convert an Algorithm to its canonical name
func (a Algorithm) String() string {
	switch a {
	case AesCbc:
		return "aes-cbc"
	case AesGcm:
		return "aes-gcm"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// IVLength - the fixed initialization vector length for the algorithm.
// 16 bytes for CBC, 12 for GCM. Not freely adjustable.
func (a Algorithm) IVLength() int {
	if a == AesGcm {
		return IVLengthGCM
	}
	return IVLengthCBC
}

// HasTag - returns true if envelopes for this algorithm carry an
// authentication tag field
func (a Algorithm) HasTag() bool {
	return a == AesGcm
}

// ParseAlgorithm - convert a user supplied name to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "aes-cbc", "cbc":
		return AesCbc, nil
	case "aes-gcm", "gcm":
		return AesGcm, nil
	}
	return 0, InvalidArgumentError{Argument: "algorithm", Reason: fmt.Sprintf("unsupported algorithm %q", name)}
}

// CipherParameters carries every knob a single encryption needs. No
// field is optional; defaults are applied by DefaultParameters before
// construction, never by fallback chains inside the call path.
type CipherParameters struct {
	Algorithm  Algorithm
	SaltLength int
	IVLength   int
	Iterations int
	KeyLength  int
}

// DefaultParameters returns the canonical parameter set for the given
// algorithm: 32 byte salt, 100,000 PBKDF2 iterations, AES-256, and the
// IV length the algorithm fixes.
func DefaultParameters(a Algorithm) CipherParameters {
	return CipherParameters{
		Algorithm:  a,
		SaltLength: DefaultSaltLength,
		IVLength:   a.IVLength(),
		Iterations: DefaultIterations,
		KeyLength:  DefaultKeyLength,
	}
}

// HardenedParameters returns the named alternate profile: AES-256-GCM
// at 310,000 iterations. It is never substituted for the default.
func HardenedParameters() CipherParameters {
	p := DefaultParameters(AesGcm)
	p.Iterations = HardenedIterations
	return p
}

// Validate checks every field against its bound. Each bound is checked
// independently so that a caller sees the first concrete violation
// rather than a generic rejection.
func (p CipherParameters) Validate() error {
	switch p.Algorithm {
	case AesCbc, AesGcm:
	default:
		return InvalidParametersError{Reason: fmt.Sprintf("unsupported algorithm %q", p.Algorithm)}
	}
	if p.SaltLength < SaltLengthMin || p.SaltLength > SaltLengthMax {
		return InvalidParametersError{
			Reason: fmt.Sprintf("salt length %d outside range %d-%d", p.SaltLength, SaltLengthMin, SaltLengthMax),
		}
	}
	if p.IVLength != p.Algorithm.IVLength() {
		return InvalidParametersError{
			Reason: fmt.Sprintf("iv length %d does not match %s (requires %d)", p.IVLength, p.Algorithm, p.Algorithm.IVLength()),
		}
	}
	if p.Iterations < IterationsMin || p.Iterations > IterationsMax {
		return InvalidParametersError{
			Reason: fmt.Sprintf("iteration count %d outside range %d-%d", p.Iterations, IterationsMin, IterationsMax),
		}
	}
	if !ValidKeyLength(p.KeyLength) {
		return InvalidParametersError{
			Reason: fmt.Sprintf("key length %d not one of 16, 24 or 32", p.KeyLength),
		}
	}
	return nil
}

// ValidKeyLength reports whether n is a supported AES key length
func ValidKeyLength(n int) bool {
	switch n {
	case KeyLength128, KeyLength192, KeyLength256:
		return true
	}
	return false
}
