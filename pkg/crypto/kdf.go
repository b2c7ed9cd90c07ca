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
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/notapipeline/hexseal/pkg/types"
)

// DeriveKey derives keyLength bytes of key material from the password
// and salt using PBKDF2 with HMAC-SHA-256, then seals it into an
// opaque DerivedKey bound to the given algorithm. The working copy of
// the password and the intermediate key material are both wiped before
// this function returns.
func DeriveKey(password string, salt []byte, iterations, keyLength int, algorithm types.Algorithm) (*DerivedKey, error) {
	if password == "" {
		return nil, types.InvalidArgumentError{
			Argument: "password",
			Reason:   "must not be empty",
		}
	}
	if iterations <= 0 {
		return nil, types.InvalidArgumentError{
			Argument: "iterations",
			Reason:   "must be a positive integer",
		}
	}
	if !types.ValidKeyLength(keyLength) {
		return nil, types.InvalidArgumentError{
			Argument: "keyLength",
			Reason:   "must be one of 16, 24 or 32",
		}
	}

	pw := []byte(password)
	defer Wipe(pw)

	// newDerivedKey wipes the raw material while sealing it
	return newDerivedKey(pbkdf2.Key(pw, salt, iterations, keyLength, sha256.New), algorithm), nil
}
