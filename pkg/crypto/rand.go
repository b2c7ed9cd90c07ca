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
	cryptorand "crypto/rand"

	"github.com/notapipeline/hexseal/pkg/types"
)

// Referenced as a variable to enable it to be mocked in tests
var randRead func(b []byte) (int, error) = cryptorand.Read

// RandomBytes returns length bytes drawn from the platform secure
// random generator. It has no side effects beyond the returned buffer.
func RandomBytes(length int) ([]byte, error) {
	if length <= 0 {
		return nil, types.InvalidArgumentError{
			Argument: "length",
			Reason:   "must be a positive integer",
		}
	}
	b := make([]byte, length)
	if _, err := randRead(b); err != nil {
		return nil, types.ProviderUnavailableError{Err: err}
	}
	return b, nil
}
