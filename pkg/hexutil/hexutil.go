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

// Package hexutil is the byte/hex codec for envelope fields. Encoding
// is always lowercase; decoding is strict and rejects anything the
// encoder could not have produced, including uppercase digits.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

type InvalidEncodingError struct {
	Reason string
}

func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid hex encoding: %s", e.Reason)
}

// BytesToHex encodes b as a lowercase hexadecimal string
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a lowercase hexadecimal string. It fails on odd
// length input, on non-hex characters and on uppercase digits.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, InvalidEncodingError{Reason: fmt.Sprintf("odd length %d", len(s))}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		return nil, InvalidEncodingError{Reason: fmt.Sprintf("invalid character %q at offset %d", c, i)}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, InvalidEncodingError{Reason: err.Error()}
	}
	return b, nil
}
