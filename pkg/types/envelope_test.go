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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "gibberish",
			input:   "gibberish",
			message: "malformed envelope: expected 3 or 4 fields, got 1",
		},
		{
			name:    "too few fields",
			input:   "aabb:ccdd",
			message: "malformed envelope: expected 3 or 4 fields, got 2",
		},
		{
			name:    "too many fields",
			input:   "aa:bb:cc:dd:ee",
			message: "malformed envelope: expected 3 or 4 fields, got 5",
		},
		{
			name:    "empty salt field",
			input:   ":bb:cc",
			message: "malformed envelope: empty salt field",
		},
		{
			name:    "odd length iv field",
			input:   "aabb:abc:ccdd",
			message: "malformed envelope: iv field: invalid hex encoding: odd length 3",
		},
		{
			name:    "non hex ciphertext field",
			input:   "aabb:ccdd:zzzz",
			message: `malformed envelope: ciphertext field: invalid hex encoding: invalid character 'z' at offset 0`,
		},
		{
			name:    "uppercase hex rejected",
			input:   "AABB:ccdd:eeff",
			message: `malformed envelope: salt field: invalid hex encoding: invalid character 'A' at offset 0`,
		},
		{
			name:    "short tag field",
			input:   "aabb:ccdd:eeff:0011",
			message: "malformed envelope: tag field is 2 bytes, expected 16",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var e Envelope
			err := e.UnmarshalText([]byte(test.input))
			assert.Error(t, err)
			assert.IsType(t, MalformedEnvelopeError{}, err)
			assert.Equal(t, test.message, err.Error())
		})
	}
}

func TestEnvelope_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		envelope  Envelope
		algorithm Algorithm
		fields    int
	}{
		{
			name: "cbc shape",
			envelope: Envelope{
				Salt: bytes.Repeat([]byte{0xaa}, 32),
				IV:   bytes.Repeat([]byte{0xbb}, 16),
				CT:   bytes.Repeat([]byte{0xcc}, 48),
			},
			algorithm: AesCbc,
			fields:    FieldsCBC,
		},
		{
			name: "gcm shape",
			envelope: Envelope{
				Salt: bytes.Repeat([]byte{0x01}, 32),
				IV:   bytes.Repeat([]byte{0x02}, 12),
				CT:   bytes.Repeat([]byte{0x03}, 11),
				Tag:  bytes.Repeat([]byte{0x04}, 16),
			},
			algorithm: AesGcm,
			fields:    FieldsGCM,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			serialized := test.envelope.String()
			assert.Equal(t, test.fields, len(strings.Split(serialized, SEPARATOR)))
			assert.Equal(t, strings.ToLower(serialized), serialized)

			var parsed Envelope
			assert.NoError(t, parsed.UnmarshalText([]byte(serialized)))
			assert.Equal(t, test.envelope, parsed)
			assert.Equal(t, test.algorithm, parsed.Algorithm())
		})
	}
}

func TestEnvelope_IsZero(t *testing.T) {
	var e Envelope
	assert.True(t, e.IsZero())
	assert.Equal(t, "", e.String())

	e.CT = []byte{1}
	assert.False(t, e.IsZero())
}
