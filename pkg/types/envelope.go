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

	"github.com/notapipeline/hexseal/pkg/hexutil"
)

// Envelope is the serialized output of an encryption. This is the
// structure that holds that encrypted data.
//
// The format is:
//
//	<salt>:<iv>:<ct>[:<tag>]
//
// Where:
//
//	<salt> is the KDF salt - lowercase hex - decoded length 16-64 bytes
//	<iv>   is the initialization vector - lowercase hex - decoded
//	       length is 16 bytes (CBC) or 12 bytes (GCM)
//	<ct>   is the ciphertext - lowercase hex - decoded length arbitrary
//	<tag>  is the GCM authentication tag - lowercase hex - decoded
//	       length is exactly 16 bytes. Present only for GCM.
//
// No algorithm identifier travels in the envelope. Decoders infer the
// algorithm from the field count alone: 3 fields means CBC, 4 means
// GCM. That inference is load bearing for interoperability.
type Envelope struct {
	Salt, IV, CT, Tag []byte
}

// IsZero - returns true if the Envelope is empty
func (e Envelope) IsZero() bool {
	return e.Salt == nil && e.IV == nil && e.CT == nil && e.Tag == nil
}

// Algorithm - the structurally inferred algorithm of this envelope
func (e Envelope) Algorithm() Algorithm {
	if e.Tag != nil {
		return AesGcm
	}
	return AesCbc
}

// String - serialize the envelope to its wire form
func (e Envelope) String() string {
	if e.IsZero() {
		return ""
	}
	fields := []string{
		hexutil.BytesToHex(e.Salt),
		hexutil.BytesToHex(e.IV),
		hexutil.BytesToHex(e.CT),
	}
	if e.Tag != nil {
		fields = append(fields, hexutil.BytesToHex(e.Tag))
	}
	return strings.Join(fields, SEPARATOR)
}

// MarshalText - convert an Envelope to a byte slice
func (e Envelope) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText - parse the wire form of an envelope.
//
// Validation here is purely structural: field count, lowercase hex,
// even length, no empty fields, and the fixed tag length for 4 field
// input. Whether salt and IV lengths match the parameters of the
// inferred algorithm is for the orchestrator to decide.
func (e *Envelope) UnmarshalText(data []byte) error {
	var (
		err    error
		fields []string = strings.Split(string(data), SEPARATOR)
	)

	if len(fields) != FieldsCBC && len(fields) != FieldsGCM {
		return MalformedEnvelopeError{
			Reason: fmt.Sprintf("expected %d or %d fields, got %d", FieldsCBC, FieldsGCM, len(fields)),
		}
	}

	names := []string{"salt", "iv", "ciphertext", "tag"}
	decoded := make([][]byte, len(fields))
	for i, f := range fields {
		if f == "" {
			return MalformedEnvelopeError{Reason: fmt.Sprintf("empty %s field", names[i])}
		}
		if decoded[i], err = hexutil.HexToBytes(f); err != nil {
			return MalformedEnvelopeError{Reason: fmt.Sprintf("%s field: %v", names[i], err)}
		}
	}

	if len(fields) == FieldsGCM && len(decoded[3]) != TagLength {
		return MalformedEnvelopeError{
			Reason: fmt.Sprintf("tag field is %d bytes, expected %d", len(decoded[3]), TagLength),
		}
	}

	e.Salt, e.IV, e.CT = decoded[0], decoded[1], decoded[2]
	e.Tag = nil
	if len(fields) == FieldsGCM {
		e.Tag = decoded[3]
	}
	return nil
}
