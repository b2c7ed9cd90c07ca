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

const (
	// SEPARATOR joins the hex fields of a serialized envelope
	SEPARATOR = ":"

	// Field counts for the two envelope shapes. The count is load
	// bearing: no algorithm tag travels inside the envelope, so the
	// decoder infers AES-CBC from 3 fields and AES-GCM from 4.
	FieldsCBC = 3
	FieldsGCM = 4

	// BlockSize is the AES block size in bytes
	BlockSize = 16

	// IVLengthCBC and IVLengthGCM are fixed per algorithm and are not
	// freely adjustable
	IVLengthCBC = 16
	IVLengthGCM = 12

	// TagLength is the GCM authentication tag length
	TagLength = 16

	SaltLengthMin     = 16
	SaltLengthMax     = 64
	DefaultSaltLength = 32

	IterationsMin = 10000
	IterationsMax = 1000000

	// DefaultIterations is the canonical PBKDF2 round count.
	// HardenedIterations belongs to the named "hardened" profile and is
	// only ever selected explicitly, never substituted.
	DefaultIterations  = 100000
	HardenedIterations = 310000

	KeyLength128 = 16
	KeyLength192 = 24
	KeyLength256 = 32

	DefaultKeyLength = KeyLength256
)

// KeyLengthCandidates is the ordered candidate set the decryption
// orchestrator walks when the caller supplies no key length hint.
var KeyLengthCandidates = []int{KeyLength256, KeyLength192, KeyLength128}
