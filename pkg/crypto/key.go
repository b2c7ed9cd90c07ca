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
	"errors"

	"github.com/awnumar/memguard"

	"github.com/notapipeline/hexseal/pkg/types"
)

var ErrKeyDestroyed = errors.New("derived key has been destroyed")

// DerivedKey is an opaque handle over derived key material. The raw
// bytes live sealed inside a memguard enclave and are only unsealed by
// the cipher engine in this package for the duration of a single
// transform. The handle is bound to the algorithm it was derived for
// and cannot be exported, shared or persisted.
type DerivedKey struct {
	algorithm types.Algorithm
	length    int
	enclave   *memguard.Enclave
}

// newDerivedKey seals raw into an enclave. memguard wipes the source
// slice as part of NewBufferFromBytes, so the raw key material does
// not outlive this call.
func newDerivedKey(raw []byte, algorithm types.Algorithm) *DerivedKey {
	var (
		length int                    = len(raw)
		buf    *memguard.LockedBuffer = memguard.NewBufferFromBytes(raw)
	)
	return &DerivedKey{
		algorithm: algorithm,
		length:    length,
		enclave:   buf.Seal(),
	}
}

// Algorithm - the cipher mode this key may be used under
func (k *DerivedKey) Algorithm() types.Algorithm {
	return k.algorithm
}

// Length - the key length in bytes
func (k *DerivedKey) Length() int {
	return k.length
}

// Destroy releases the key. Any later use of the handle by the cipher
// engine fails with ErrKeyDestroyed.
func (k *DerivedKey) Destroy() {
	k.enclave = nil
}

// open unseals the key into a locked buffer. The caller must destroy
// the buffer as soon as the transform completes.
func (k *DerivedKey) open() (*memguard.LockedBuffer, error) {
	if k == nil || k.enclave == nil {
		return nil, ErrKeyDestroyed
	}
	return k.enclave.Open()
}
