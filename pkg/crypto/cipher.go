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
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/notapipeline/hexseal/pkg/types"
)

var (
	// ErrAuthenticationFailed covers every GCM open failure. Wrong
	// password, wrong key length and corrupted input are deliberately
	// indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// Encrypt runs the cipher transform for the algorithm the key is bound
// to. For CBC the input must already be padded to the block size. For
// GCM the returned slice is ciphertext with the 16 byte authentication
// tag appended; the caller splits the two for envelope storage.
func Encrypt(key *DerivedKey, iv, data []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	switch key.Algorithm() {
	case types.AesGcm:
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, err
		}
		return gcm.Seal(nil, iv, data, nil), nil
	default:
		if len(data) == 0 || len(data)%types.BlockSize != 0 {
			return nil, types.InvalidParametersError{
				Reason: fmt.Sprintf("cbc input of %d bytes is not block aligned", len(data)),
			}
		}
		ct := make([]byte, len(data))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, data)
		return ct, nil
	}
}

// Decrypt inverts Encrypt. For GCM data is ciphertext with the tag
// appended and a tag that fails to verify returns
// ErrAuthenticationFailed. For CBC the decrypted bytes are returned as
// is, padding intact; interpretation of the padding is the
// orchestrator's concern.
func Decrypt(key *DerivedKey, iv, data []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	switch key.Algorithm() {
	case types.AesGcm:
		if len(data) < types.TagLength {
			return nil, ErrAuthenticationFailed
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, err
		}
		pt, err := gcm.Open(nil, iv, data, nil)
		if err != nil {
			return nil, ErrAuthenticationFailed
		}
		return pt, nil
	default:
		if len(data) == 0 || len(data)%types.BlockSize != 0 {
			return nil, ErrInvalidCiphertext
		}
		pt := make([]byte, len(data))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, data)
		return pt, nil
	}
}

// newBlock validates the key and IV pairing and constructs the AES
// block cipher. Violations never reach the primitive.
func newBlock(key *DerivedKey, iv []byte) (cipher.Block, error) {
	if key == nil {
		return nil, ErrKeyDestroyed
	}
	if !types.ValidKeyLength(key.Length()) {
		return nil, types.InvalidParametersError{
			Reason: fmt.Sprintf("key length %d not one of 16, 24 or 32", key.Length()),
		}
	}
	if len(iv) != key.Algorithm().IVLength() {
		return nil, types.InvalidParametersError{
			Reason: fmt.Sprintf("iv length %d does not match %s (requires %d)",
				len(iv), key.Algorithm(), key.Algorithm().IVLength()),
		}
	}

	kb, err := key.open()
	if err != nil {
		return nil, err
	}
	defer kb.Destroy()

	return aes.NewCipher(kb.Bytes())
}
