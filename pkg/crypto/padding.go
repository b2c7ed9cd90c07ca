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
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
)

var ErrInvalidPadding = errors.New("invalid padding")

// PadPKCS7 pads src to a multiple of size. The pad byte value encodes
// the pad length.
func PadPKCS7(src []byte, size int) []byte {
	// Note that we always pad, even if rem==0. This is because unpad
	// must always remove at least one byte to be unambiguous.
	rem := len(src) % size
	n := size - rem
	if n > math.MaxUint8 {
		panic(fmt.Sprintf("cannot pad over %d bytes, but got %d", math.MaxUint8, n))
	}
	padded := make([]byte, len(src)+n)
	copy(padded, src)
	for i := len(src); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// UnpadPKCS7 removes and validates PKCS#7 padding. Every trailing pad
// byte is inspected without an early exit so the check itself has a
// fixed structure for a given pad length. The length checks above it
// still branch, so this is best effort rather than a strict
// constant-time guarantee; CBC mode here is unauthenticated and the
// envelope format accepts that residual risk.
func UnpadPKCS7(src []byte, size int) ([]byte, error) {
	if len(src) == 0 || len(src)%size != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(src[len(src)-1])
	if n == 0 || n > size || n > len(src) {
		return nil, ErrInvalidPadding
	}
	var bad byte
	for i := len(src) - n; i < len(src); i++ {
		bad |= src[i] ^ byte(n)
	}
	if subtle.ConstantTimeByteEq(bad, 0) != 1 {
		return nil, ErrInvalidPadding
	}
	return src[:len(src)-n], nil
}
