package crypto

import "github.com/awnumar/memguard"

// Wipe zero fills every buffer it is given. Used on all intermediate
// plaintext, padded and ciphertext buffers on every exit path.
func Wipe(buffers ...[]byte) {
	for _, b := range buffers {
		if len(b) > 0 {
			memguard.WipeBytes(b)
		}
	}
}
