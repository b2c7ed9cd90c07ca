/*
Package crypto provides the cryptographic primitives for sealing and
unsealing hexseal envelopes: a secure random source, PBKDF2-HMAC-SHA256
key derivation, PKCS#7 block padding, and an AES cipher engine running
in CBC or GCM mode.

The provided functions are designed to be key secure and to avoid
leaking key material in memory. Key derivation never returns raw key
bytes: DeriveKey seals the derived material into a memguard enclave
behind an opaque DerivedKey handle, wiping the intermediate buffer in
the process. Only the cipher engine in this package can open the
handle, and each open is paired with an immediate destroy of the
unsealed buffer once the transform completes.

Callers handling plaintext or ciphertext buffers of their own are
expected to wipe them with Wipe once finished. The orchestrators in
package seal do this on every exit path.

	key, err := crypto.DeriveKey(password, salt, 100000, 32, types.AesCbc)
	if err != nil {
		panic(err)
	}
	defer key.Destroy()

	ct, err := crypto.Encrypt(key, iv, crypto.PadPKCS7(data, types.BlockSize))
*/
package crypto
