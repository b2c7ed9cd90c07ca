/*
Package seal exposes the two public entry points of the engine:
Encrypt, which turns a plaintext and a password into a self describing
colon delimited hex envelope, and Decrypt, which inverts it given only
the password.

Neither operation shares state with any other call. Each invocation
allocates its own salt, IV, key handle and scratch buffers, so
concurrent calls need no locking. Both operations accept a context and
observe cancellation between their discrete steps: random generation,
key derivation and the cipher transform. Key derivation dominates the
cost at six figure PBKDF2 iteration counts, so callers driving an
interactive surface should run these off that surface and abandon the
call to cancel.

Decrypt does not retry. The walk over candidate key lengths is
parameter discovery for envelopes sealed with a non default key size,
not retry after failure of a fixed operation.
*/
package seal
