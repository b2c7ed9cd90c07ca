package types

import "fmt"

type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

type InvalidParametersError struct {
	Reason string
}

func (e InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid cipher parameters: %s", e.Reason)
}

type MalformedEnvelopeError struct {
	Reason string
}

func (e MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed envelope: %s", e.Reason)
}

// DecryptionFailedError is deliberately opaque. Wrong password, wrong
// key length, tampered ciphertext and tampered tag all collapse into
// this one kind so that callers cannot be used as a decryption oracle.
type DecryptionFailedError struct{}

func (e DecryptionFailedError) Error() string {
	return "decryption failed"
}

type ProviderUnavailableError struct {
	Err error
}

func (e ProviderUnavailableError) Error() string {
	return fmt.Sprintf("secure random source unavailable: %v", e.Err)
}

func (e ProviderUnavailableError) Unwrap() error {
	return e.Err
}
