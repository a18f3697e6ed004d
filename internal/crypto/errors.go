package crypto

import "errors"

// Sentinel errors returned by the codec and the key loader.
var (
	// ErrDecodeFailure is returned by DecodeStrict when the input is not
	// ciphertext produced by this codec under the loaded key.
	ErrDecodeFailure = errors.New("secret decode failure")

	// ErrInvalidKey is returned when the key material does not have the
	// expected length.
	ErrInvalidKey = errors.New("invalid encryption key")
)
