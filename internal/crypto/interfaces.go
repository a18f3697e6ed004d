// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

// Package crypto implements the at-rest secret codec used for firewall API
// keys and the auth record.
//
// Ciphertexts are self-describing: a magic prefix, a random nonce and the
// AES-256-GCM sealed payload, encoded as padded base64url. The single
// symmetric key lives in a dedicated key file that is created with 0600
// permissions on first start.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_codec_mock.go -package=mock

// DecodeKind tags the outcome of [SecretCodec.Classify].
type DecodeKind int

const (
	// Decrypted means the input was codec ciphertext and opened cleanly.
	Decrypted DecodeKind = iota
	// LegacyPlaintext means the input is not in the codec wire format and is
	// assumed to be a value written before encryption was introduced.
	LegacyPlaintext
	// Corrupt means the input has the codec wire format but failed
	// authentication (wrong key or tampered data).
	Corrupt
)

func (k DecodeKind) String() string {
	switch k {
	case Decrypted:
		return "decrypted"
	case LegacyPlaintext:
		return "legacy plaintext"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// DecodeResult is the tagged result of classifying a stored value.
type DecodeResult struct {
	Kind DecodeKind
	// Value is the plaintext for Decrypted and the untouched input otherwise.
	Value string
	// Err carries the underlying failure for Corrupt results.
	Err error
}

// SecretCodec encrypts and decrypts short secrets.
//
// For every string s, Decode(Encode(s)) == s. The empty string encodes to
// the empty string and is never reported as encrypted.
type SecretCodec interface {
	// Encode returns the wire form of plaintext.
	Encode(plaintext string) (string, error)

	// Decode returns the plaintext of value, or value unchanged when it is
	// not decodable. Use it only where legacy plaintext must keep working.
	Decode(value string) string

	// DecodeStrict returns the plaintext of value or an error wrapping
	// [ErrDecodeFailure] when value is not valid codec ciphertext.
	DecodeStrict(value string) (string, error)

	// Classify decodes value and tags the outcome.
	Classify(value string) DecodeResult

	// LooksEncrypted reports whether value structurally matches the wire
	// format. It is a migration heuristic and never a security check.
	LooksEncrypted(value string) bool
}
