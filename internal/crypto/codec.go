package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeySize is the length of the symmetric key in bytes (AES-256).
const KeySize = 32

const (
	nonceSize = 12
	tagSize   = 16
)

// wireMagic prefixes every sealed blob. It is also bound as additional
// authenticated data so a blob cannot be re-labelled.
var wireMagic = []byte("PFM\x01")

// minBlobSize is the shortest decodable blob: magic, nonce and GCM tag.
var minBlobSize = len(wireMagic) + nonceSize + tagSize

// MinWireLength is the length of the shortest valid encoded value.
var MinWireLength = base64.URLEncoding.EncodedLen(minBlobSize)

var wireEncoding = base64.URLEncoding

type aesCodec struct {
	aead cipher.AEAD
}

// NewSecretCodec builds a [SecretCodec] from a raw 32-byte key.
func NewSecretCodec(key []byte) (SecretCodec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return &aesCodec{aead: aead}, nil
}

func (c *aesCodec) Encode(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	blob := make([]byte, 0, minBlobSize+len(plaintext))
	blob = append(blob, wireMagic...)
	blob = append(blob, nonce...)
	blob = c.aead.Seal(blob, nonce, []byte(plaintext), wireMagic)

	return wireEncoding.EncodeToString(blob), nil
}

func (c *aesCodec) Decode(value string) string {
	res := c.Classify(value)
	if res.Kind == Decrypted {
		return res.Value
	}
	return value
}

func (c *aesCodec) DecodeStrict(value string) (string, error) {
	res := c.Classify(value)
	switch res.Kind {
	case Decrypted:
		return res.Value, nil
	case Corrupt:
		return "", fmt.Errorf("%w: %w", ErrDecodeFailure, res.Err)
	default:
		return "", fmt.Errorf("%w: %s", ErrDecodeFailure, res.Kind)
	}
}

func (c *aesCodec) Classify(value string) DecodeResult {
	if value == "" {
		return DecodeResult{Kind: Decrypted}
	}

	blob, ok := parseWire(value)
	if !ok {
		return DecodeResult{Kind: LegacyPlaintext, Value: value}
	}

	nonce := blob[len(wireMagic) : len(wireMagic)+nonceSize]
	sealed := blob[len(wireMagic)+nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, wireMagic)
	if err != nil {
		return DecodeResult{Kind: Corrupt, Value: value, Err: err}
	}

	return DecodeResult{Kind: Decrypted, Value: string(plaintext)}
}

func (c *aesCodec) LooksEncrypted(value string) bool {
	_, ok := parseWire(value)
	return ok
}

// parseWire decodes value and checks the blob layout without opening it.
func parseWire(value string) ([]byte, bool) {
	if len(value) < MinWireLength {
		return nil, false
	}

	blob, err := wireEncoding.DecodeString(value)
	if err != nil {
		return nil, false
	}
	if len(blob) < minBlobSize || !bytes.HasPrefix(blob, wireMagic) {
		return nil, false
	}

	return blob, true
}
