package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/csmblade/PANfm/internal/logger"
)

// LoadOrCreateKey reads the raw key stored at path. When the file does not
// exist a fresh random key is generated and written with 0600 permissions.
// The returned flag reports whether a new key was created.
func LoadOrCreateKey(path string) ([]byte, bool, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, false, fmt.Errorf("%w: key file %s holds %d bytes", ErrInvalidKey, path, len(key))
		}
		return key, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("error reading key file: %w", err)
	}

	key = make([]byte, KeySize)
	if _, err = rand.Read(key); err != nil {
		return nil, false, fmt.Errorf("error generating key: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, false, fmt.Errorf("error creating key directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// another process won the race; use its key
			return LoadOrCreateKey(path)
		}
		return nil, false, fmt.Errorf("error creating key file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(key); err != nil {
		return nil, false, fmt.Errorf("error writing key file: %w", err)
	}
	if err = f.Chmod(0600); err != nil {
		return nil, false, fmt.Errorf("error restricting key file permissions: %w", err)
	}

	return key, true, nil
}

// NewSecretCodecFromFile loads (or creates) the key at path and builds a
// codec from it. Creating a key invalidates any ciphertext written under a
// previous key, so the event is logged at warn level.
func NewSecretCodecFromFile(path string, log *logger.Logger) (SecretCodec, error) {
	key, created, err := LoadOrCreateKey(path)
	if err != nil {
		return nil, err
	}
	if created {
		log.Warn().Str("path", path).Msg("generated new encryption key")
	}

	return NewSecretCodec(key)
}
