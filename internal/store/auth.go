package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
)

// authFileStorage keeps the auth record as codec ciphertext of its JSON
// form. The file is always written with 0600 permissions.
type authFileStorage struct {
	mu     sync.Mutex
	path   string
	codec  crypto.SecretCodec
	logger *logger.Logger
}

// NewAuthStorage constructs an [AuthStorage] persisted at path.
func NewAuthStorage(path string, codec crypto.SecretCodec, logger *logger.Logger) AuthStorage {
	logger.Debug().Str("path", path).Msg("creating auth storage")
	return &authFileStorage{
		path:   path,
		codec:  codec,
		logger: logger,
	}
}

// LoadAuth reads the record. A plaintext JSON record written by an older
// release is accepted and immediately re-saved encrypted.
func (s *authFileStorage) LoadAuth(ctx context.Context) (models.AuthRecord, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := readDocument(s.path)
	if err != nil {
		return models.AuthRecord{}, err
	}
	if !ok {
		return models.AuthRecord{}, ErrAuthNotInitialized
	}

	res := s.codec.Classify(string(data))
	switch res.Kind {
	case crypto.Corrupt:
		return models.AuthRecord{}, fmt.Errorf("%w: %s: %w", ErrCorruptDocument, s.path, res.Err)
	case crypto.LegacyPlaintext:
		var record models.AuthRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return models.AuthRecord{}, fmt.Errorf("%w: %s: not ciphertext nor a plaintext record", ErrCorruptDocument, s.path)
		}
		if record.Username == "" || record.PasswordHash == "" {
			return models.AuthRecord{}, fmt.Errorf("%w: %s: incomplete plaintext record", ErrCorruptDocument, s.path)
		}
		log.Warn().Str("path", s.path).Msg("auth record stored in plaintext, re-saving encrypted")
		if err := s.write(record); err != nil {
			return models.AuthRecord{}, err
		}
		return record, nil
	}

	var record models.AuthRecord
	if err := json.Unmarshal([]byte(res.Value), &record); err != nil {
		return models.AuthRecord{}, fmt.Errorf("%w: %s: %w", ErrCorruptDocument, s.path, err)
	}
	if record.Username == "" || record.PasswordHash == "" {
		return models.AuthRecord{}, fmt.Errorf("%w: %s: incomplete record", ErrCorruptDocument, s.path)
	}
	return record, nil
}

func (s *authFileStorage) SaveAuth(ctx context.Context, record models.AuthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(record)
}

func (s *authFileStorage) write(record models.AuthRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshalling auth record: %w", err)
	}

	sealed, err := s.codec.Encode(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptingSecret, err)
	}
	return writeFileAtomic(s.path, []byte(sealed), privatePerm)
}
