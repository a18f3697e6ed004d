package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
)

// settingsFileStorage is the JSON-file implementation of [SettingsStorage].
type settingsFileStorage struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

// NewSettingsStorage constructs a [SettingsStorage] persisted at path.
func NewSettingsStorage(path string, logger *logger.Logger) SettingsStorage {
	logger.Debug().Str("path", path).Msg("creating settings storage")
	return &settingsFileStorage{
		path:   path,
		logger: logger,
	}
}

// LoadSettings returns the stored settings. Fields missing from the file
// take their default values; out-of-range values are clamped.
func (s *settingsFileStorage) LoadSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := readDocument(s.path)
	if err != nil {
		return models.Settings{}, err
	}

	if !ok {
		log.Info().Str("path", s.path).Msg("no settings found, writing defaults")
		return s.write(models.DefaultSettings())
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("settings file is corrupt, reinitializing with defaults")
		return s.write(models.DefaultSettings())
	}

	return settings.Normalize(), nil
}

func (s *settingsFileStorage) SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.write(settings.Normalize())
	if err != nil {
		return models.Settings{}, err
	}

	logger.FromContext(ctx).Debug().Any("settings", saved).Msg("settings saved")
	return saved, nil
}

func (s *settingsFileStorage) write(settings models.Settings) (models.Settings, error) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return models.Settings{}, fmt.Errorf("error marshalling settings: %w", err)
	}
	if err := writeFileAtomic(s.path, data, privatePerm); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
