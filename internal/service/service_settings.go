package service

import (
	"context"
	"fmt"

	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/models"
)

type settingsService struct {
	settings store.SettingsStorage

	logger *logger.Logger
}

func NewSettingsService(settings store.SettingsStorage, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		logger:   logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	return s.settings.LoadSettings(ctx)
}

func (s *settingsService) SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	saved, err := s.settings.SaveSettings(ctx, settings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("error saving settings: %w", err)
	}

	logger.SetDebug(saved.DebugLogging)
	logger.FromContext(ctx).Info().
		Int("refresh_interval", saved.RefreshInterval).
		Bool("debug_logging", saved.DebugLogging).
		Bool("tony_mode", saved.TonyMode).
		Str("selected_device_id", saved.SelectedDeviceID).
		Msg("settings saved")
	return saved, nil
}
