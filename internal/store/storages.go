package store

import (
	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/utils"
)

// Storages aggregates every persisted document the dashboard owns.
type Storages struct {
	DeviceStorage   DeviceStorage
	SettingsStorage SettingsStorage
	AuthStorage     AuthStorage
}

// NewStorages builds the file-backed storages from cfg. Relative file names
// are resolved against the configured data directory.
func NewStorages(cfg config.Storage, codec crypto.SecretCodec, logger *logger.Logger) *Storages {
	return &Storages{
		DeviceStorage:   NewDeviceStorage(cfg.Path(cfg.DevicesFile), codec, utils.NewUUIDGenerator(), logger),
		SettingsStorage: NewSettingsStorage(cfg.Path(cfg.SettingsFile), logger),
		AuthStorage:     NewAuthStorage(cfg.Path(cfg.AuthFile), codec, logger),
	}
}
