package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_ResolvesDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DataDir:      dir,
		DevicesFile:  "devices.json",
		SettingsFile: "settings.json",
		AuthFile:     filepath.Join(dir, "abs-auth.json"),
	}

	storages := NewStorages(cfg, newTestCodec(t), logger.Nop())
	require.NotNil(t, storages.DeviceStorage)
	require.NotNil(t, storages.SettingsStorage)
	require.NotNil(t, storages.AuthStorage)

	assert.Equal(t, filepath.Join(dir, "devices.json"), storages.DeviceStorage.(*deviceFileStorage).path)
	assert.Equal(t, filepath.Join(dir, "abs-auth.json"), storages.AuthStorage.(*authFileStorage).path)

	_, err := storages.DeviceStorage.AddDevice(context.Background(), models.Device{Name: "fw"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "devices.json"))
}
