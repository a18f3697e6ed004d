package service

import (
	"context"
	"errors"
	"testing"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.3"}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetVersionInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetVersionInfo_IncludesBuildMetadata(t *testing.T) {
	build := models.NewAppBuildInfo("v1.0.3", "2026-10-01", "abc1234")
	svc, err := NewAppInfoService(config.App{Version: "1.0.3"}, build, logger.Nop())
	require.NoError(t, err)

	info := svc.GetVersionInfo(context.Background())

	assert.Equal(t, models.VersionInfo{Version: "1.0.3", BuildDate: "2026-10-01", BuildCommit: "abc1234"}, info)
}

func TestGetVersionInfo_MissingBuildMetadata(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.3"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	info := svc.GetVersionInfo(context.Background())

	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
}
