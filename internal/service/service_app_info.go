package service

import (
	"context"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetVersionInfo reports the configured version together with the build
// metadata embedded at link time. Missing build fields read "N/A".
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		Version:     s.appVersion,
		BuildDate:   orNotAvailable(s.build.BuildDate()),
		BuildCommit: orNotAvailable(s.build.BuildCommit()),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
