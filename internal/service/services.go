package service

import (
	"github.com/csmblade/PANfm/internal/adapter"
	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

// Services aggregates every service the dashboard API depends on.
type Services struct {
	AppInfoService   AppInfoService
	DeviceService    DeviceService
	SettingsService  SettingsService
	AuthService      AuthService
	DashboardService DashboardService
}

// NewServices wires the services over storages. The firewall client is
// built here so that its call recorder is the APICallStats owned by the
// dashboard service. cfg.App.SessionSignKey must already be resolved.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	clock := utils.RealClock{}
	calls := NewAPICallStats(clock)
	client := adapter.NewPANOSClient(cfg.Firewall, calls, logger)

	return &Services{
		AppInfoService:  appInfoService,
		DeviceService:   NewDeviceValidationService().Wrap(NewDeviceService(storages.DeviceStorage, client, clock, logger)),
		SettingsService: NewSettingsService(storages.SettingsStorage, logger),
		AuthService:     NewAuthValidationService().Wrap(NewAuthService(storages.AuthStorage, storages.SettingsStorage, cfg.App, clock, logger)),
		DashboardService: NewDashboardService(
			storages.DeviceStorage,
			storages.SettingsStorage,
			client,
			NewRateTracker(),
			NewTrendTracker(),
			calls,
			cfg.Firewall,
			clock,
			logger,
		),
	}, nil
}
