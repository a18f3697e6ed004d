package service

import (
	"context"

	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// DeviceService is the device registry. Devices it returns carry the API
// key in its encrypted form.
type DeviceService interface {
	ListDevices(ctx context.Context) ([]models.Device, error)
	ListGroups(ctx context.Context) ([]string, error)
	GetDevice(ctx context.Context, id string) (models.Device, error)
	AddDevice(ctx context.Context, req models.NewDeviceRequest) (models.Device, error)
	UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error)
	DeleteDevice(ctx context.Context, id string) (bool, error)

	// TestDevice tests connectivity of a stored device and stamps its
	// last_seen on success.
	TestDevice(ctx context.Context, id string) (models.ConnectivityResult, error)

	// TestConnectivity tests an address and key that are not stored.
	TestConnectivity(ctx context.Context, req models.ConnectivityTestRequest) (models.ConnectivityResult, error)

	MigrateAPIKeys(ctx context.Context, opts store.MigrationOptions) (store.MigrationReport, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)

	// SaveSettings clamps and overwrites the stored settings and applies
	// the debug_logging flag to the process log level.
	SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type AuthService interface {
	// Verify reports whether creds match the stored account. The error is
	// non-nil only when the account cannot be loaded.
	Verify(ctx context.Context, creds models.Credentials) (bool, error)

	// Login verifies creds and opens a session. Returns [ErrUnauthorized]
	// on any credential mismatch.
	Login(ctx context.Context, creds models.Credentials) (models.SessionToken, models.AuthStatus, error)

	MustChangePassword(ctx context.Context) (bool, error)
	ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error
	Status(ctx context.Context, session models.Session) (models.AuthStatus, error)

	// ParseSession validates a session token and returns its session.
	ParseSession(ctx context.Context, token string) (models.Session, error)

	// Keepalive re-issues the session token with a fresh expiry.
	Keepalive(ctx context.Context, session models.Session) (models.SessionToken, error)
	Logout(ctx context.Context, session models.Session) error

	// ResetAdmin rewrites the account with the default credentials.
	ResetAdmin(ctx context.Context) error
}

// DashboardService is the polling orchestrator behind the dashboard
// endpoints. Each call resolves the active firewall and queries it
// sequentially.
type DashboardService interface {
	Throughput(ctx context.Context) (models.ThroughputSnapshot, error)
	Policies(ctx context.Context) (models.PolicySnapshot, error)
	License(ctx context.Context) (models.LicenseSnapshot, error)
	APIStats(ctx context.Context) models.APIStats
}

// DeviceServiceWrapper defines middleware composition for DeviceService.
// Implementations wrap an existing DeviceService to add behavior such as
// validation.
type DeviceServiceWrapper interface {
	Wrap(DeviceService) DeviceService // returns a decorated DeviceService applying additional behavior
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
