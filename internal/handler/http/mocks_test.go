package http

import (
	"context"

	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetVersionInfo(_ context.Context) models.VersionInfo {
	return models.VersionInfo{Version: m.version, BuildDate: "N/A", BuildCommit: "N/A"}
}

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	verifyFn             func(ctx context.Context, creds models.Credentials) (bool, error)
	loginFn              func(ctx context.Context, creds models.Credentials) (models.SessionToken, models.AuthStatus, error)
	mustChangePasswordFn func(ctx context.Context) (bool, error)
	changePasswordFn     func(ctx context.Context, session models.Session, change models.PasswordChange) error
	statusFn             func(ctx context.Context, session models.Session) (models.AuthStatus, error)
	parseSessionFn       func(ctx context.Context, token string) (models.Session, error)
	keepaliveFn          func(ctx context.Context, session models.Session) (models.SessionToken, error)
	logoutFn             func(ctx context.Context, session models.Session) error
	resetAdminFn         func(ctx context.Context) error
}

func (m *mockAuthService) Verify(ctx context.Context, creds models.Credentials) (bool, error) {
	return m.verifyFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.SessionToken, models.AuthStatus, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) MustChangePassword(ctx context.Context) (bool, error) {
	return m.mustChangePasswordFn(ctx)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error {
	return m.changePasswordFn(ctx, session, change)
}

func (m *mockAuthService) Status(ctx context.Context, session models.Session) (models.AuthStatus, error) {
	return m.statusFn(ctx, session)
}

func (m *mockAuthService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	return m.parseSessionFn(ctx, token)
}

func (m *mockAuthService) Keepalive(ctx context.Context, session models.Session) (models.SessionToken, error) {
	return m.keepaliveFn(ctx, session)
}

func (m *mockAuthService) Logout(ctx context.Context, session models.Session) error {
	return m.logoutFn(ctx, session)
}

func (m *mockAuthService) ResetAdmin(ctx context.Context) error {
	return m.resetAdminFn(ctx)
}

// mockDeviceService implements service.DeviceService for unit tests.
type mockDeviceService struct {
	listDevicesFn      func(ctx context.Context) ([]models.Device, error)
	listGroupsFn       func(ctx context.Context) ([]string, error)
	getDeviceFn        func(ctx context.Context, id string) (models.Device, error)
	addDeviceFn        func(ctx context.Context, req models.NewDeviceRequest) (models.Device, error)
	updateDeviceFn     func(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error)
	deleteDeviceFn     func(ctx context.Context, id string) (bool, error)
	testDeviceFn       func(ctx context.Context, id string) (models.ConnectivityResult, error)
	testConnectivityFn func(ctx context.Context, req models.ConnectivityTestRequest) (models.ConnectivityResult, error)
	migrateAPIKeysFn   func(ctx context.Context, opts store.MigrationOptions) (store.MigrationReport, error)
}

func (m *mockDeviceService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return m.listDevicesFn(ctx)
}

func (m *mockDeviceService) ListGroups(ctx context.Context) ([]string, error) {
	return m.listGroupsFn(ctx)
}

func (m *mockDeviceService) GetDevice(ctx context.Context, id string) (models.Device, error) {
	return m.getDeviceFn(ctx, id)
}

func (m *mockDeviceService) AddDevice(ctx context.Context, req models.NewDeviceRequest) (models.Device, error) {
	return m.addDeviceFn(ctx, req)
}

func (m *mockDeviceService) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error) {
	return m.updateDeviceFn(ctx, id, patch)
}

func (m *mockDeviceService) DeleteDevice(ctx context.Context, id string) (bool, error) {
	return m.deleteDeviceFn(ctx, id)
}

func (m *mockDeviceService) TestDevice(ctx context.Context, id string) (models.ConnectivityResult, error) {
	return m.testDeviceFn(ctx, id)
}

func (m *mockDeviceService) TestConnectivity(ctx context.Context, req models.ConnectivityTestRequest) (models.ConnectivityResult, error) {
	return m.testConnectivityFn(ctx, req)
}

func (m *mockDeviceService) MigrateAPIKeys(ctx context.Context, opts store.MigrationOptions) (store.MigrationReport, error) {
	return m.migrateAPIKeysFn(ctx, opts)
}

// mockSettingsService implements service.SettingsService for unit tests.
type mockSettingsService struct {
	getSettingsFn  func(ctx context.Context) (models.Settings, error)
	saveSettingsFn func(ctx context.Context, settings models.Settings) (models.Settings, error)
}

func (m *mockSettingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	return m.getSettingsFn(ctx)
}

func (m *mockSettingsService) SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	return m.saveSettingsFn(ctx, settings)
}

// mockDashboardService implements service.DashboardService for unit tests.
type mockDashboardService struct {
	throughputFn func(ctx context.Context) (models.ThroughputSnapshot, error)
	policiesFn   func(ctx context.Context) (models.PolicySnapshot, error)
	licenseFn    func(ctx context.Context) (models.LicenseSnapshot, error)
	apiStatsFn   func(ctx context.Context) models.APIStats
}

func (m *mockDashboardService) Throughput(ctx context.Context) (models.ThroughputSnapshot, error) {
	return m.throughputFn(ctx)
}

func (m *mockDashboardService) Policies(ctx context.Context) (models.PolicySnapshot, error) {
	return m.policiesFn(ctx)
}

func (m *mockDashboardService) License(ctx context.Context) (models.LicenseSnapshot, error) {
	return m.licenseFn(ctx)
}

func (m *mockDashboardService) APIStats(ctx context.Context) models.APIStats {
	return m.apiStatsFn(ctx)
}
