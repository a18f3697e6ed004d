package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// In-memory storages
// ─────────────────────────────────────────────

// memAuthStorage keeps the auth record in memory. loadErr, when set, is
// returned by LoadAuth until the next SaveAuth.
type memAuthStorage struct {
	mu      sync.Mutex
	record  *models.AuthRecord
	loadErr error
	saves   int
}

func (m *memAuthStorage) LoadAuth(ctx context.Context) (models.AuthRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return models.AuthRecord{}, m.loadErr
	}
	if m.record == nil {
		return models.AuthRecord{}, store.ErrAuthNotInitialized
	}
	return *m.record, nil
}

func (m *memAuthStorage) SaveAuth(ctx context.Context, record models.AuthRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = &record
	m.loadErr = nil
	m.saves++
	return nil
}

// memSettingsStorage keeps the settings record in memory.
type memSettingsStorage struct {
	mu       sync.Mutex
	settings models.Settings
}

func newMemSettingsStorage() *memSettingsStorage {
	return &memSettingsStorage{settings: models.DefaultSettings()}
}

func (m *memSettingsStorage) LoadSettings(ctx context.Context) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *memSettingsStorage) SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings.Normalize()
	return m.settings, nil
}

func testAppConfig() config.App {
	return config.App{
		SessionSignKey:   "test-sign-key",
		SessionIssuer:    "panfm",
		SessionTimeout:   30 * time.Minute,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *memAuthStorage, *memSettingsStorage) {
	t.Helper()
	auth := &memAuthStorage{}
	settings := newMemSettingsStorage()
	svc := NewAuthService(auth, settings, testAppConfig(), utils.NewManualClock(time.Now()), logger.Nop())
	return svc, auth, settings
}

var defaultCreds = models.Credentials{Username: models.DefaultAdminUsername, Password: models.DefaultAdminPassword}

// ─────────────────────────────────────────────
// Bootstrap and Verify
// ─────────────────────────────────────────────

// TestAuthService_Bootstrap_CreatesDefaultAccount verifies that the first
// access creates admin/admin with a bcrypt hash and must_change_password.
func TestAuthService_Bootstrap_CreatesDefaultAccount(t *testing.T) {
	svc, auth, _ := newTestAuthService(t)

	ok, err := svc.Verify(context.Background(), defaultCreds)

	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, auth.record)
	assert.Equal(t, models.DefaultAdminUsername, auth.record.Username)
	assert.True(t, auth.record.MustChangePassword)
	assert.NotEqual(t, models.DefaultAdminPassword, auth.record.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(auth.record.PasswordHash), []byte(models.DefaultAdminPassword)))
}

// TestAuthService_Bootstrap_CorruptRecord verifies that an unreadable auth
// record is replaced by the default account.
func TestAuthService_Bootstrap_CorruptRecord(t *testing.T) {
	svc, auth, _ := newTestAuthService(t)
	auth.loadErr = store.ErrCorruptDocument

	mustChange, err := svc.MustChangePassword(context.Background())

	require.NoError(t, err)
	assert.True(t, mustChange)
	assert.Equal(t, 1, auth.saves)
}

func TestAuthService_Verify_LoadError(t *testing.T) {
	svc, auth, _ := newTestAuthService(t)
	auth.loadErr = errors.New("permission denied")

	ok, err := svc.Verify(context.Background(), defaultCreds)

	require.Error(t, err)
	assert.False(t, ok)
}

func TestAuthService_Verify_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "wrong username", creds: models.Credentials{Username: "root", Password: models.DefaultAdminPassword}},
		{name: "wrong password", creds: models.Credentials{Username: models.DefaultAdminUsername, Password: "nope"}},
		{name: "empty", creds: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService(t)

			ok, err := svc.Verify(context.Background(), tt.creds)

			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

// TestAuthService_Verify_UnknownUsernameStillHashes verifies that an
// unknown username costs one bcrypt comparison, the same as a wrong
// password, so response time does not reveal the account name.
func TestAuthService_Verify_UnknownUsernameStillHashes(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
		want  bool
	}{
		{name: "unknown username", creds: models.Credentials{Username: "root", Password: models.DefaultAdminPassword}},
		{name: "wrong password", creds: models.Credentials{Username: models.DefaultAdminUsername, Password: "nope"}},
		{name: "match", creds: defaultCreds, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService(t)
			concrete := svc.(*authService)
			var compares int
			concrete.compareHash = func(hash, password []byte) error {
				compares++
				return bcrypt.CompareHashAndPassword(hash, password)
			}

			ok, err := svc.Verify(context.Background(), tt.creds)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, 1, compares)
		})
	}
}

// ─────────────────────────────────────────────
// Login and sessions
// ─────────────────────────────────────────────

// TestAuthService_Login_IssuesParsableSession verifies the login → parse
// round trip and the reported status.
func TestAuthService_Login_IssuesParsableSession(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, status, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatus{Username: "admin", MustChangePassword: true}, status)
	require.NotEmpty(t, token.String())

	session, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.NotEmpty(t, session.ID)
	assert.True(t, session.Expires())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), models.Credentials{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestAuthService_Login_TonyModeNeverExpires verifies that tony_mode issues
// sessions without an expiry.
func TestAuthService_Login_TonyModeNeverExpires(t *testing.T) {
	svc, _, settings := newTestAuthService(t)
	settings.settings.TonyMode = true
	ctx := context.Background()

	token, status, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	assert.True(t, status.TonyMode)
	assert.Nil(t, token.ExpiresAt)

	session, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)
	assert.False(t, session.Expires())
}

func TestAuthService_ParseSession_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ParseSession(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestAuthService_ParseSession_ForeignKey verifies that a token signed with
// another key is rejected.
func TestAuthService_ParseSession_ForeignKey(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	token, err := utils.GenerateSessionToken("panfm", models.Session{ID: "s1", Username: "admin"}, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseSession(context.Background(), token.String())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestAuthService_Logout_RevokesSession verifies that a logged-out token is
// rejected and cannot be kept alive.
func TestAuthService_Logout_RevokesSession(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	session, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session))

	_, err = svc.ParseSession(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrSessionRevoked)

	_, err = svc.Keepalive(ctx, session)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

// TestAuthService_Logout_CoversKeepaliveTokens verifies that a token renewed
// by keepalive stays revoked after logout with the older token, even once
// the older token's own expiry has passed and the list has been purged.
func TestAuthService_Logout_CoversKeepaliveTokens(t *testing.T) {
	clock := utils.NewManualClock(time.Now())
	svc := NewAuthService(&memAuthStorage{}, newMemSettingsStorage(), testAppConfig(), clock, logger.Nop())
	ctx := context.Background()

	first, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	firstSession, err := svc.ParseSession(ctx, first.String())
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	renewed, err := svc.Keepalive(ctx, firstSession)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, firstSession))

	// Past the first token's expiry but inside the renewed one's.
	clock.Advance(25 * time.Minute)
	other, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	otherSession, err := svc.ParseSession(ctx, other.String())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, otherSession))

	_, err = svc.ParseSession(ctx, renewed.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

// TestAuthService_Logout_TonyModeRevokesForever verifies that logging out
// while tony_mode is on keeps the session id revoked past any timeout, since
// keepalive may have issued tokens without an expiry.
func TestAuthService_Logout_TonyModeRevokesForever(t *testing.T) {
	clock := utils.NewManualClock(time.Now())
	settings := newMemSettingsStorage()
	svc := NewAuthService(&memAuthStorage{}, settings, testAppConfig(), clock, logger.Nop())
	ctx := context.Background()

	token, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	session, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)

	settings.settings.TonyMode = true
	unbounded, err := svc.Keepalive(ctx, session)
	require.NoError(t, err)
	require.Nil(t, unbounded.ExpiresAt)

	require.NoError(t, svc.Logout(ctx, session))

	clock.Advance(24 * time.Hour)
	other, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	otherSession, err := svc.ParseSession(ctx, other.String())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, otherSession))

	_, err = svc.ParseSession(ctx, unbounded.String())
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

// TestAuthService_Keepalive_ExtendsExpiry verifies that keepalive keeps the
// session id and moves the expiry forward.
func TestAuthService_Keepalive_ExtendsExpiry(t *testing.T) {
	auth := &memAuthStorage{}
	clock := utils.NewManualClock(time.Now())
	svc := NewAuthService(auth, newMemSettingsStorage(), testAppConfig(), clock, logger.Nop())
	ctx := context.Background()

	token, _, err := svc.Login(ctx, defaultCreds)
	require.NoError(t, err)
	session, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	renewed, err := svc.Keepalive(ctx, session)
	require.NoError(t, err)

	renewedSession, err := svc.ParseSession(ctx, renewed.String())
	require.NoError(t, err)
	assert.Equal(t, session.ID, renewedSession.ID)
	assert.True(t, renewedSession.ExpiresAt.After(session.ExpiresAt))
}

// ─────────────────────────────────────────────
// ChangePassword / Status / ResetAdmin
// ─────────────────────────────────────────────

// TestAuthService_ChangePassword verifies that a change re-hashes, clears
// the must-change flag and invalidates the old password.
func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	session := models.Session{ID: "s1", Username: "admin"}

	err := svc.ChangePassword(ctx, session, models.PasswordChange{OldPassword: "admin", NewPassword: "correct-horse"})
	require.NoError(t, err)

	mustChange, err := svc.MustChangePassword(ctx)
	require.NoError(t, err)
	assert.False(t, mustChange)

	ok, err := svc.Verify(ctx, models.Credentials{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, defaultCreds)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, auth, _ := newTestAuthService(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, models.Session{ID: "s1", Username: "admin"}, models.PasswordChange{OldPassword: "guess", NewPassword: "correct-horse"})

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.True(t, auth.record.MustChangePassword)
}

func TestAuthService_ChangePassword_OtherAccount(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	err := svc.ChangePassword(context.Background(), models.Session{ID: "s1", Username: "mallory"}, models.PasswordChange{OldPassword: "admin", NewPassword: "correct-horse"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_Status(t *testing.T) {
	svc, _, settings := newTestAuthService(t)
	settings.settings.TonyMode = true

	status, err := svc.Status(context.Background(), models.Session{ID: "s1", Username: "admin"})

	require.NoError(t, err)
	assert.Equal(t, models.AuthStatus{Username: "admin", MustChangePassword: true, TonyMode: true}, status)
}

// TestAuthService_ResetAdmin verifies that a reset restores the default
// credentials and forces a password change.
func TestAuthService_ResetAdmin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	session := models.Session{ID: "s1", Username: "admin"}
	require.NoError(t, svc.ChangePassword(ctx, session, models.PasswordChange{OldPassword: "admin", NewPassword: "correct-horse"}))

	require.NoError(t, svc.ResetAdmin(ctx))

	ok, err := svc.Verify(ctx, defaultCreds)
	require.NoError(t, err)
	assert.True(t, ok)

	mustChange, err := svc.MustChangePassword(ctx)
	require.NoError(t, err)
	assert.True(t, mustChange)
}
