package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It owns the single dashboard account stored by AuthStorage and the
// lifecycle of signed session tokens.
//
// Sessions are stateless JWTs; logout records the session id in a
// revocation list held until no token carrying that id can still be valid.
type authService struct {
	// auth is the encrypted account record.
	auth store.AuthStorage

	// settings supplies the tony_mode flag that disables session expiry.
	settings store.SettingsStorage

	// ids generates session identifiers (jti).
	ids store.IDGenerator

	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every session token.
	issuer string

	// timeout is the idle lifetime of a session.
	timeout time.Duration

	// hashCost is the bcrypt cost applied to new password hashes.
	hashCost int

	// compareHash checks a password against a bcrypt hash.
	compareHash func(hash, password []byte) error

	clock utils.Clock

	// mu guards revoked and serializes account writes.
	mu sync.Mutex

	// revoked maps a logged-out session id to the time its entry may be
	// purged. A zero time keeps the entry forever.
	revoked map[string]time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. cfg.SessionSignKey must already
// be resolved by the caller.
func NewAuthService(auth store.AuthStorage, settings store.SettingsStorage, cfg config.App, clock utils.Clock, logger *logger.Logger) AuthService {
	return &authService{
		auth:     auth,
		settings: settings,
		ids:      utils.NewUUIDGenerator(),
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		timeout:  cfg.SessionTimeout,
		hashCost: cfg.PasswordHashCost,
		clock:    clock,
		revoked:  make(map[string]time.Time),
		logger:   logger,

		compareHash: bcrypt.CompareHashAndPassword,
	}
}

func (a *authService) Verify(ctx context.Context, creds models.Credentials) (bool, error) {
	log := logger.FromContext(ctx)

	record, err := a.loadRecord(ctx)
	if err != nil {
		return false, err
	}

	// The hash is checked even for an unknown username so both failures
	// take the same time.
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(record.Username)) == 1
	passOK := a.compareHash([]byte(record.PasswordHash), []byte(creds.Password)) == nil

	switch {
	case !userOK:
		log.Warn().Str("username", creds.Username).Msg("login attempt with unknown username")
		return false, nil
	case !passOK:
		log.Warn().Str("username", creds.Username).Msg("login attempt with wrong password")
		return false, nil
	}
	return true, nil
}

// Login verifies creds and issues a session token.
//
// Returns:
//   - ErrUnauthorized if the username or password does not match.
//   - ErrSessionCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.SessionToken, models.AuthStatus, error) {
	ok, err := a.Verify(ctx, creds)
	if err != nil {
		return models.SessionToken{}, models.AuthStatus{}, err
	}
	if !ok {
		return models.SessionToken{}, models.AuthStatus{}, ErrUnauthorized
	}

	status, err := a.status(ctx)
	if err != nil {
		return models.SessionToken{}, models.AuthStatus{}, err
	}

	session := models.Session{
		ID:        a.ids.Generate(),
		Username:  status.Username,
		ExpiresAt: a.expiry(status.TonyMode),
	}
	token, err := a.issue(session)
	if err != nil {
		return models.SessionToken{}, models.AuthStatus{}, err
	}

	logger.FromContext(ctx).Info().
		Str("username", session.Username).
		Bool("must_change_password", status.MustChangePassword).
		Msg("user logged in")
	return token, status, nil
}

func (a *authService) MustChangePassword(ctx context.Context) (bool, error) {
	record, err := a.loadRecord(ctx)
	if err != nil {
		return false, err
	}
	return record.MustChangePassword, nil
}

// ChangePassword replaces the account password and clears the must-change
// flag. The old hash is discarded.
//
// Returns:
//   - ErrUnauthorized if session does not belong to the stored account.
//   - ErrWrongPassword if change.OldPassword does not match.
func (a *authService) ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	record, err := a.loadRecord(ctx)
	if err != nil {
		return err
	}
	if session.Username != record.Username {
		log.Warn().Str("username", session.Username).Msg("password change for a different account")
		return ErrUnauthorized
	}
	if a.compareHash([]byte(record.PasswordHash), []byte(change.OldPassword)) != nil {
		log.Warn().Str("username", session.Username).Msg("password change with wrong current password")
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), a.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	record.PasswordHash = string(hash)
	record.MustChangePassword = false

	if err = a.auth.SaveAuth(ctx, record); err != nil {
		return fmt.Errorf("error saving auth record: %w", err)
	}

	log.Info().Str("username", record.Username).Msg("password changed")
	return nil
}

func (a *authService) Status(ctx context.Context, session models.Session) (models.AuthStatus, error) {
	status, err := a.status(ctx)
	if err != nil {
		return models.AuthStatus{}, err
	}
	if session.Username != status.Username {
		return models.AuthStatus{}, ErrUnauthorized
	}
	return status, nil
}

// ParseSession validates token and rejects revoked sessions. Every failure
// is reported as ErrUnauthorized.
func (a *authService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(token, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrUnauthorized
	}
	if a.isRevoked(session.ID) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrSessionRevoked)
	}
	return session, nil
}

// Keepalive re-issues the token of session with an expiry counted from now.
// The session id is kept so that a later logout revokes it.
func (a *authService) Keepalive(ctx context.Context, session models.Session) (models.SessionToken, error) {
	if a.isRevoked(session.ID) {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrSessionRevoked)
	}

	settings, err := a.settings.LoadSettings(ctx)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error loading settings: %w", err)
	}

	session.ExpiresAt = a.expiry(settings.TonyMode)
	return a.issue(session)
}

func (a *authService) Logout(ctx context.Context, session models.Session) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.purgeRevoked()
	a.revoked[session.ID] = a.revocationHorizon(ctx, session)

	logger.FromContext(ctx).Info().Str("username", session.Username).Msg("user logged out")
	return nil
}

// ResetAdmin restores the default account and forces a password change on
// the next login.
func (a *authService) ResetAdmin(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.bootstrap(ctx); err != nil {
		return err
	}

	logger.FromContext(ctx).Warn().Str("username", models.DefaultAdminUsername).Msg("account reset to default credentials")
	return nil
}

// loadRecord returns the stored account, creating the default one when no
// record exists or the stored one cannot be opened.
func (a *authService) loadRecord(ctx context.Context) (models.AuthRecord, error) {
	log := logger.FromContext(ctx)

	record, err := a.auth.LoadAuth(ctx)
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, store.ErrAuthNotInitialized):
		log.Info().Msg("no auth record found, creating default account")
		return a.bootstrap(ctx)
	case errors.Is(err, store.ErrCorruptDocument):
		log.Error().Err(err).Msg("auth record is unreadable, resetting to default account")
		return a.bootstrap(ctx)
	default:
		return models.AuthRecord{}, fmt.Errorf("error loading auth record: %w", err)
	}
}

func (a *authService) bootstrap(ctx context.Context) (models.AuthRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultAdminPassword), a.hashCost)
	if err != nil {
		return models.AuthRecord{}, fmt.Errorf("error hashing password: %w", err)
	}

	record := models.AuthRecord{
		Username:           models.DefaultAdminUsername,
		PasswordHash:       string(hash),
		MustChangePassword: true,
	}
	if err = a.auth.SaveAuth(ctx, record); err != nil {
		return models.AuthRecord{}, fmt.Errorf("error saving auth record: %w", err)
	}
	return record, nil
}

func (a *authService) status(ctx context.Context) (models.AuthStatus, error) {
	record, err := a.loadRecord(ctx)
	if err != nil {
		return models.AuthStatus{}, err
	}
	settings, err := a.settings.LoadSettings(ctx)
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("error loading settings: %w", err)
	}

	return models.AuthStatus{
		Username:           record.Username,
		MustChangePassword: record.MustChangePassword,
		TonyMode:           settings.TonyMode,
	}, nil
}

func (a *authService) issue(session models.Session) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(a.issuer, session, a.signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}
	return token, nil
}

// expiry returns the zero time when sessions never expire.
func (a *authService) expiry(tonyMode bool) time.Time {
	if tonyMode || a.timeout <= 0 {
		return time.Time{}
	}
	return a.clock.Now().Add(a.timeout)
}

func (a *authService) isRevoked(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.revoked[id]
	return ok
}

// revocationHorizon returns how long a logged-out session id must stay
// revoked. Keepalive re-issues tokens under the same id, so a sibling token
// may outlive the one presented at logout by up to one session timeout.
// The zero time means forever.
func (a *authService) revocationHorizon(ctx context.Context, session models.Session) time.Time {
	if session.ExpiresAt.IsZero() || a.timeout <= 0 {
		return time.Time{}
	}

	// Tokens minted while tony mode was on carry no expiry.
	settings, err := a.settings.LoadSettings(ctx)
	if err != nil || settings.TonyMode {
		return time.Time{}
	}

	horizon := a.clock.Now().Add(a.timeout)
	if session.ExpiresAt.After(horizon) {
		return session.ExpiresAt
	}
	return horizon
}

// purgeRevoked drops entries past their horizon. Callers hold mu.
func (a *authService) purgeRevoked() {
	now := a.clock.Now()
	for id, expiresAt := range a.revoked {
		if !expiresAt.IsZero() && expiresAt.Before(now) {
			delete(a.revoked, id)
		}
	}
}
