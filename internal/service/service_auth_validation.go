package service

import (
	"context"
	"fmt"

	"github.com/csmblade/PANfm/internal/validators"
	"github.com/csmblade/PANfm/models"
)

// AuthValidationService rejects empty credentials and weak password
// changes before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Verify(ctx context.Context, creds models.Credentials) (bool, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return false, nil
	}

	return v.inner.Verify(ctx, creds)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.SessionToken, models.AuthStatus, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.SessionToken{}, models.AuthStatus{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) MustChangePassword(ctx context.Context) (bool, error) {
	return v.inner.MustChangePassword(ctx)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, session, change)
}

func (v *AuthValidationService) Status(ctx context.Context, session models.Session) (models.AuthStatus, error) {
	return v.inner.Status(ctx, session)
}

func (v *AuthValidationService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrUnauthorized
	}

	return v.inner.ParseSession(ctx, token)
}

func (v *AuthValidationService) Keepalive(ctx context.Context, session models.Session) (models.SessionToken, error) {
	return v.inner.Keepalive(ctx, session)
}

func (v *AuthValidationService) Logout(ctx context.Context, session models.Session) error {
	return v.inner.Logout(ctx, session)
}

func (v *AuthValidationService) ResetAdmin(ctx context.Context) error {
	return v.inner.ResetAdmin(ctx)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
