package validators

import (
	"context"
	"strings"

	"github.com/csmblade/PANfm/models"
)

const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
)

// MinPasswordLength is the shortest new password accepted.
const MinPasswordLength = 8

type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validatePasswordChange(change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if change.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if len(change.NewPassword) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if change.NewPassword == change.OldPassword {
				return ErrPasswordUnchanged
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
