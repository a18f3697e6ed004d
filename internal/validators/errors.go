package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidAddress   = errors.New("ip must be a host name or address")
	ErrEmptyAPIKey      = errors.New("api key is required")
	ErrInvalidInterface = errors.New("invalid interface name")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("new password is too short")
	ErrPasswordUnchanged = errors.New("new password must differ from the current one")
)
