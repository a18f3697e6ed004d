package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized covers every authentication failure. Callers never
	// learn whether the username or the password was wrong.
	ErrUnauthorized  = errors.New("unauthorized")
	ErrWrongPassword = errors.New("invalid current password")

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrSessionRevoked        = errors.New("session revoked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoDeviceConfigured is returned by dashboard polls when neither a
	// selected device, a legacy firewall address nor any enabled device is
	// available.
	ErrNoDeviceConfigured = errors.New("no firewall device configured")

	// ErrFirewallQueryFailed wraps the adapter error of a poll whose only
	// query failed.
	ErrFirewallQueryFailed = errors.New("firewall query failed")
)
