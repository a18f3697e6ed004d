package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing persisted file name.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid session or account settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFirewallConfigs indicates invalid firewall client settings
	// (for example, a zero timeout).
	ErrInvalidFirewallConfigs = errors.New("invalid firewall configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
