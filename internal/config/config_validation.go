// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DevicesFile == "" || cfg.Storage.SettingsFile == "" ||
		cfg.Storage.AuthFile == "" || cfg.Storage.KeyFile == "" {
		return fmt.Errorf("%w: every storage file must be named", ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionTimeout <= 0 {
		return fmt.Errorf("%w: session timeout must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.Firewall.RequestTimeout <= 0 || cfg.Firewall.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidFirewallConfigs)
	}

	if cfg.Workers.PollInterval < 0 {
		return fmt.Errorf("%w: negative poll interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
