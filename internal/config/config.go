// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dashboard. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and account settings plus the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the persisted documents and key file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Firewall holds the outbound firewall API client settings.
	Firewall Firewall `envPrefix:"FIREWALL_"`

	// Workers holds configuration for the optional background poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level values that control sessions and the
// stored dashboard account.
type App struct {
	// Version is the version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SessionSignKey signs session tokens with HMAC-SHA256. When empty it is
	// derived from the encryption key, so sessions survive restarts.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of session tokens.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionTimeout is the idle lifetime of a session. Ignored while the
	// tony_mode setting is on.
	// Env: APP_SESSION_TIMEOUT
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT"`

	// PasswordHashCost is the bcrypt cost used for the account password.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Storage holds the paths of the files the dashboard persists. Relative
// file names are resolved against DataDir.
type Storage struct {
	// DataDir is the directory holding all persisted files.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DevicesFile is the devices document ({devices, groups}).
	// Env: STORAGE_DEVICES_FILE
	DevicesFile string `env:"DEVICES_FILE"`

	// SettingsFile is the flat settings document.
	// Env: STORAGE_SETTINGS_FILE
	SettingsFile string `env:"SETTINGS_FILE"`

	// AuthFile is the encrypted auth record.
	// Env: STORAGE_AUTH_FILE
	AuthFile string `env:"AUTH_FILE"`

	// KeyFile holds the raw symmetric key (0600).
	// Env: STORAGE_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
}

// Path resolves name against DataDir unless it is already absolute.
func (s Storage) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || s.DataDir == "" {
		return name
	}
	return filepath.Join(s.DataDir, name)
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the dashboard listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks the session cookie Secure (HTTPS deployments).
	// Env: SERVER_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Firewall holds settings for the outbound firewall management API client.
type Firewall struct {
	// RequestTimeout bounds each firewall query.
	// Env: FIREWALL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConnectTimeout bounds a connectivity test.
	// Env: FIREWALL_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// VerifyTLS enables certificate verification. Firewalls usually serve
	// self-signed certificates, so it is off by default.
	// Env: FIREWALL_VERIFY_TLS
	VerifyTLS bool `env:"VERIFY_TLS"`

	// LegacyAddress and LegacyAPIKey describe the single firewall polled
	// when no device is selected in the settings.
	// Env: FIREWALL_ADDRESS, FIREWALL_API_KEY
	LegacyAddress string `env:"ADDRESS"`
	LegacyAPIKey  string `env:"API_KEY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval makes a worker poll the selected firewall on a fixed
	// cadence. Zero disables it and polls happen only on request.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// defaultConfig holds the values used for every field left zero by all
// configuration sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          "1.0.3",
			SessionIssuer:    "panfm",
			SessionTimeout:   30 * time.Minute,
			PasswordHashCost: 12,
		},
		Storage: Storage{
			DataDir:      ".",
			DevicesFile:  "devices.json",
			SettingsFile: "settings.json",
			AuthFile:     "auth.json",
			KeyFile:      "encryption.key",
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:3000",
			RequestTimeout: 60 * time.Second,
		},
		Firewall: Firewall{
			RequestTimeout: 10 * time.Second,
			ConnectTimeout: 5 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//
// Fields still zero afterwards take their defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile("").
		build()
}

// GetToolConfig loads configuration for the maintenance commands, which
// parse their own flags: environment variables plus an optional file.
func GetToolConfig(filePath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile(filePath).
		build()
}
