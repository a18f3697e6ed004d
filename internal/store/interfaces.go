// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

// Package store persists the dashboard's documents as whole JSON files:
// the device registry with its encrypted API keys, the settings record and
// the encrypted auth record.
//
// Every write replaces the target atomically (temporary file + rename).
// A per-document mutex serializes read-modify-write cycles inside one
// process; concurrent processes writing the same file are not supported.
package store

import (
	"context"
	"time"

	"github.com/csmblade/PANfm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeviceStorage is the persisted device registry.
//
// API keys are stored as codec ciphertext. Methods taking reveal return the
// plaintext key when reveal is true and the stored ciphertext otherwise.
type DeviceStorage interface {
	// ListDevices returns all devices in insertion order.
	ListDevices(ctx context.Context, reveal bool) ([]models.Device, error)

	// GetDevice returns the device with id or [ErrDeviceNotFound].
	GetDevice(ctx context.Context, id string, reveal bool) (models.Device, error)

	// AddDevice stores device under a freshly generated id and creation time.
	// device.APIKey is plaintext; the returned copy holds the ciphertext.
	AddDevice(ctx context.Context, device models.Device) (models.Device, error)

	// UpdateDevice applies patch to the device with id. Fields absent from
	// the patch, including an empty API key, are preserved as stored.
	UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error)

	// DeleteDevice removes the device with id and reports whether it existed.
	DeleteDevice(ctx context.Context, id string) (bool, error)

	// TouchDevice records that the device answered at seenAt.
	TouchDevice(ctx context.Context, id string, seenAt time.Time) error

	// ListGroups returns the group labels.
	ListGroups(ctx context.Context) ([]string, error)

	// MigrateAPIKeys re-encrypts every API key not in the current wire
	// format and restores legacy field-encrypted metadata. Running it again
	// reports no changes.
	MigrateAPIKeys(ctx context.Context, opts MigrationOptions) (MigrationReport, error)
}

// SettingsStorage persists the single settings record.
type SettingsStorage interface {
	// LoadSettings returns the stored settings, creating the defaults on
	// first read and reinitializing them when the file is corrupt.
	LoadSettings(ctx context.Context) (models.Settings, error)

	// SaveSettings clamps settings and overwrites the stored record.
	SaveSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

// AuthStorage persists the single auth record as an encrypted blob.
type AuthStorage interface {
	// LoadAuth returns the stored record, [ErrAuthNotInitialized] when none
	// exists, or [ErrCorruptDocument] when the blob cannot be opened.
	LoadAuth(ctx context.Context) (models.AuthRecord, error)

	// SaveAuth encrypts and overwrites the stored record.
	SaveAuth(ctx context.Context, record models.AuthRecord) error
}

// IDGenerator produces unique device identifiers.
type IDGenerator interface {
	Generate() string
}

// MigrationOptions tunes [DeviceStorage.MigrateAPIKeys].
type MigrationOptions struct {
	// LegacyBase64 also reverses the plain base64 obfuscation of early
	// releases. Genuine firewall API keys are themselves base64 text, so
	// enable it only for files known to predate encryption.
	LegacyBase64 bool
}

// MigrationReport counts what a migration run touched.
type MigrationReport struct {
	Scanned               int  `json:"scanned"`
	Reencrypted           int  `json:"reencrypted"`
	LegacyDecoded         int  `json:"legacy_decoded"`
	RecordFieldsDecrypted int  `json:"record_fields_decrypted"`
	Corrupt               int  `json:"corrupt"`
	Changed               bool `json:"changed"`
}
