package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeviceNotFound is returned when a device id does not match any
	// stored device.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrCorruptDocument is returned when a persisted document cannot be
	// parsed. Settings and auth callers reinitialize on it; the devices
	// document is never reset automatically.
	ErrCorruptDocument = errors.New("persisted document is corrupt")

	// ErrAuthNotInitialized is returned when no auth record has been
	// written yet.
	ErrAuthNotInitialized = errors.New("auth record not initialized")
)

// Low-level file operation errors. These are wrapped around the underlying
// os error before any document logic is applied.
var (
	// ErrReadingFile is returned when a persisted file exists but cannot be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrWritingFile is returned when the temporary file cannot be written,
	// synced or renamed over the target.
	ErrWritingFile = errors.New("error writing file")

	// ErrEncryptingSecret is returned when the codec fails to seal a value.
	ErrEncryptingSecret = errors.New("error encrypting secret")
)
