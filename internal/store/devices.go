// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/models"
)

// deviceFileStorage is the JSON-file implementation of [DeviceStorage].
//
// Only the api_key field is encrypted; every other field stays plaintext so
// the document remains readable. mu serializes each load-modify-save cycle.
type deviceFileStorage struct {
	mu     sync.Mutex
	path   string
	codec  crypto.SecretCodec
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewDeviceStorage constructs a [DeviceStorage] persisted at path.
func NewDeviceStorage(path string, codec crypto.SecretCodec, ids IDGenerator, logger *logger.Logger) DeviceStorage {
	logger.Debug().Str("path", path).Msg("creating device storage")
	return &deviceFileStorage{
		path:   path,
		codec:  codec,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (s *deviceFileStorage) ListDevices(ctx context.Context, reveal bool) ([]models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	devices := make([]models.Device, 0, len(doc.Devices))
	for _, d := range doc.Devices {
		if reveal {
			d = s.reveal(ctx, d)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (s *deviceFileStorage) GetDevice(ctx context.Context, id string, reveal bool) (models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.Device{}, err
	}

	idx := indexOf(doc.Devices, id)
	if idx < 0 {
		return models.Device{}, ErrDeviceNotFound
	}

	d := doc.Devices[idx]
	if reveal {
		d = s.reveal(ctx, d)
	}
	return d, nil
}

func (s *deviceFileStorage) AddDevice(ctx context.Context, device models.Device) (models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.Device{}, err
	}

	device.ID = s.ids.Generate()
	for indexOf(doc.Devices, device.ID) >= 0 {
		device.ID = s.ids.Generate()
	}
	device.AddedDate = models.NewTimestamp(s.now())
	device.LastSeen = nil

	device.APIKey, err = s.codec.Encode(device.APIKey)
	if err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrEncryptingSecret, err)
	}

	doc.Devices = append(doc.Devices, device)
	if err := s.save(doc); err != nil {
		return models.Device{}, err
	}

	logger.FromContext(ctx).Info().Str("device_id", device.ID).Str("name", device.Name).Msg("device added")
	return device, nil
}

func (s *deviceFileStorage) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.Device{}, err
	}

	idx := indexOf(doc.Devices, id)
	if idx < 0 {
		return models.Device{}, ErrDeviceNotFound
	}

	if patch.HasNewAPIKey() {
		sealed, err := s.codec.Encode(*patch.APIKey)
		if err != nil {
			return models.Device{}, fmt.Errorf("%w: %w", ErrEncryptingSecret, err)
		}
		patch.APIKey = &sealed
	}

	updated := patch.Apply(doc.Devices[idx])
	updated.ID = id
	doc.Devices[idx] = updated

	if err := s.save(doc); err != nil {
		return models.Device{}, err
	}
	return updated, nil
}

func (s *deviceFileStorage) DeleteDevice(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	idx := indexOf(doc.Devices, id)
	if idx < 0 {
		return false, nil
	}

	doc.Devices = slices.Delete(doc.Devices, idx, idx+1)
	if err := s.save(doc); err != nil {
		return false, err
	}

	logger.FromContext(ctx).Info().Str("device_id", id).Msg("device deleted")
	return true, nil
}

func (s *deviceFileStorage) TouchDevice(ctx context.Context, id string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	idx := indexOf(doc.Devices, id)
	if idx < 0 {
		return ErrDeviceNotFound
	}

	ts := models.NewTimestamp(seenAt)
	doc.Devices[idx].LastSeen = &ts
	return s.save(doc)
}

func (s *deviceFileStorage) ListGroups(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Groups), nil
}

func (s *deviceFileStorage) MigrateAPIKeys(ctx context.Context, opts MigrationOptions) (MigrationReport, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return MigrationReport{}, err
	}

	var report MigrationReport
	for i := range doc.Devices {
		d := &doc.Devices[i]
		report.Scanned++

		for _, field := range []*string{&d.Name, &d.Address, &d.Group, &d.Description, &d.MonitoredInterface, &d.WANInterface} {
			if !s.codec.LooksEncrypted(*field) {
				continue
			}
			if res := s.codec.Classify(*field); res.Kind == crypto.Decrypted {
				*field = res.Value
				report.RecordFieldsDecrypted++
				report.Changed = true
			}
		}

		if d.APIKey == "" {
			continue
		}

		res := s.codec.Classify(d.APIKey)
		switch res.Kind {
		case crypto.Decrypted:
			continue
		case crypto.Corrupt:
			report.Corrupt++
			log.Error().Err(res.Err).Str("device_id", d.ID).Msg("api key cannot be decrypted with the current key, left as is")
			continue
		}

		plain := d.APIKey
		if opts.LegacyBase64 {
			if decoded, ok := crypto.DecodeLegacyBase64(plain); ok {
				plain = decoded
				report.LegacyDecoded++
			}
		}

		sealed, err := s.codec.Encode(plain)
		if err != nil {
			return MigrationReport{}, fmt.Errorf("%w: %w", ErrEncryptingSecret, err)
		}
		d.APIKey = sealed
		report.Reencrypted++
		report.Changed = true
		log.Info().Str("device_id", d.ID).Str("name", d.Name).Msg("api key migrated to current encryption format")
	}

	if !report.Changed {
		return report, nil
	}
	if err := s.save(doc); err != nil {
		return MigrationReport{}, err
	}
	return report, nil
}

// load reads the devices document. A missing or empty file yields the
// default document. An unparsable file is reported, never reset.
func (s *deviceFileStorage) load() (models.DevicesDocument, error) {
	data, ok, err := readDocument(s.path)
	if err != nil {
		return models.DevicesDocument{}, err
	}
	if !ok {
		return defaultDevicesDocument(), nil
	}

	var doc models.DevicesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.DevicesDocument{}, fmt.Errorf("%w: %s: %w", ErrCorruptDocument, s.path, err)
	}
	if doc.Devices == nil {
		doc.Devices = []models.Device{}
	}
	if doc.Groups == nil {
		doc.Groups = slices.Clone(models.DefaultDeviceGroups)
	}
	return doc, nil
}

// save rewrites the document. Stored API keys are written back verbatim;
// keys left in plaintext by an older release are sealed only by
// MigrateAPIKeys, which alone knows whether they are base64-obfuscated.
func (s *deviceFileStorage) save(doc models.DevicesDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling devices: %w", err)
	}
	return writeFileAtomic(s.path, data, privatePerm)
}

// reveal replaces the stored API key with its plaintext. A key that fails
// authentication is blanked so ciphertext never reaches a firewall call.
func (s *deviceFileStorage) reveal(ctx context.Context, d models.Device) models.Device {
	res := s.codec.Classify(d.APIKey)
	switch res.Kind {
	case crypto.Decrypted:
		d.APIKey = res.Value
	case crypto.LegacyPlaintext:
		logger.FromContext(ctx).Warn().Str("device_id", d.ID).Msg("api key stored in plaintext, run the key migration")
	case crypto.Corrupt:
		logger.FromContext(ctx).Error().Err(res.Err).Str("device_id", d.ID).Msg("api key cannot be decrypted")
		d.APIKey = ""
	}
	return d
}

func defaultDevicesDocument() models.DevicesDocument {
	return models.DevicesDocument{
		Devices: []models.Device{},
		Groups:  slices.Clone(models.DefaultDeviceGroups),
	}
}

func indexOf(devices []models.Device, id string) int {
	return slices.IndexFunc(devices, func(d models.Device) bool { return d.ID == id })
}
