// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/csmblade/PANfm/internal/adapter"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

// deviceService is the concrete implementation of DeviceService.
// Persistence and API key encryption belong to the DeviceStorage; this
// layer applies creation defaults, normalises input and runs connectivity
// tests through the FirewallClient.
type deviceService struct {
	devices store.DeviceStorage
	client  adapter.FirewallClient
	clock   utils.Clock

	logger *logger.Logger
}

// NewDeviceService constructs a DeviceService. Input is expected to be
// validated by a wrapping DeviceValidationService.
func NewDeviceService(devices store.DeviceStorage, client adapter.FirewallClient, clock utils.Clock, logger *logger.Logger) DeviceService {
	return &deviceService{
		devices: devices,
		client:  client,
		clock:   clock,
		logger:  logger,
	}
}

func (s *deviceService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return s.devices.ListDevices(ctx, false)
}

func (s *deviceService) ListGroups(ctx context.Context) ([]string, error) {
	return s.devices.ListGroups(ctx)
}

func (s *deviceService) GetDevice(ctx context.Context, id string) (models.Device, error) {
	return s.devices.GetDevice(ctx, id, false)
}

// AddDevice stores a new enabled device. Group and monitored interface
// default to [models.DefaultDeviceGroup] and [models.DefaultMonitoredInterface].
func (s *deviceService) AddDevice(ctx context.Context, req models.NewDeviceRequest) (models.Device, error) {
	device := models.Device{
		Name:               strings.TrimSpace(req.Name),
		Address:            strings.TrimSpace(req.Address),
		APIKey:             strings.TrimSpace(req.APIKey),
		Enabled:            true,
		Group:              strings.TrimSpace(req.Group),
		Description:        req.Description,
		MonitoredInterface: strings.TrimSpace(req.MonitoredInterface),
		WANInterface:       strings.TrimSpace(req.WANInterface),
	}
	if device.Group == "" {
		device.Group = models.DefaultDeviceGroup
	}
	if device.MonitoredInterface == "" {
		device.MonitoredInterface = models.DefaultMonitoredInterface
	}

	added, err := s.devices.AddDevice(ctx, device)
	if err != nil {
		return models.Device{}, fmt.Errorf("error adding device: %w", err)
	}
	return added, nil
}

// UpdateDevice merges patch into the stored device. Fields the patch leaves
// nil are kept, and so is the stored API key when the patch carries an
// empty one.
func (s *deviceService) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error) {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	patch.Name = trim(patch.Name)
	patch.Address = trim(patch.Address)
	patch.APIKey = trim(patch.APIKey)
	patch.Group = trim(patch.Group)
	patch.MonitoredInterface = trim(patch.MonitoredInterface)
	patch.WANInterface = trim(patch.WANInterface)

	updated, err := s.devices.UpdateDevice(ctx, id, patch)
	if err != nil {
		return models.Device{}, fmt.Errorf("error updating device %s: %w", id, err)
	}

	logger.FromContext(ctx).Info().
		Str("device_id", id).
		Bool("api_key_replaced", patch.HasNewAPIKey()).
		Msg("device updated")
	return updated, nil
}

// DeleteDevice removes the device. An unknown id yields false and no error.
func (s *deviceService) DeleteDevice(ctx context.Context, id string) (bool, error) {
	return s.devices.DeleteDevice(ctx, id)
}

func (s *deviceService) TestDevice(ctx context.Context, id string) (models.ConnectivityResult, error) {
	log := logger.FromContext(ctx)

	device, err := s.devices.GetDevice(ctx, id, true)
	if err != nil {
		return models.ConnectivityResult{}, err
	}
	if device.APIKey == "" {
		log.Warn().Str("device_id", id).Msg("device has no usable api key")
		return models.ConnectivityResult{
			Outcome: models.ConnectivityFailure,
			Message: models.MsgConnectionFailed + ": api key unavailable",
		}, nil
	}

	result := s.client.TestConnectivity(ctx, models.FirewallTarget{Address: device.Address, APIKey: device.APIKey})
	if result.Success() {
		if err := s.devices.TouchDevice(ctx, id, s.clock.Now()); err != nil {
			log.Warn().Err(err).Str("device_id", id).Msg("failed to update last_seen")
		}
	}

	log.Info().Str("device_id", id).Str("outcome", string(result.Outcome)).Msg("device connectivity tested")
	return result, nil
}

func (s *deviceService) TestConnectivity(ctx context.Context, req models.ConnectivityTestRequest) (models.ConnectivityResult, error) {
	target := models.FirewallTarget{
		Address: strings.TrimSpace(req.Address),
		APIKey:  strings.TrimSpace(req.APIKey),
	}
	return s.client.TestConnectivity(ctx, target), nil
}

func (s *deviceService) MigrateAPIKeys(ctx context.Context, opts store.MigrationOptions) (store.MigrationReport, error) {
	report, err := s.devices.MigrateAPIKeys(ctx, opts)
	if err != nil {
		return store.MigrationReport{}, fmt.Errorf("error migrating api keys: %w", err)
	}

	logger.FromContext(ctx).Info().Any("report", report).Msg("api key migration finished")
	return report, nil
}
