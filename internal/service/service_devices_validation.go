package service

import (
	"context"
	"fmt"

	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/validators"
	"github.com/csmblade/PANfm/models"
)

// DeviceValidationService rejects malformed device input before it reaches
// the wrapped DeviceService. Validation failures wrap
// [ErrInvalidDataProvided].
type DeviceValidationService struct {
	inner     DeviceService
	validator validators.Validator
}

func NewDeviceValidationService() DeviceServiceWrapper {
	return &DeviceValidationService{
		validator: validators.NewDeviceValidator(),
	}
}

func (v *DeviceValidationService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return v.inner.ListDevices(ctx)
}

func (v *DeviceValidationService) ListGroups(ctx context.Context) ([]string, error) {
	return v.inner.ListGroups(ctx)
}

func (v *DeviceValidationService) GetDevice(ctx context.Context, id string) (models.Device, error) {
	return v.inner.GetDevice(ctx, id)
}

func (v *DeviceValidationService) AddDevice(ctx context.Context, req models.NewDeviceRequest) (models.Device, error) {
	// name, ip and api_key are required; interfaces are optional
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddDevice(ctx, req)
}

func (v *DeviceValidationService) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (models.Device, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateDevice(ctx, id, patch)
}

func (v *DeviceValidationService) DeleteDevice(ctx context.Context, id string) (bool, error) {
	return v.inner.DeleteDevice(ctx, id)
}

func (v *DeviceValidationService) TestDevice(ctx context.Context, id string) (models.ConnectivityResult, error) {
	return v.inner.TestDevice(ctx, id)
}

func (v *DeviceValidationService) TestConnectivity(ctx context.Context, req models.ConnectivityTestRequest) (models.ConnectivityResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ConnectivityResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.TestConnectivity(ctx, req)
}

func (v *DeviceValidationService) MigrateAPIKeys(ctx context.Context, opts store.MigrationOptions) (store.MigrationReport, error) {
	return v.inner.MigrateAPIKeys(ctx, opts)
}

func (v *DeviceValidationService) Wrap(wrapper DeviceService) DeviceService {
	v.inner = wrapper
	return v
}
