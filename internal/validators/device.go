// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/csmblade/PANfm/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a device.
	FieldName = "name"

	// FieldAddress targets the management address of a device.
	FieldAddress = "ip"

	// FieldAPIKey targets the firewall API key.
	FieldAPIKey = "api_key"

	// FieldMonitoredInterface targets the interface whose counters drive
	// throughput.
	FieldMonitoredInterface = "monitored_interface"

	// FieldWANInterface targets the optional secondary interface.
	FieldWANInterface = "wan_interface"

	// FieldPatchNotEmpty requires a patch to change at least one field.
	FieldPatchNotEmpty = "patch_not_empty"
)

const maxInterfaceNameLength = 64

type DeviceValidator struct {
}

func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewDeviceRequest:
		return v.validateNewDevice(value, fields...)
	case *models.NewDeviceRequest:
		return v.validateNewDevice(*value, fields...)

	case models.DevicePatch:
		return v.validatePatch(value, fields...)
	case *models.DevicePatch:
		return v.validatePatch(*value, fields...)

	case models.ConnectivityTestRequest:
		return v.validateConnectivityTest(value, fields...)
	case *models.ConnectivityTestRequest:
		return v.validateConnectivityTest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DeviceValidator) validateNewDevice(req models.NewDeviceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAddress, FieldAPIKey, FieldMonitoredInterface, FieldWANInterface}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldAddress:
			if !isValidAddress(req.Address) {
				return ErrInvalidAddress
			}
		case FieldAPIKey:
			if strings.TrimSpace(req.APIKey) == "" {
				return ErrEmptyAPIKey
			}
		case FieldMonitoredInterface:
			if req.MonitoredInterface != "" && !isValidInterface(req.MonitoredInterface) {
				return ErrInvalidInterface
			}
		case FieldWANInterface:
			if req.WANInterface != "" && !isValidInterface(req.WANInterface) {
				return ErrInvalidInterface
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch checks only the fields a patch sets. An empty api_key is
// allowed and means "keep the stored key".
func (v *DeviceValidator) validatePatch(patch models.DevicePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatchNotEmpty, FieldName, FieldAddress, FieldMonitoredInterface, FieldWANInterface}
	}

	for _, f := range fields {
		switch f {
		case FieldPatchNotEmpty:
			if patch == (models.DevicePatch{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
				return ErrEmptyName
			}
		case FieldAddress:
			if patch.Address != nil && !isValidAddress(*patch.Address) {
				return ErrInvalidAddress
			}
		case FieldAPIKey:
		case FieldMonitoredInterface:
			if patch.MonitoredInterface != nil && *patch.MonitoredInterface != "" && !isValidInterface(*patch.MonitoredInterface) {
				return ErrInvalidInterface
			}
		case FieldWANInterface:
			if patch.WANInterface != nil && *patch.WANInterface != "" && !isValidInterface(*patch.WANInterface) {
				return ErrInvalidInterface
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeviceValidator) validateConnectivityTest(req models.ConnectivityTestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldAPIKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if !isValidAddress(req.Address) {
				return ErrInvalidAddress
			}
		case FieldAPIKey:
			if strings.TrimSpace(req.APIKey) == "" {
				return ErrEmptyAPIKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidAddress accepts a host name, IP address or host:port, optionally
// prefixed with an http(s) scheme.
func isValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" || strings.IndexFunc(addr, unicode.IsSpace) >= 0 {
		return false
	}

	raw := addr
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || u.Hostname() == "" {
		return false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return false
	}
	return u.Path == "" || u.Path == "/"
}

func isValidInterface(name string) bool {
	return len(name) <= maxInterfaceNameLength && strings.IndexFunc(name, unicode.IsSpace) < 0
}
