// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package models

// Defaults applied to devices created without the corresponding fields.
const (
	DefaultDeviceGroup        = "Default"
	DefaultMonitoredInterface = "ethernet1/12"
)

// DefaultDeviceGroups is the group list written to a fresh devices document.
var DefaultDeviceGroups = []string{"Headquarters", "Branch Office", "Remote", "Standalone"}

// Device is one managed firewall endpoint.
//
// APIKey holds the codec ciphertext whenever the value is read from or
// written to disk. It carries plaintext only on values returned with
// reveal=true, which must never reach an HTTP response.
type Device struct {
	// ID is generated on creation and never changes.
	ID string `json:"id"`

	// Name is the operator-facing display name.
	Name string `json:"name"`

	// Address is the management IP or hostname of the firewall.
	Address string `json:"ip"`

	// APIKey is the firewall API key (ciphertext at rest).
	APIKey string `json:"api_key"`

	// Enabled marks whether the device may be polled. Disabling never deletes.
	Enabled bool `json:"enabled"`

	// Group is a free-text label; it is not required to exist in the group list.
	Group string `json:"group"`

	// Description is free text.
	Description string `json:"description"`

	// AddedDate is stamped by the server on creation.
	AddedDate Timestamp `json:"added_date"`

	// LastSeen is the last time the device answered a query; nil if never.
	LastSeen *Timestamp `json:"last_seen"`

	// MonitoredInterface is the interface whose counters drive throughput.
	MonitoredInterface string `json:"monitored_interface"`

	// WANInterface is an optional secondary interface reported separately.
	WANInterface string `json:"wan_interface,omitempty"`
}

// DevicePatch is a partial update for a [Device]. A nil field means
// "unchanged". An empty APIKey is also treated as "unchanged" so that
// edit forms which never echo the key cannot clear it.
type DevicePatch struct {
	Name               *string `json:"name,omitempty"`
	Address            *string `json:"ip,omitempty"`
	APIKey             *string `json:"api_key,omitempty"`
	Enabled            *bool   `json:"enabled,omitempty"`
	Group              *string `json:"group,omitempty"`
	Description        *string `json:"description,omitempty"`
	MonitoredInterface *string `json:"monitored_interface,omitempty"`
	WANInterface       *string `json:"wan_interface,omitempty"`
}

// HasNewAPIKey reports whether the patch carries a replacement API key.
func (p DevicePatch) HasNewAPIKey() bool {
	return p.APIKey != nil && *p.APIKey != ""
}

// Apply copies every set field of p onto d. The API key is copied verbatim;
// callers are responsible for encrypting it first.
func (p DevicePatch) Apply(d Device) Device {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.HasNewAPIKey() {
		d.APIKey = *p.APIKey
	}
	if p.Enabled != nil {
		d.Enabled = *p.Enabled
	}
	if p.Group != nil {
		d.Group = *p.Group
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.MonitoredInterface != nil {
		d.MonitoredInterface = *p.MonitoredInterface
	}
	if p.WANInterface != nil {
		d.WANInterface = *p.WANInterface
	}
	return d
}

// NewDeviceRequest carries the operator-supplied fields of a device to add.
type NewDeviceRequest struct {
	Name               string `json:"name"`
	Address            string `json:"ip"`
	APIKey             string `json:"api_key"`
	Group              string `json:"group"`
	Description        string `json:"description"`
	MonitoredInterface string `json:"monitored_interface"`
	WANInterface       string `json:"wan_interface"`
}

// DevicesDocument is the on-disk layout of the devices file.
type DevicesDocument struct {
	Devices []Device `json:"devices"`
	Groups  []string `json:"groups"`
}

// ConnectivityTestRequest is the body of an ad-hoc connectivity test.
type ConnectivityTestRequest struct {
	Address string `json:"ip"`
	APIKey  string `json:"api_key"`
}
