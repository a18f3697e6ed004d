// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

// Package app contains shared application-layer constants used across the
// dashboard HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails
	// validation. Handlers usually append the validation detail.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidCredentials is returned for every failed login so that
	// callers cannot tell a wrong username from a wrong password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgAuthenticationRequired is returned when a protected route is called
	// without a valid session cookie.
	MsgAuthenticationRequired = "Authentication required"

	// MsgInvalidCurrentPassword is returned when a password change supplies
	// the wrong current password.
	MsgInvalidCurrentPassword = "Invalid current password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgDeviceNotFound is returned when a device id does not match any
	// registered device.
	MsgDeviceNotFound = "Device not found"

	// MsgNoDeviceConfigured is returned by the dashboard endpoints when no
	// firewall can be resolved for polling.
	MsgNoDeviceConfigured = "No firewall device configured"

	// MsgFirewallQueryFailed is returned when the firewall could not be
	// queried for the requested data.
	MsgFirewallQueryFailed = "Failed to query firewall"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned when a route exists but does not
	// handle the request method.
	MsgMethodNotAllowed = "Method not allowed"
)

// Success messages.
const (
	MsgLoggedOut       = "Logged out"
	MsgSessionExtended = "Session extended"
	MsgPasswordChanged = "Password changed successfully"
	MsgSettingsSaved   = "Settings saved"
	MsgDeviceAdded     = "Device added"
	MsgDeviceUpdated   = "Device updated"
	MsgDeviceDeleted   = "Device deleted"
)
