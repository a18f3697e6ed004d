// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

// Package adapter provides the transport layer used to query firewall
// management APIs.
//
// The primary abstraction is [FirewallClient], which decouples the dashboard
// services from the firewall protocol. The package ships a PAN-OS
// implementation ([NewPANOSClient]) that speaks the XML operational API and
// the REST policies API over HTTPS.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// PAN-OS error responses so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for a rejected
// API key, [ErrCommandFailed] for a status="error" response).
package adapter

import (
	"context"

	"github.com/csmblade/PANfm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/firewall_client_mock.go -package=mock

// FirewallClient defines the queries the dashboard issues against a single
// firewall. Every method receives the resolved target (address and plaintext
// API key) so that one client can serve any number of devices.
//
// Implementations are responsible for serialisation, parsing the vendor
// response into the dashboard models and mapping transport-level errors to
// the sentinel values defined in this package.
type FirewallClient interface {
	// SystemInfo returns hostname, model, software version and uptime.
	SystemInfo(ctx context.Context, target models.FirewallTarget) (models.SystemInfo, error)

	// InterfaceCounters returns the cumulative byte and packet counters of
	// iface. Returns [ErrInterfaceNotFound] if the firewall does not report
	// the interface.
	InterfaceCounters(ctx context.Context, target models.FirewallTarget, iface string) (models.InterfaceCounters, error)

	// InterfaceErrors returns the interfaces with non-zero error or drop
	// counters together with firewall-wide totals.
	InterfaceErrors(ctx context.Context, target models.FirewallTarget) (models.InterfaceErrors, error)

	// SessionInfo returns the session table summary.
	SessionInfo(ctx context.Context, target models.FirewallTarget) (models.SessionCounts, error)

	// SystemResources returns data-plane CPU, management CPU, memory usage
	// and uptime. It issues several queries and returns an error only if
	// none of them succeeded.
	SystemResources(ctx context.Context, target models.FirewallTarget) (models.SystemResources, error)

	// LicenseInfo returns the installed licenses with expired and active
	// counts.
	LicenseInfo(ctx context.Context, target models.FirewallTarget) (models.LicenseSummary, error)

	// SecurityRules returns the security rule names in rulebase order.
	SecurityRules(ctx context.Context, target models.FirewallTarget) ([]string, error)

	// RuleHitCounts returns hit-count records keyed by rule name. Rules the
	// firewall did not report are absent from the map.
	RuleHitCounts(ctx context.Context, target models.FirewallTarget, rules []string) (map[string]models.RuleHit, error)

	// TestConnectivity issues a minimal query over a short timeout and
	// classifies the outcome. It never returns an error; failures are
	// reported through the result.
	TestConnectivity(ctx context.Context, target models.FirewallTarget) models.ConnectivityResult
}

// CallRecorder is notified once for every firewall API request issued.
type CallRecorder interface {
	RecordCall()
}

type noopRecorder struct{}

func (noopRecorder) RecordCall() {}
