// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package models

import "time"

// InterfaceCounters holds the cumulative counters of one interface as
// reported by the firewall.
type InterfaceCounters struct {
	Name     string `json:"name"`
	InBytes  uint64 `json:"ibytes"`
	OutBytes uint64 `json:"obytes"`
	InPkts   uint64 `json:"ipackets"`
	OutPkts  uint64 `json:"opackets"`
}

// RateSample is a stored baseline: cumulative counters plus capture time.
type RateSample struct {
	Counters   InterfaceCounters
	CapturedAt time.Time
}

// RateResult is the per-second rate computed from two samples.
// Throughput is expressed in Mbps (bytes/s divided by 125000).
type RateResult struct {
	InboundMbps  float64 `json:"inbound_mbps"`
	OutboundMbps float64 `json:"outbound_mbps"`
	TotalMbps    float64 `json:"total_mbps"`
	InboundPPS   float64 `json:"inbound_pps"`
	OutboundPPS  float64 `json:"outbound_pps"`
	TotalPPS     float64 `json:"total_pps"`

	// FirstSample is set when no baseline existed for the key.
	FirstSample bool `json:"first_sample,omitempty"`

	// CounterReset is set when at least one counter went backwards.
	CounterReset bool `json:"counter_reset,omitempty"`
}

// Trend classifies a metric's latest value against its short history.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// SessionCounts is the firewall's session table summary.
type SessionCounts struct {
	Active int64 `json:"active"`
	TCP    int64 `json:"tcp"`
	UDP    int64 `json:"udp"`
	ICMP   int64 `json:"icmp"`
}

// SystemResources summarises CPU and memory usage.
type SystemResources struct {
	DataPlaneCPU  int    `json:"data_plane_cpu"`
	MgmtPlaneCPU  int    `json:"mgmt_plane_cpu"`
	Uptime        string `json:"uptime,omitempty"`
	MemoryUsedPct int    `json:"memory_used_pct"`
	MemoryUsedMB  int    `json:"memory_used_mb"`
	MemoryTotalMB int    `json:"memory_total_mb"`
}

// InterfaceError is one interface with non-zero error or drop counters.
type InterfaceError struct {
	Name        string `json:"name"`
	InErrors    int64  `json:"ierrors"`
	OutErrors   int64  `json:"oerrors"`
	InDrops     int64  `json:"idrops"`
	TotalErrors int64  `json:"total_errors"`
}

// InterfaceErrors aggregates error and drop counters across interfaces.
type InterfaceErrors struct {
	Interfaces  []InterfaceError `json:"interfaces"`
	TotalErrors int64            `json:"total_errors"`
	TotalDrops  int64            `json:"total_drops"`
}

// LicenseEntry is one licensed feature.
type LicenseEntry struct {
	Feature     string `json:"feature"`
	Description string `json:"description"`
	Expires     string `json:"expires"`
	Expired     string `json:"expired"`
}

// LicenseSummary counts expired and active licenses.
type LicenseSummary struct {
	Expired  int            `json:"expired"`
	Licensed int            `json:"licensed"`
	Licenses []LicenseEntry `json:"licenses"`
}

// SystemInfo is the subset of `show system info` the dashboard uses.
type SystemInfo struct {
	Hostname  string `json:"hostname"`
	Model     string `json:"model,omitempty"`
	Serial    string `json:"serial,omitempty"`
	SWVersion string `json:"sw_version,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
}

// RuleHit is the hit-count record of one security rule.
type RuleHit struct {
	HitCount  int64  `json:"hit_count"`
	LatestHit string `json:"latest_hit"`
	FirstHit  string `json:"first_hit"`
}

// PolicyHitCount is one rule entry of the policies snapshot.
type PolicyHitCount struct {
	Name      string `json:"name"`
	HitCount  int64  `json:"hit_count"`
	LatestHit string `json:"latest_hit"`
	FirstHit  string `json:"first_hit"`
	Type      string `json:"type"`
	Trend     Trend  `json:"trend"`
}

// APIStats reports how many firewall queries the process has issued.
type APIStats struct {
	TotalCalls     int64   `json:"total_calls"`
	CallsPerMinute float64 `json:"calls_per_minute"`
}

// Snapshot status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ThroughputSnapshot is the composite result of one dashboard poll.
type ThroughputSnapshot struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DeviceKey string    `json:"device_key"`
	Interface string    `json:"interface"`

	RateResult

	WAN *WANThroughput `json:"wan,omitempty"`

	Sessions   SessionCounts   `json:"sessions"`
	CPU        SystemResources `json:"cpu"`
	Interfaces InterfaceErrors `json:"interfaces"`
	License    LicenseSummary  `json:"license"`
	APIStats   APIStats        `json:"api_stats"`

	// Errors lists the stages that fell back to empty data.
	Errors []string `json:"errors,omitempty"`
}

// WANThroughput is the rate of the device's secondary interface.
type WANThroughput struct {
	Interface string `json:"interface"`
	RateResult
}

// PolicySnapshot is the result of a policy hit-count poll.
type PolicySnapshot struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Policies  []PolicyHitCount `json:"policies"`
	Total     int              `json:"total"`
}

// LicenseSnapshot is the result of a license poll.
type LicenseSnapshot struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	License   LicenseSummary `json:"license"`
}
