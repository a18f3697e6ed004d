package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pollTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// GET /api/throughput
// ─────────────────────────────────────────────

func TestThroughput(t *testing.T) {
	snapshot := models.ThroughputSnapshot{
		Status:     models.StatusSuccess,
		Timestamp:  pollTime,
		DeviceKey:  "dev-1",
		Interface:  "ethernet1/12",
		RateResult: models.RateResult{InboundMbps: 8, OutboundMbps: 2, TotalMbps: 10},
		Sessions:   models.SessionCounts{Active: 42, TCP: 30, UDP: 10, ICMP: 2},
		Interfaces: models.InterfaceErrors{Interfaces: []models.InterfaceError{}},
		License:    models.LicenseSummary{Licenses: []models.LicenseEntry{}},
		APIStats:   models.APIStats{TotalCalls: 7, CallsPerMinute: 3.5},
	}
	dashboard := &mockDashboardService{
		throughputFn: func(_ context.Context) (models.ThroughputSnapshot, error) { return snapshot, nil },
	}
	h := newTestHandler(&service.Services{DashboardService: dashboard})
	rec := httptest.NewRecorder()

	h.throughput(rec, newSessionRequest(http.MethodGet, "/api/throughput", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snapshot, decodeBody[models.ThroughputSnapshot](t, rec))
}

// TestDashboard_Errors verifies the status mapping shared by every
// dashboard endpoint.
func TestDashboard_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no device",
			err:         service.ErrNoDeviceConfigured,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgNoDeviceConfigured,
		},
		{
			name:        "firewall unreachable",
			err:         fmt.Errorf("%w: dial tcp: i/o timeout", service.ErrFirewallQueryFailed),
			wantStatus:  http.StatusBadGateway,
			wantMessage: app.MsgFirewallQueryFailed,
		},
	}

	for _, tt := range tests {
		dashboard := &mockDashboardService{
			throughputFn: func(_ context.Context) (models.ThroughputSnapshot, error) {
				return models.ThroughputSnapshot{}, tt.err
			},
			policiesFn: func(_ context.Context) (models.PolicySnapshot, error) {
				return models.PolicySnapshot{}, tt.err
			},
			licenseFn: func(_ context.Context) (models.LicenseSnapshot, error) {
				return models.LicenseSnapshot{}, tt.err
			},
		}
		h := newTestHandler(&service.Services{DashboardService: dashboard})

		endpoints := map[string]http.HandlerFunc{
			"/api/throughput": h.throughput,
			"/api/policies":   h.policies,
			"/api/license":    h.license,
		}
		for path, handle := range endpoints {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				rec := httptest.NewRecorder()

				handle(rec, newSessionRequest(http.MethodGet, path, ""))

				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.Equal(t, tt.wantMessage, decodeBody[utils.ErrorResponse](t, rec).Message)
			})
		}
	}
}

// ─────────────────────────────────────────────
// GET /api/policies
// ─────────────────────────────────────────────

func TestPolicies(t *testing.T) {
	snapshot := models.PolicySnapshot{
		Status:    models.StatusSuccess,
		Timestamp: pollTime,
		Policies: []models.PolicyHitCount{
			{Name: "allow-web", HitCount: 900, LatestHit: "N/A", FirstHit: "N/A", Type: "security", Trend: models.TrendRising},
			{Name: "deny-all", HitCount: 3, LatestHit: "N/A", FirstHit: "N/A", Type: "security", Trend: models.TrendStable},
		},
		Total: 2,
	}
	dashboard := &mockDashboardService{
		policiesFn: func(_ context.Context) (models.PolicySnapshot, error) { return snapshot, nil },
	}
	h := newTestHandler(&service.Services{DashboardService: dashboard})
	rec := httptest.NewRecorder()

	h.policies(rec, newSessionRequest(http.MethodGet, "/api/policies", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snapshot, decodeBody[models.PolicySnapshot](t, rec))
}

// ─────────────────────────────────────────────
// GET /api/license
// ─────────────────────────────────────────────

func TestLicense(t *testing.T) {
	snapshot := models.LicenseSnapshot{
		Status:    models.StatusSuccess,
		Timestamp: pollTime,
		License: models.LicenseSummary{
			Expired:  1,
			Licensed: 1,
			Licenses: []models.LicenseEntry{
				{Feature: "Threat Prevention", Expires: "December 31, 2027", Expired: "no"},
				{Feature: "WildFire", Expires: "January 01, 2026", Expired: "yes"},
			},
		},
	}
	dashboard := &mockDashboardService{
		licenseFn: func(_ context.Context) (models.LicenseSnapshot, error) { return snapshot, nil },
	}
	h := newTestHandler(&service.Services{DashboardService: dashboard})
	rec := httptest.NewRecorder()

	h.license(rec, newSessionRequest(http.MethodGet, "/api/license", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snapshot, decodeBody[models.LicenseSnapshot](t, rec))
}
