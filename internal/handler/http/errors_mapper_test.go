package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// statusFromError / messageFromError
// ─────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation detail is exposed",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("ip is required")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: ip is required",
		},
		{
			name:        "unauthorized",
			err:         fmt.Errorf("%w: %w", service.ErrUnauthorized, service.ErrSessionRevoked),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgAuthenticationRequired,
		},
		{
			name:        "wrong password",
			err:         service.ErrWrongPassword,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidCurrentPassword,
		},
		{
			name:        "device not found",
			err:         fmt.Errorf("get device: %w", store.ErrDeviceNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgDeviceNotFound,
		},
		{
			name:        "no device configured",
			err:         service.ErrNoDeviceConfigured,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgNoDeviceConfigured,
		},
		{
			name:        "firewall query failed",
			err:         fmt.Errorf("%w: connection refused", service.ErrFirewallQueryFailed),
			wantStatus:  http.StatusBadGateway,
			wantMessage: app.MsgFirewallQueryFailed,
		},
		{
			name:        "corrupt document hides detail",
			err:         fmt.Errorf("devices.json: %w", store.ErrCorruptDocument),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unknown error hides detail",
			err:         errors.New("open /data/settings.json: permission denied"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}
