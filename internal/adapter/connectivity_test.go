package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// TestConnectivity
// ─────────────────────────────────────────────

func TestTestConnectivity_Success(t *testing.T) {
	srv := newTestFirewall(t, map[string]cannedResponse{cmdSystemInfo: ok(systemInfoXML)})
	client, target, recorder := newTestClient(t, srv)

	result := client.TestConnectivity(context.Background(), target)

	assert.True(t, result.Success())
	assert.Equal(t, models.MsgConnectionSuccessful, result.Message)
	assert.Equal(t, "fw-edge-01", result.Hostname)
	assert.Equal(t, int64(1), recorder.calls.Load())
}

func TestTestConnectivity_NoHostname(t *testing.T) {
	srv := newTestFirewall(t, map[string]cannedResponse{cmdSystemInfo: ok(`<system/>`)})
	client, target, _ := newTestClient(t, srv)

	result := client.TestConnectivity(context.Background(), target)

	assert.Equal(t, models.ConnectivityFailure, result.Outcome)
	assert.Equal(t, models.MsgInvalidResponse, result.Message)
}

func TestTestConnectivity_RejectedKey(t *testing.T) {
	srv := newTestFirewall(t, map[string]cannedResponse{
		cmdSystemInfo: {status: http.StatusForbidden, body: "Invalid Credential"},
	})
	client, target, _ := newTestClient(t, srv)

	result := client.TestConnectivity(context.Background(), target)

	assert.Equal(t, models.ConnectivityFailure, result.Outcome)
	assert.Equal(t, models.MsgInvalidResponse, result.Message)
}

// TestTestConnectivity_Timeout verifies that a firewall slower than the
// connect timeout is classified as a timeout rather than a generic failure.
func TestTestConnectivity_Timeout(t *testing.T) {
	srv := newTestFirewall(t, map[string]cannedResponse{
		cmdSystemInfo: {body: "<response/>", delay: time.Second},
	})
	client, target, _ := newTestClient(t, srv)

	result := client.TestConnectivity(context.Background(), target)

	assert.Equal(t, models.ConnectivityTimeout, result.Outcome)
	assert.Equal(t, models.MsgConnectionTimeout, result.Message)
}

func TestTestConnectivity_ConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()
	client, _, _ := newTestClient(t, srv)

	result := client.TestConnectivity(context.Background(), models.FirewallTarget{Address: addr, APIKey: testAPIKey})

	assert.Equal(t, models.ConnectivityFailure, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Message, models.MsgConnectionFailed+": "), result.Message)
}

func TestClassifyConnectivity(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome models.ConnectivityOutcome
		message string
	}{
		{name: "deadline", err: context.DeadlineExceeded, outcome: models.ConnectivityTimeout, message: models.MsgConnectionTimeout},
		{name: "wrapped deadline", err: errors.Join(errors.New("get"), context.DeadlineExceeded), outcome: models.ConnectivityTimeout, message: models.MsgConnectionTimeout},
		{name: "unexpected status", err: ErrUnexpectedStatus, outcome: models.ConnectivityFailure, message: models.MsgInvalidResponse},
		{name: "command failed", err: ErrCommandFailed, outcome: models.ConnectivityFailure, message: models.MsgInvalidResponse},
		{name: "other", err: errors.New("no route to host"), outcome: models.ConnectivityFailure, message: "Connection failed: no route to host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyConnectivity(nil, tt.err)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}
