package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDashboard is a DashboardService whose Throughput reports each call on
// polls and answers with err.
type fakeDashboard struct {
	polls chan struct{}
	err   error
}

func (f *fakeDashboard) Throughput(_ context.Context) (models.ThroughputSnapshot, error) {
	if f.polls != nil {
		f.polls <- struct{}{}
	}
	if f.err != nil {
		return models.ThroughputSnapshot{}, f.err
	}
	return models.ThroughputSnapshot{Status: models.StatusSuccess, DeviceKey: "dev-1"}, nil
}

func (f *fakeDashboard) Policies(_ context.Context) (models.PolicySnapshot, error) {
	return models.PolicySnapshot{}, nil
}

func (f *fakeDashboard) License(_ context.Context) (models.LicenseSnapshot, error) {
	return models.LicenseSnapshot{}, nil
}

func (f *fakeDashboard) APIStats(_ context.Context) models.APIStats {
	return models.APIStats{}
}

// ─────────────────────────────────────────────
// throughputPoller
// ─────────────────────────────────────────────

// TestThroughputPoller_PollsUntilCancelled verifies that the poller keeps
// polling on its interval and that errors do not stop it.
func TestThroughputPoller_PollsUntilCancelled(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "successful polls"},
		{name: "no device configured", err: service.ErrNoDeviceConfigured},
		{name: "firewall failure", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := &fakeDashboard{polls: make(chan struct{}, 8), err: tt.err}
			p := newThroughputPoller(dashboard, 5*time.Millisecond, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			p.Run(ctx)

			for i := 0; i < 3; i++ {
				select {
				case <-dashboard.polls:
				case <-time.After(time.Second):
					t.Fatalf("poll %d did not happen", i+1)
				}
			}
			cancel()
		})
	}
}

// TestThroughputPoller_StopsOnCancel verifies that no poll happens after
// the context is cancelled.
func TestThroughputPoller_StopsOnCancel(t *testing.T) {
	dashboard := &fakeDashboard{polls: make(chan struct{}, 16)}
	p := newThroughputPoller(dashboard, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		p.loop(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.Empty(t, dashboard.polls)
}

func TestThroughputPoller_PollOnce(t *testing.T) {
	dashboard := &fakeDashboard{polls: make(chan struct{}, 1)}
	p := newThroughputPoller(dashboard, time.Hour, logger.Nop())

	p.poll(context.Background())

	require.Len(t, dashboard.polls, 1)
}
