package workers

import (
	"context"
	"errors"
	"time"

	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
)

// throughputPoller keeps rate baselines and trend history warm by polling
// the selected firewall between dashboard requests.
type throughputPoller struct {
	dashboard service.DashboardService
	interval  time.Duration
	logger    *logger.Logger
}

func newThroughputPoller(dashboard service.DashboardService, interval time.Duration, logger *logger.Logger) *throughputPoller {
	return &throughputPoller{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger,
	}
}

func (p *throughputPoller) Run(ctx context.Context) {
	go p.loop(ctx)
}

func (p *throughputPoller) loop(ctx context.Context) {
	ctx = p.logger.WithContext(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Msg("throughput poller started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("throughput poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *throughputPoller) poll(ctx context.Context) {
	snapshot, err := p.dashboard.Throughput(ctx)
	switch {
	case err == nil:
		p.logger.Debug().
			Str("device_key", snapshot.DeviceKey).
			Str("status", snapshot.Status).
			Float64("total_mbps", snapshot.TotalMbps).
			Strs("errors", snapshot.Errors).
			Msg("background poll completed")
	case errors.Is(err, service.ErrNoDeviceConfigured), errors.Is(err, context.Canceled):
		p.logger.Debug().Err(err).Msg("background poll skipped")
	default:
		p.logger.Warn().Err(err).Msg("background poll failed")
	}
}
