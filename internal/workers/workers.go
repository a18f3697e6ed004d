package workers

import (
	"context"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. A zero
// PollInterval yields an empty set.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.PollInterval > 0 {
		w.workers = append(w.workers, newThroughputPoller(services.DashboardService, cfg.PollInterval, logger))
		logger.Info().Dur("interval", cfg.PollInterval).Msg("background throughput poller enabled")
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Len reports how many workers are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}
