package service

import (
	"sync/atomic"
	"time"

	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

// APICallStats counts firewall API requests since process start. It
// implements adapter.CallRecorder.
type APICallStats struct {
	total   atomic.Int64
	started time.Time
	clock   utils.Clock
}

// NewAPICallStats starts counting at clock.Now().
func NewAPICallStats(clock utils.Clock) *APICallStats {
	return &APICallStats{started: clock.Now(), clock: clock}
}

// RecordCall counts one request.
func (s *APICallStats) RecordCall() {
	s.total.Add(1)
}

// Snapshot reports the total and the average calls per minute since start,
// rounded to one decimal.
func (s *APICallStats) Snapshot() models.APIStats {
	total := s.total.Load()
	stats := models.APIStats{TotalCalls: total}

	uptime := s.clock.Now().Sub(s.started).Seconds()
	if uptime > 0 {
		stats.CallsPerMinute = roundTo(float64(total)/uptime*60, 1)
	}
	return stats
}
