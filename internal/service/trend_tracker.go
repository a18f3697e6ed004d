package service

import (
	"sync"

	"github.com/csmblade/PANfm/models"
)

// Trend classification parameters.
const (
	TrendHistorySize = 5
	trendRiseFactor  = 1.10
	trendFallFactor  = 0.90
)

// TrendTracker keeps a short rolling history per metric name and classifies
// each new observation against the mean of the ones before it. History is
// in memory only.
//
// TrendTracker is safe for concurrent use.
type TrendTracker struct {
	mu       sync.Mutex
	capacity int
	history  map[string][]int64
}

// NewTrendTracker returns a TrendTracker keeping [TrendHistorySize]
// observations per name.
func NewTrendTracker() *TrendTracker {
	return &TrendTracker{
		capacity: TrendHistorySize,
		history:  make(map[string][]int64),
	}
}

// Observe appends count to the history of name, evicting the oldest value
// beyond capacity, and returns the trend of count.
func (t *TrendTracker) Observe(name string, count int64) models.Trend {
	t.mu.Lock()
	defer t.mu.Unlock()

	h := append(t.history[name], count)
	if len(h) > t.capacity {
		h = h[len(h)-t.capacity:]
	}
	t.history[name] = h

	if len(h) < 2 {
		return models.TrendUnknown
	}

	prior := h[:len(h)-1]
	var sum float64
	for _, v := range prior {
		sum += float64(v)
	}
	mean := sum / float64(len(prior))
	latest := float64(h[len(h)-1])

	switch {
	case latest > mean*trendRiseFactor:
		return models.TrendRising
	case latest < mean*trendFallFactor:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

// History returns a copy of the observations recorded for name.
func (t *TrendTracker) History(name string) []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]int64(nil), t.history[name]...)
}
