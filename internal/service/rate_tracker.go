package service

import (
	"math"
	"sync"
	"time"

	"github.com/csmblade/PANfm/models"
)

// bytesPerMbps converts bytes per second into megabits per second.
const bytesPerMbps = 125000

// RateTracker converts cumulative interface counters into per-second rates.
// It keeps one baseline per key in memory; after a restart the first sample
// of every key reports zero rates.
//
// RateTracker is safe for concurrent use.
type RateTracker struct {
	mu        sync.Mutex
	baselines map[string]models.RateSample
}

// NewRateTracker returns an empty RateTracker.
func NewRateTracker() *RateTracker {
	return &RateTracker{baselines: make(map[string]models.RateSample)}
}

// Sample records counters for key, captured at now, and returns the rates
// relative to the previous sample.
//
//   - With no previous sample the counters become the baseline and a zero
//     result flagged FirstSample is returned.
//   - If now is not after the baseline time a zero result is returned and
//     the baseline is left untouched.
//   - A counter that went backwards contributes zero and flags CounterReset.
//     The baseline still moves to the new counters.
func (t *RateTracker) Sample(key string, counters models.InterfaceCounters, now time.Time) models.RateResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := models.RateSample{Counters: counters, CapturedAt: now}

	prev, ok := t.baselines[key]
	if !ok {
		t.baselines[key] = current
		return models.RateResult{FirstSample: true}
	}

	elapsed := now.Sub(prev.CapturedAt).Seconds()
	if elapsed <= 0 {
		return models.RateResult{}
	}

	inBytes, r1 := counterDelta(counters.InBytes, prev.Counters.InBytes)
	outBytes, r2 := counterDelta(counters.OutBytes, prev.Counters.OutBytes)
	inPkts, r3 := counterDelta(counters.InPkts, prev.Counters.InPkts)
	outPkts, r4 := counterDelta(counters.OutPkts, prev.Counters.OutPkts)

	t.baselines[key] = current

	inMbps := inBytes / elapsed / bytesPerMbps
	outMbps := outBytes / elapsed / bytesPerMbps
	inPPS := inPkts / elapsed
	outPPS := outPkts / elapsed

	return models.RateResult{
		InboundMbps:  roundTo(inMbps, 2),
		OutboundMbps: roundTo(outMbps, 2),
		TotalMbps:    roundTo(inMbps+outMbps, 2),
		InboundPPS:   roundTo(inPPS, 0),
		OutboundPPS:  roundTo(outPPS, 0),
		TotalPPS:     roundTo(inPPS+outPPS, 0),
		CounterReset: r1 || r2 || r3 || r4,
	}
}

// Forget drops the baseline of key.
func (t *RateTracker) Forget(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.baselines, key)
}

// Baseline returns the stored sample for key.
func (t *RateTracker) Baseline(key string) (models.RateSample, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.baselines[key]
	return s, ok
}

// counterDelta returns cur-prev, or zero and true when the counter reset.
func counterDelta(cur, prev uint64) (float64, bool) {
	if cur < prev {
		return 0, true
	}
	return float64(cur - prev), false
}

// roundTo floors v at zero and rounds it to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
