// Package metrics provides Prometheus metrics for the dashboard.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Firewall API metrics.
	FirewallCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panfm",
		Subsystem: "firewall",
		Name:      "calls_total",
		Help:      "Total number of firewall API queries issued.",
	}, []string{"command", "result"}) // result is "ok" or "error"
	FirewallCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "panfm",
		Subsystem: "firewall",
		Name:      "call_duration_seconds",
		Help:      "Latency of firewall API queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"command"})

	// Poll metrics.
	PollDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "panfm",
		Subsystem: "poll",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of one dashboard poll.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"kind"}) // "throughput", "policies" or "license"
	PollStageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panfm",
		Subsystem: "poll",
		Name:      "stage_failures_total",
		Help:      "Poll stages that fell back to empty data.",
	}, []string{"stage"})

	// Throughput gauges, updated on every successful rate computation.
	ThroughputMbps = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "panfm",
		Subsystem: "interface",
		Name:      "throughput_mbps",
		Help:      "Last computed interface throughput in Mbps.",
	}, []string{"device", "interface", "direction"})
	CounterResets = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panfm",
		Subsystem: "interface",
		Name:      "counter_resets_total",
		Help:      "Observed decreases of cumulative interface counters.",
	}, []string{"device"})

	// HTTP API metrics.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panfm",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of dashboard API requests.",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(
		FirewallCallsTotal,
		FirewallCallDuration,

		PollDuration,
		PollStageFailures,

		ThroughputMbps,
		CounterResets,

		HTTPRequestsTotal,
	)
}
