// Package slo exposes gauges comparing observed traffic against the
// service's reliability targets.
package slo

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service level objective targets. An in-memory API has no excuse for
// slow reads; 200ms at p95 leaves room for JSON encoding of large
// article lists.
const (
	// target uptime percentage; 99.9% is about 43 minutes of downtime a month
	AvailabilitySLO = 99.9

	LatencyP95SLO = 0.200
	LatencyP99SLO = 0.500

	// maximum acceptable 5xx ratio
	ErrorRateSLO = 0.001
)

// Gauges tracking where the service currently stands against its targets.
// The metrics refresh job recomputes them every cycle.
var (
	// (total_requests - 5xx) / total_requests, 0-1
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Current availability ratio (0-1), target: 0.999",
		},
	)

	// p95 latency in seconds, from the http_request_duration_seconds histogram
	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "Current p95 latency in seconds, target: 0.200",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "Current p99 latency in seconds, target: 0.500",
		},
	)

	// 5xx / total_requests, 0-1
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Current error rate ratio (0-1), target: 0.001",
		},
	)
)

// UpdateAvailability sets the availability gauge to the given 0-1 ratio.
func UpdateAvailability(ratio float64) {
	SLOAvailability.Set(ratio)
}

// UpdateLatencyP95 sets the p95 latency gauge. Dashboards usually feed it
// from histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m])).
func UpdateLatencyP95(seconds float64) {
	SLOLatencyP95.Set(seconds)
}

// UpdateLatencyP99 sets the p99 latency gauge.
func UpdateLatencyP99(seconds float64) {
	SLOLatencyP99.Set(seconds)
}

// UpdateErrorRate sets the error rate gauge to the given 0-1 ratio.
func UpdateErrorRate(ratio float64) {
	SLOErrorRate.Set(ratio)
}

// ObserveRequests recomputes the availability and error rate gauges from
// the http_requests_total counter family exposed by the given gatherer.
// A gatherer with no recorded requests leaves both gauges untouched.
//
// Call this periodically, e.g. from a cron job:
//
//	_ = slo.ObserveRequests(prometheus.DefaultGatherer)
func ObserveRequests(gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	var total, errors float64
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			total += value
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" && strings.HasPrefix(label.GetValue(), "5") {
					errors += value
				}
			}
		}
	}

	if total == 0 {
		return nil
	}
	UpdateAvailability((total - errors) / total)
	UpdateErrorRate(errors / total)
	return nil
}
