package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication requests by provider and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by provider and result",
		},
		[]string{"provider", "result"}, // result: success | failure
	)

	// authDuration tracks authentication duration by provider.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by provider",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"provider"},
	)

	// authzCheckDuration tracks authorization check duration.
	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Authorization check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// rejectedTokens counts rejected tokens on protected endpoints by method.
	rejectedTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejected_tokens_total",
			Help: "Rejected tokens on protected endpoints by method",
		},
		[]string{"method"},
	)
)

// RecordAuthRequest records an authentication request.
func RecordAuthRequest(provider, result string) {
	authRequestsTotal.WithLabelValues(provider, result).Inc()
}

// RecordAuthDuration records authentication duration.
func RecordAuthDuration(provider string, durationSeconds float64) {
	authDuration.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordAuthzCheckDuration records authorization check duration.
func RecordAuthzCheckDuration(durationSeconds float64) {
	authzCheckDuration.Observe(durationSeconds)
}

// RecordRejectedToken records a rejected token on a protected endpoint.
func RecordRejectedToken(method string) {
	rejectedTokens.WithLabelValues(method).Inc()
}
