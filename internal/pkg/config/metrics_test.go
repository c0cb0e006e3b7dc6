package config

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigMetrics(t *testing.T) {
	metrics := NewConfigMetrics("test_registration")

	assert.NotNil(t, metrics.LoadTimestamp)
	assert.NotNil(t, metrics.ValidationErrorsTotal)
	assert.NotNil(t, metrics.FallbacksTotal)
	assert.NotNil(t, metrics.FallbackActive)
	assert.Equal(t, "test_registration", metrics.componentName)
}

func TestNewConfigMetrics_ComponentsAreIndependent(t *testing.T) {
	apiMetrics := NewConfigMetrics("test_api")
	schedulerMetrics := NewConfigMetrics("test_scheduler")

	assert.NotSame(t, apiMetrics.LoadTimestamp, schedulerMetrics.LoadTimestamp)

	apiMetrics.RecordValidationError("metrics_refresh_schedule")

	assert.Equal(t, float64(1),
		testutil.ToFloat64(apiMetrics.ValidationErrorsTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(schedulerMetrics.ValidationErrorsTotal.WithLabelValues("metrics_refresh_schedule")))
}

func TestRecordLoadTimestamp(t *testing.T) {
	metrics := NewConfigMetrics("test_load_timestamp")

	metrics.RecordLoadTimestamp()

	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
}

func TestRecordValidationError_CountsPerField(t *testing.T) {
	metrics := NewConfigMetrics("test_validation_fields")

	metrics.RecordValidationError("metrics_refresh_schedule")
	metrics.RecordValidationError("ratelimit_idle_eviction")
	metrics.RecordValidationError("metrics_refresh_schedule")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("ratelimit_idle_eviction")))
}

func TestRecordFallback_CountsPerField(t *testing.T) {
	metrics := NewConfigMetrics("test_fallback_fields")

	metrics.RecordFallback("metrics_refresh_schedule", "invalid_value")
	metrics.RecordFallback("ratelimit_rps", "invalid_value")
	metrics.RecordFallback("metrics_refresh_schedule", "invalid_value")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("ratelimit_rps")))
}

func TestSetFallbackActive(t *testing.T) {
	metrics := NewConfigMetrics("test_fallback_toggle")

	metrics.SetFallbackActive("", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive("metrics_refresh_schedule", true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive("", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
}

// Mirrors what setupMetricsRefresh does when METRICS_REFRESH_SCHEDULE
// comes in broken: the load is stamped, the field is counted and the
// fallback gauge goes high.
func TestMetrics_DegradedStartup(t *testing.T) {
	metrics := NewConfigMetrics("test_degraded_startup")

	metrics.RecordLoadTimestamp()
	metrics.RecordValidationError("metrics_refresh_schedule")
	metrics.RecordFallback("metrics_refresh_schedule", "invalid_value")
	metrics.SetFallbackActive("metrics_refresh_schedule", true)

	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))
}

func TestMetrics_CleanStartup(t *testing.T) {
	metrics := NewConfigMetrics("test_clean_startup")

	metrics.RecordLoadTimestamp()
	metrics.SetFallbackActive("", false)

	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("metrics_refresh_schedule")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	metrics := NewConfigMetrics("test_concurrent")

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			metrics.RecordValidationError("shared_field")
			metrics.RecordFallback("shared_field", "invalid_value")
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, float64(10),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("shared_field")))
	assert.Equal(t, float64(10),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("shared_field")))
}
