// Package metrics provides centralized Prometheus metrics for the content
// store. Transport-level metrics live next to the HTTP handlers; the
// collectors here cover seeding, relationship inference and raw store
// operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Seeding metrics track how the store is populated at startup
var (
	// ArticlesSeededTotal counts articles loaded into the store by source
	ArticlesSeededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_seeded_total",
			Help: "Total number of articles loaded into the store",
		},
		[]string{"source"},
	)

	// SeedDuration measures time to populate the store
	SeedDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "store_seed_duration_seconds",
			Help:    "Time taken to populate the content store",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
	)
)

// Relationship metrics track co-appearance inference
var (
	// RelationshipInferenceDuration measures a single inference pass
	RelationshipInferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relationship_inference_duration_seconds",
			Help:    "Time taken to infer actor relationships from co-appearances",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	// RelationshipPairs tracks the pair count of the latest inference
	RelationshipPairs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relationship_pairs",
			Help: "Number of related-actor pairs found by the latest inference",
		},
	)
)

// Store metrics track the in-memory collections
var (
	// StoreOperationDuration measures store operation duration
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Content store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
		},
		[]string{"operation"},
	)

	// StoreCollectionSize tracks the size of each store collection
	StoreCollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_collection_size",
			Help: "Number of records per content store collection",
		},
		[]string{"collection"},
	)
)

// RecordStoreOperation records the duration of a named store operation
func RecordStoreOperation(operation string, duration time.Duration) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
