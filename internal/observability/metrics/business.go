package metrics

import (
	"time"
)

// RecordArticlesSeeded records the number of articles loaded into the
// store from a source ("fixtures" for the built-in seed data).
func RecordArticlesSeeded(source string, count int) {
	ArticlesSeededTotal.WithLabelValues(source).Add(float64(count))
}

// RecordSeedDuration records the time taken to populate the store.
func RecordSeedDuration(duration time.Duration) {
	SeedDuration.Observe(duration.Seconds())
}

// RecordRelationshipInference records a co-appearance inference pass:
// how long it ran and how many related-actor pairs it produced.
func RecordRelationshipInference(duration time.Duration, pairs int) {
	RelationshipInferenceDuration.Observe(duration.Seconds())
	RelationshipPairs.Set(float64(pairs))
}

// UpdateCollectionSize updates the record count gauge for a store
// collection. Call periodically with the counts reported by the store.
func UpdateCollectionSize(collection string, count int) {
	StoreCollectionSize.WithLabelValues(collection).Set(float64(count))
}
