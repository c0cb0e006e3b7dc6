// Package metrics provides Prometheus collectors for the content store.
//
// The collectors here cover:
//   - Seeding (articles loaded, seed duration)
//   - Relationship inference (pass duration, pair count)
//   - Store operations and collection sizes
//
// Transport-level metrics (HTTP request counts, latencies, auth) are
// registered next to the HTTP handlers instead. All metrics use the
// Prometheus default registry and are exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "astrobuzz/internal/observability/metrics"
//
//	func seedStore(source string) {
//	    start := time.Now()
//	    // ... load articles ...
//	    count := 10
//
//	    metrics.RecordArticlesSeeded(source, count)
//	    metrics.RecordSeedDuration(time.Since(start))
//	}
package metrics
