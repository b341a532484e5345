// Package metrics provides the Prometheus registry handle for the TMDB
// client. Metrics are defined in their respective packages (tmdb, cache,
// pagination) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the TMDB client.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Handler returns the HTTP handler exposing all registered metrics in
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Metrics Documentation
//
// Request Metrics (pkg/tmdb):
//   - tmdb_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - tmdb_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//
// Paginator Metrics (pkg/pagination):
//   - tmdb_paginator_pages_fetched_total (Counter): Pages materialized by paginators
//   - tmdb_paginator_entities_dropped_total (Counter): Raw entities dropped by record validation
//
// Cache Metrics (pkg/cache):
//   - tmdb_cache_hits_total (Counter): Response cache hits
//   - tmdb_cache_misses_total (Counter): Response cache misses
//   - tmdb_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   rate(tmdb_cache_hits_total[5m]) /
//   (rate(tmdb_cache_hits_total[5m]) + rate(tmdb_cache_misses_total[5m]))
//
//   # Validation Drop Rate per Page
//   rate(tmdb_paginator_entities_dropped_total[5m]) /
//   rate(tmdb_paginator_pages_fetched_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(tmdb_request_duration_seconds_bucket[5m]))
