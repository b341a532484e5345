package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_cache_hits_total",
			Help: "Total number of TMDB response cache hits",
		},
	)

	// CacheMisses tracks cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_cache_misses_total",
			Help: "Total number of TMDB response cache misses",
		},
	)

	// CacheErrors tracks cache operation errors by operation.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_cache_errors_total",
			Help: "Total number of TMDB cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
