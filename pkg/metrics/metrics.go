// Package metrics provides the centralized Prometheus metrics registry for
// the TMDB client. All metrics are defined in their respective packages
// (client, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the TMDB client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - tmdb_requests_total{endpoint, status} (Counter): Requests by endpoint and
//     outcome; status is an HTTP status code, "cache_hit", or "network_error"
//   - tmdb_request_duration_seconds{endpoint} (Histogram): Request duration by
//     endpoint, including cache-served requests
//
// Cache Metrics (pkg/cache):
//   - tmdb_cache_hits_total{layer="memory"|"redis"} (Counter): Cache hits by layer
//   - tmdb_cache_misses_total (Counter): Cache misses
//   - tmdb_cache_size_bytes{layer} (Gauge): Bytes written by layer
//   - tmdb_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(tmdb_cache_hits_total[5m])) /
//   (sum(rate(tmdb_cache_hits_total[5m])) + sum(rate(tmdb_cache_misses_total[5m])))
//
//   # Request Error Rate
//   sum(rate(tmdb_requests_total{status=~"5..|network_error"}[5m]))
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(tmdb_request_duration_seconds_bucket[5m]))
