// Package cache provides TMDB response caching with in-memory and Redis
// backends.
//
// Entries are keyed by the fully composed request URL (including the query
// string and api_key parameter, so entries are credential-scoped) and carry
// a per-entry expiry. Expiry is passive: an expired entry is reported as a
// miss at read time, no background sweep runs.
//
// # Basic Usage
//
//	// In-memory cache
//	store := cache.NewMemoryCache()
//
//	// Or Redis-backed
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//	store := cache.NewRedisCache(redisClient)
//
//	// Lookup
//	body, err := store.Get(ctx, url)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from TMDB
//	}
//
//	// Write-through after a successful fetch
//	if err := store.Set(ctx, url, body, cache.DefaultTTL); err != nil {
//		// log and move on; cache failures never fail the request
//	}
//
// # Metrics
//
// Both backends export Prometheus metrics:
//
//   - tmdb_cache_hits_total{layer} - Cache hits by backend
//   - tmdb_cache_misses_total - Cache misses
//   - tmdb_cache_size_bytes{layer} - Bytes written by backend
//   - tmdb_cache_errors_total{operation} - Cache operation errors
package cache
