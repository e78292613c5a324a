// Command tmdb-proxy is a caching HTTP proxy in front of the TMDB API.
// It keeps the API key server-side and serves repeated requests from cache.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yurtaev/tmdb/pkg/cache"
	"github.com/yurtaev/tmdb/pkg/client"
	"github.com/yurtaev/tmdb/pkg/logging"
)

func main() {
	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Output: os.Stderr,
	})

	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		logger.Fatal().Msg("TMDB_API_KEY is required")
	}

	port := getEnv("PORT", "8080")
	store := setupCache(logger)

	cfg := client.DefaultConfig(apiKey)
	cfg.Cache = store

	tmdbClient, err := client.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create TMDB client")
	}
	defer tmdbClient.Close()

	http.HandleFunc("/health", healthHandler)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/3/", proxyHandler(tmdbClient, logger))

	addr := ":" + port
	logger.Info().Str("addr", addr).Msg("Starting TMDB proxy server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

// setupCache prefers Redis when REDIS_URL is reachable and falls back to the
// in-memory cache otherwise.
func setupCache(logger zerolog.Logger) cache.Cache {
	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		logger.Info().Msg("No REDIS_URL configured, using in-memory cache")
		return cache.NewMemoryCache()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", redisURL).Msg("Redis unreachable, using in-memory cache")
		return cache.NewMemoryCache()
	}

	logger.Info().Str("addr", redisURL).Msg("Connected to Redis")
	return cache.NewRedisCache(redisClient)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// proxyHandler forwards /3/... requests to TMDB through the caching client.
// The upstream api_key is attached by the client, never taken from callers.
func proxyHandler(tmdbClient *client.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/3/"), "/"), "/")
		if len(path) == 0 || path[0] == "" {
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		query.Del("api_key")

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		body, err := client.Get[json.RawMessage](ctx, tmdbClient, query, path...)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			logger.Warn().Err(err).Msg("Failed to write response")
		}
	}
}

// writeError maps client errors onto proxy responses.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusErr.StatusCode)
		_, _ = w.Write(statusErr.Body)
		return
	}

	var urlErr *client.InvalidURLError
	if errors.As(err, &urlErr) {
		http.Error(w, urlErr.Error(), http.StatusBadRequest)
		return
	}

	logger.Error().Err(err).Msg("TMDB request failed")
	http.Error(w, "upstream request failed", http.StatusBadGateway)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
