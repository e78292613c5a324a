// Package client provides the core TMDB HTTP client with response caching,
// typed JSON decoding, and pagination support.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yurtaev/tmdb/pkg/cache"
)

// Default TMDB v3 endpoints.
const (
	DefaultBaseURL       = "https://api.themoviedb.org/3"
	DefaultImagesBaseURL = "https://image.tmdb.org/t/p"
)

// Prometheus metrics for TMDB client operations.
var (
	tmdbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tmdb_requests_total",
		Help: "Total TMDB requests by endpoint and outcome",
	}, []string{"endpoint", "status"})

	tmdbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tmdb_request_duration_seconds",
		Help:    "TMDB request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// Client is the main TMDB API client. It composes request URLs with the
// configured API key, performs GET requests through the injected HTTP
// client, and serves responses from the configured cache when possible.
//
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL       string
	imagesBaseURL string
	apiKey        string
	httpClient    *http.Client
	cache         cache.Cache
	cacheTTL      time.Duration
	logger        zerolog.Logger
	closeOnce     sync.Once
}

// Config holds the client configuration.
type Config struct {
	// APIKey is the TMDB API credential. Required. It is attached to every
	// request as the api_key query parameter.
	APIKey string

	// BaseURL is the API base URL (default: DefaultBaseURL).
	BaseURL string

	// ImagesBaseURL is the image CDN base URL. The client carries it as an
	// opaque value for callers composing poster/backdrop URLs.
	ImagesBaseURL string

	// HTTPClient is the transport used for all requests. Retry and timeout
	// policy belong here, not in the client (default: 30s timeout).
	HTTPClient *http.Client

	// Cache is the optional response cache. Nil disables caching.
	Cache cache.Cache

	// CacheTTL is the expiry applied to cached responses
	// (default: cache.DefaultTTL).
	CacheTTL time.Duration
}

// DefaultConfig returns a safe default configuration without caching.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:        apiKey,
		BaseURL:       DefaultBaseURL,
		ImagesBaseURL: DefaultImagesBaseURL,
		CacheTTL:      cache.DefaultTTL,
	}
}

// New creates a new TMDB client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.ImagesBaseURL == "" {
		cfg.ImagesBaseURL = DefaultImagesBaseURL
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}

	logger := log.With().Str("component", "tmdb-client").Logger()

	return &Client{
		baseURL:       cfg.BaseURL,
		imagesBaseURL: cfg.ImagesBaseURL,
		apiKey:        cfg.APIKey,
		httpClient:    cfg.HTTPClient,
		cache:         cfg.Cache,
		cacheTTL:      cfg.CacheTTL,
		logger:        logger,
	}, nil
}

// ImagesBaseURL returns the configured image CDN base URL.
func (c *Client) ImagesBaseURL() string {
	return c.imagesBaseURL
}

// Close releases the client's transport resources. It is safe to call with
// requests in flight and safe to call more than once; release failures are
// logged, never returned.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
		c.logger.Debug().Msg("Client closed")
	})
}

// Get fetches path with query and decodes the JSON response into T, using
// the client's default cache TTL. The final variadic parameter is the ordered
// sequence of path segments, so Get(ctx, c, nil, "movie", "550") and
// Get(ctx, c, nil, segments...) are the same operation.
func Get[T any](ctx context.Context, c *Client, query url.Values, path ...string) (T, error) {
	return GetWithTTL[T](ctx, c, c.cacheTTL, query, path...)
}

// GetWithTTL is Get with an explicit cache expiry for this request.
func GetWithTTL[T any](ctx context.Context, c *Client, ttl time.Duration, query url.Values, path ...string) (T, error) {
	var zero T

	body, err := c.fetch(ctx, ttl, query, path...)
	if err != nil {
		return zero, err
	}

	v, err := decode[T](body)
	if err != nil {
		c.logger.Debug().Err(err).Strs("path", path).Msg("Response decode failed")
		return zero, err
	}

	return v, nil
}

// fetch returns the raw response body for path, honoring the cache.
//
// Pipeline: build URL, cache lookup, HTTP GET, cache write-through. A cache
// hit never touches the network. Cache write failures are logged and not
// surfaced; nothing is cached when the transport call fails.
func (c *Client) fetch(ctx context.Context, ttl time.Duration, query url.Values, path ...string) ([]byte, error) {
	reqURL, err := c.buildURL(query, path...)
	if err != nil {
		return nil, err
	}

	endpoint := endpointLabel(path)

	startTime := time.Now()
	defer func() {
		tmdbRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	if body := c.cacheLookup(ctx, reqURL, endpoint); body != nil {
		tmdbRequestsTotal.WithLabelValues(endpoint, "cache_hit").Inc()
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &InvalidURLError{Path: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("Executing TMDB request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors pass through unmodified.
		tmdbRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tmdbRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, err
	}

	tmdbRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("TMDB request error")
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	if c.cache != nil && len(body) > 0 {
		if err := c.cache.Set(ctx, reqURL, body, ttl); err != nil {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to cache response")
		} else {
			c.logger.Debug().
				Str("endpoint", endpoint).
				Dur("ttl", ttl).
				Msg("Cached response")
		}
	}

	return body, nil
}

// cacheLookup returns the cached body for url, or nil on miss. Cache errors
// other than a miss are logged and treated as a miss.
func (c *Client) cacheLookup(ctx context.Context, url, endpoint string) []byte {
	if c.cache == nil {
		return nil
	}

	body, err := c.cache.Get(ctx, url)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}
		return nil
	}

	c.logger.Debug().Str("endpoint", endpoint).Msg("Cache hit")
	return body
}
