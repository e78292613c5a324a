package cache

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is the default expiry applied to cached responses.
const DefaultTTL = 30 * time.Minute

var (
	// ErrCacheMiss indicates the requested key was not found or has expired.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache stores raw response bodies keyed by the fully composed request URL.
//
// Get returns ErrCacheMiss for unknown keys and for keys past their expiry;
// expiry enforcement belongs to the cache, not its callers. Set converts the
// relative ttl to an absolute deadline at store time. Implementations must
// be safe for concurrent use with per-key atomicity.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
