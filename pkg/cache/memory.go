package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry holds a cached body with its absolute expiry deadline.
type memoryEntry struct {
	data    []byte
	expires time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expires)
}

// MemoryCache is an in-process Cache backed by a map. Expired entries are
// deleted lazily when read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves the body cached under key.
// Returns ErrCacheMiss if the key is unknown or the entry has expired.
func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	if entry.expired(m.now()) {
		delete(m.entries, key)
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues("memory").Inc()
	return entry.data, nil
}

// Set stores value under key, converting the relative ttl to an absolute
// deadline now. A non-positive ttl stores nothing.
func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		data:    append([]byte(nil), value...),
		expires: m.now().Add(ttl),
	}

	CacheSize.WithLabelValues("memory").Add(float64(len(value)))
	return nil
}

// Delete removes the entry for key, if present.
func (m *MemoryCache) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len returns the number of entries currently held, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
