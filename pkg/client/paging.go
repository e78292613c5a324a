package client

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Page is one page of a paginated TMDB collection, immutable once decoded.
// TMDB paginates by page number: the page and total_pages fields are the
// forward/backward links.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Paging is a lazy cursor over a paginated collection. It wraps the current
// page plus the originating request, so subsequent pages can be derived and
// fetched on demand through the owning client.
//
// A Paging is an immutable snapshot: advancing returns a new cursor and
// never mutates the current one, so several goroutines can iterate forward
// from a shared starting page. Re-issuing Next from the same cursor
// re-fetches (subject to the cache) rather than replaying a buffer.
type Paging[T any] struct {
	client *Client
	page   Page[T]
	path   []string
	query  url.Values
	ttl    time.Duration
}

// GetPage fetches the first (or query-selected) page of a paginated
// collection and wraps it in a cursor, using the client's default cache TTL.
func GetPage[T any](ctx context.Context, c *Client, query url.Values, path ...string) (*Paging[T], error) {
	return GetPageWithTTL[T](ctx, c, c.cacheTTL, query, path...)
}

// GetPageWithTTL is GetPage with an explicit cache expiry for this request
// and every page derived from the returned cursor.
func GetPageWithTTL[T any](ctx context.Context, c *Client, ttl time.Duration, query url.Values, path ...string) (*Paging[T], error) {
	page, err := GetWithTTL[Page[T]](ctx, c, ttl, query, path...)
	if err != nil {
		return nil, err
	}

	return &Paging[T]{
		client: c,
		page:   page,
		path:   append([]string(nil), path...),
		query:  cloneValues(query),
		ttl:    ttl,
	}, nil
}

// Items returns the ordered items of the current page. No fetch occurs.
func (p *Paging[T]) Items() []T {
	return p.page.Results
}

// PageNumber returns the 1-based number of the current page.
func (p *Paging[T]) PageNumber() int {
	return p.page.Page
}

// TotalPages returns the total number of pages in the collection.
func (p *Paging[T]) TotalPages() int {
	return p.page.TotalPages
}

// TotalResults returns the total number of items across all pages.
func (p *Paging[T]) TotalResults() int {
	return p.page.TotalResults
}

// HasNext reports whether a page follows the current one.
func (p *Paging[T]) HasNext() bool {
	return p.page.Page > 0 && p.page.Page < p.page.TotalPages
}

// HasPrevious reports whether a page precedes the current one.
func (p *Paging[T]) HasPrevious() bool {
	return p.page.Page > 1
}

// Next fetches the following page and returns a new cursor wrapping it.
// Returns ErrNoNextPage on the last page.
func (p *Paging[T]) Next(ctx context.Context) (*Paging[T], error) {
	if !p.HasNext() {
		return nil, ErrNoNextPage
	}
	return p.fetchPage(ctx, p.page.Page+1)
}

// Previous fetches the preceding page and returns a new cursor wrapping it.
// Returns ErrNoPreviousPage on the first page.
func (p *Paging[T]) Previous(ctx context.Context) (*Paging[T], error) {
	if !p.HasPrevious() {
		return nil, ErrNoPreviousPage
	}
	return p.fetchPage(ctx, p.page.Page-1)
}

func (p *Paging[T]) fetchPage(ctx context.Context, number int) (*Paging[T], error) {
	query := cloneValues(p.query)
	query.Set("page", strconv.Itoa(number))
	return GetPageWithTTL[T](ctx, p.client, p.ttl, query, p.path...)
}
