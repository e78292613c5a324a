package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yurtaev/tmdb/internal/testutil"
	"github.com/yurtaev/tmdb/pkg/cache"
	"github.com/yurtaev/tmdb/pkg/client"
)

func newProxyClient(t *testing.T, mock *testutil.MockTMDB) *client.Client {
	t.Helper()

	c, err := client.New(client.Config{
		APIKey:  "proxy-key",
		BaseURL: mock.URL(),
		Cache:   cache.NewMemoryCache(),
	})
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	t.Cleanup(c.Close)

	return c
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestProxyHandler_Passthrough(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()
	mock.SetJSON("/movie/550", `{"id":550,"title":"Fight Club"}`)

	handler := proxyHandler(newProxyClient(t, mock), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/3/movie/550", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Fight Club") {
		t.Errorf("body = %q, want movie payload", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
}

func TestProxyHandler_StripsCallerAPIKey(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()
	mock.SetJSON("/movie/550", `{"id":550}`)

	handler := proxyHandler(newProxyClient(t, mock), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/3/movie/550?api_key=caller-key", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := mock.LastQuery.Get("api_key"); got != "proxy-key" {
		t.Errorf("upstream api_key = %q, want %q", got, "proxy-key")
	}
}

func TestProxyHandler_UpstreamStatusForwarded(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()

	handler := proxyHandler(newProxyClient(t, mock), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/3/movie/0", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "status_message") {
		t.Errorf("body = %q, want upstream error payload", rec.Body.String())
	}
}

func TestProxyHandler_EmptyPath(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()

	handler := proxyHandler(newProxyClient(t, mock), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/3/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := mock.Requests(); got != 0 {
		t.Errorf("upstream calls = %d, want 0", got)
	}
}

func TestProxyHandler_CachesRepeatedRequests(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()
	mock.SetJSON("/movie/550", `{"id":550}`)

	handler := proxyHandler(newProxyClient(t, mock), zerolog.Nop())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/3/movie/550", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, rec.Code)
		}
	}

	if got := mock.Requests(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TMDB_PROXY_TEST_VAR", "set")

	if got := getEnv("TMDB_PROXY_TEST_VAR", "default"); got != "set" {
		t.Errorf("getEnv() = %q, want %q", got, "set")
	}

	os.Unsetenv("TMDB_PROXY_TEST_VAR")
	if got := getEnv("TMDB_PROXY_TEST_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want %q", got, "default")
	}
}
