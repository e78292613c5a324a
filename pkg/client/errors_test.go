package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidURLError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *InvalidURLError
		want string
	}{
		{
			name: "without cause",
			err:  &InvalidURLError{Path: "movies/"},
			want: `invalid request URL "movies/"`,
		},
		{
			name: "with cause",
			err:  &InvalidURLError{Path: "://x", Err: errors.New("missing protocol scheme")},
			want: `invalid request URL "://x": missing protocol scheme`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidURLError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("request: %w", &InvalidURLError{Path: "x", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should reach the wrapped cause")
	}

	var urlErr *InvalidURLError
	if !errors.As(err, &urlErr) {
		t.Fatal("errors.As() should find *InvalidURLError")
	}
	if urlErr.Path != "x" {
		t.Errorf("Path = %q, want %q", urlErr.Path, "x")
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should reach the wrapped cause")
	}
	if want := "failed decoding response: unexpected end of JSON input"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{StatusCode: 404, Status: "404 Not Found", Body: []byte(`{}`)}

	if want := "TMDB request failed: 404 Not Found"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSentinelErrors(t *testing.T) {
	if !errors.Is(fmt.Errorf("get: %w", ErrEmptyResponse), ErrEmptyResponse) {
		t.Error("wrapped ErrEmptyResponse not matched by errors.Is")
	}
	if errors.Is(ErrNoNextPage, ErrNoPreviousPage) {
		t.Error("pagination sentinels must be distinct")
	}
}
