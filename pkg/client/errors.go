package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrEmptyResponse is returned when a response carries no body.
	ErrEmptyResponse = errors.New("empty response body")

	// ErrNoNextPage is returned by Paging.Next on the last page.
	ErrNoNextPage = errors.New("no next page")

	// ErrNoPreviousPage is returned by Paging.Previous on the first page.
	ErrNoPreviousPage = errors.New("no previous page")

	// errDecodedNull indicates the body parsed as JSON but produced no value.
	errDecodedNull = errors.New("decoded to null")
)

// InvalidURLError indicates the request URL could not be composed from its
// path components and query. Non-retryable; the caller must fix the input.
type InvalidURLError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid request URL %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid request URL %q", e.Path)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a response body was present but could not be decoded
// into the requested type.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed decoding response: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusError carries a non-2xx response through to the caller. The client
// does not interpret status codes beyond success/failure; retry policy
// belongs to the transport or the caller.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB request failed: %s", e.Status)
}
