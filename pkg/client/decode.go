package client

import (
	"encoding/json"
)

// decode turns a raw response body into a value of type T.
//
// An absent body is ErrEmptyResponse. A body that parses but yields JSON
// null is a DecodeError, as is any lower-level unmarshal failure, which
// stays reachable through errors.As/Unwrap.
func decode[T any](body []byte) (T, error) {
	var zero T

	if len(body) == 0 {
		return zero, ErrEmptyResponse
	}

	// Decoding through a pointer distinguishes "null" from a zero value.
	var v *T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, &DecodeError{Err: err}
	}

	if v == nil {
		return zero, &DecodeError{Err: errDecodedNull}
	}

	return *v, nil
}
