package client

import (
	"net/url"
	"strings"
)

// buildURL composes the full request URL: path segments are escaped and
// joined onto the base URL in order, then the query string is attached with
// the api_key credential always present. The credential wins over any
// caller-supplied api_key entry.
//
// buildURL is pure and fails before any cache or network activity.
func (c *Client) buildURL(query url.Values, path ...string) (string, error) {
	composed := strings.Join(path, "/")

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &InvalidURLError{Path: c.baseURL + "/" + composed, Err: err}
	}

	for _, segment := range path {
		if segment == "" || strings.Contains(segment, "/") {
			return "", &InvalidURLError{Path: composed}
		}
	}

	u = u.JoinPath(path...)

	q := cloneValues(query)
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// cloneValues returns a deep copy of v. Never returns nil.
func cloneValues(v url.Values) url.Values {
	cloned := make(url.Values, len(v))
	for key, values := range v {
		cloned[key] = append([]string(nil), values...)
	}
	return cloned
}

// endpointLabel normalizes a path into a metric label, with numeric IDs
// collapsed to keep cardinality bounded.
func endpointLabel(path []string) string {
	parts := make([]string, len(path))
	for i, segment := range path {
		if isNumeric(segment) {
			parts[i] = "{id}"
		} else {
			parts[i] = segment
		}
	}
	return "/" + strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
