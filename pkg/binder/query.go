package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query decodes the URL query string.
func Query() Decoder {
	return func(r *http.Request) (any, error) {
		q, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		return values(q), nil
	}
}
