package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON decodes an application/json body of at most DefaultMaxJSONSize
// bytes. Numbers decode as float64.
func JSON() Decoder {
	return JSONWithLimit(DefaultMaxJSONSize)
}

// JSONWithLimit works like JSON with a custom body size limit.
func JSONWithLimit(maxBytes int64) Decoder {
	return func(r *http.Request) (any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		mt, _, err := mediaType(r)
		if err != nil {
			return nil, fmt.Errorf("%w: expected application/json", err)
		}
		if mt != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > maxBytes {
			return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, maxBytes)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		var value any
		if err := decoder.Decode(&value); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		return value, nil
	}
}
