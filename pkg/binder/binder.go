package binder

import (
	"fmt"
	"maps"
	"mime"
	"net/http"

	"github.com/dmitrymomot/forma/pkg/schema"
)

// Decoder reads request data into the schema data model.
type Decoder func(r *http.Request) (any, error)

// Validate decodes r with decode and validates the result against s.
// Request data from several decoders can be combined with Merge.
func Validate(r *http.Request, s schema.Schema, decode Decoder) (schema.Result, error) {
	value, err := decode(r)
	if err != nil {
		return schema.Result{}, err
	}
	return s.Validate(r.Context(), value)
}

// Merge combines object decoders into one. Keys of later decoders win.
// A decoder that yields a non-object value is ignored.
func Merge(decoders ...Decoder) Decoder {
	return func(r *http.Request) (any, error) {
		out := make(map[string]any)
		for _, decode := range decoders {
			v, err := decode(r)
			if err != nil {
				return nil, err
			}
			if m, ok := v.(map[string]any); ok {
				maps.Copy(out, m)
			}
		}
		return out, nil
	}
}

// mediaType returns the media type of the request without parameters.
func mediaType(r *http.Request) (string, map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, ErrMissingContentType
	}
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
	}
	return mt, params, nil
}

// values converts url.Values style data: one value becomes a string,
// repeated values become an []any of strings.
func values(src map[string][]string) map[string]any {
	out := make(map[string]any, len(src))
	for key, vals := range src {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			out[key] = items
		}
	}
	return out
}
