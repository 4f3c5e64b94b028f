// Package binder decodes HTTP request data into the dynamic data model
// validated by forma schemas: map[string]any objects, []any arrays,
// strings, float64 numbers and bools.
//
// Decoders exist for JSON bodies, urlencoded and multipart forms and query
// strings. Form and query parameters with one value decode to a string,
// repeated parameters to an []any of strings. Uploaded files decode to an
// object with the sanitized "filename", the "size" in bytes and the
// detected "contentType".
//
// # Basic Usage
//
//	signup := f.Object(
//	    forma.Field("email", f.String().Trim().NormalizeEmail().ValidateEmail()),
//	    forma.Field("tags", f.Array(f.String().ToSlug())),
//	)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    res, err := binder.Validate(r, signup, binder.Form())
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    if !res.Valid {
//	        w.WriteHeader(http.StatusUnprocessableEntity)
//	        _ = json.NewEncoder(w).Encode(res.Errors)
//	        return
//	    }
//	    // use res.Value
//	}
//
// # Error Handling
//
// Decoding failures wrap ErrUnsupportedMediaType, ErrMissingContentType,
// ErrFailedToParseJSON, ErrFailedToParseForm or ErrFailedToParseQuery.
// Validation failures are never errors; they are reported in the result.
package binder
