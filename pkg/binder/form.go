package binder

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// RFC 2046 boundary characters, 1 to 70 of them.
var boundaryRegex = regexp.MustCompile(`^[0-9A-Za-z'()+_,\-./:=? ]{0,69}[0-9A-Za-z'()+_,\-./:=?]$`)

// Form decodes application/x-www-form-urlencoded and multipart/form-data
// bodies. Query parameters are not included; combine with Query through
// Merge when needed.
//
// Uploaded files decode to objects:
//
//	{"filename": "avatar.png", "size": 1024, "contentType": "image/png"}
//
// A single file is one object, several files under the same name an []any.
func Form() Decoder {
	return FormWithMaxMemory(DefaultMaxMemory)
}

// FormWithMaxMemory works like Form with a custom multipart memory limit.
func FormWithMaxMemory(maxMemory int64) Decoder {
	return func(r *http.Request) (any, error) {
		mt, params, err := mediaType(r)
		if err != nil {
			return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", err)
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			return values(r.PostForm), nil

		case "multipart/form-data":
			if !boundaryRegex.MatchString(params["boundary"]) {
				return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}
			// Note: Multipart form cleanup is left to the caller so that
			// r.MultipartForm stays usable after decoding.
			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
			out := values(r.MultipartForm.Value)
			for name, headers := range r.MultipartForm.File {
				files := make([]any, 0, len(headers))
				for _, fh := range headers {
					file, err := describeFile(fh)
					if err != nil {
						return nil, fmt.Errorf("%w: file %s: %w", ErrFailedToParseForm, name, err)
					}
					files = append(files, file)
				}
				switch len(files) {
				case 0:
				case 1:
					out[name] = files[0]
				default:
					out[name] = files
				}
			}
			return out, nil

		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}
	}
}

// describeFile returns the object representation of an uploaded file.
// The content type is detected from the file content, not the client header.
func describeFile(fh *multipart.FileHeader) (map[string]any, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"filename":    sanitizeFilename(fh.Filename),
		"size":        float64(fh.Size),
		"contentType": mt.String(),
	}, nil
}

// sanitizeFilename strips directory components and null bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
