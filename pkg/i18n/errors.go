package i18n

import "errors"

var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")
	ErrUnsupportedFileType  = errors.New("unsupported catalog file type")

	// Directory and fs.FS operations
	ErrFailedToReadDirectory = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles        = errors.New("no catalog files found")

	// Catalog construction
	ErrNilAdapter     = errors.New("catalog adapter is nil")
	ErrInvalidLocale  = errors.New("invalid locale tag")
	ErrEmptyLocaleKey = errors.New("empty locale key in catalog")
)
