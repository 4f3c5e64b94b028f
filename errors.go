package forma

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid forma configuration")
	ErrLoadCatalog   = errors.New("failed to load message catalog")
)
