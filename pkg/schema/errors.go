package schema

import "errors"

var (
	// ErrShapeChanged is returned when a transform turns an array or object
	// into a value of another shape.
	ErrShapeChanged = errors.New("schema: transform changed the value shape")

	// ErrDecode is returned when JSON or YAML input cannot be decoded.
	ErrDecode = errors.New("schema: failed to decode input")

	// ErrNoRuntime is returned by schemas that were not created through a
	// factory or a New* constructor.
	ErrNoRuntime = errors.New("schema: schema has no runtime")
)
