package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValidateJSON decodes data into the JSON data model and validates it.
// Numbers decode as float64.
func ValidateJSON(ctx context.Context, s Schema, data []byte) (Result, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return Result{}, fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	return s.Validate(ctx, value)
}

// ValidateYAML decodes a YAML document and validates it. Mappings with
// non-string keys are not objects and fail the object type guard.
func ValidateYAML(ctx context.Context, s Schema, data []byte) (Result, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return Result{}, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}
	return s.Validate(ctx, value)
}
