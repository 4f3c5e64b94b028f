package rules

import (
	"context"
	"reflect"
)

// validateUnique fails when a sequence holds two equal items.
func validateUnique(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	items, ok := Slice(value)
	if !ok {
		return Fail("validateUnique", nil), nil
	}
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if equalValues(items[i], items[j]) {
				return Fail("validateUnique", map[string]any{"index": i}), nil
			}
		}
	}
	return Pass("validateUnique"), nil
}

// validateFieldsMatch requires the two fields named in fields to hold equal values.
func validateFieldsMatch(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	fields := opts.Strings("fields")
	if len(fields) != 2 {
		return Verdict{}, invalidOptionf("fields must name exactly two fields")
	}
	params := map[string]any{"first": fields[0], "second": fields[1]}

	record, ok := Map(value)
	if !ok {
		return Fail("validateFieldsMatch", params), nil
	}
	a, okA := record[fields[0]]
	b, okB := record[fields[1]]
	return Check(okA && okB && reflect.DeepEqual(a, b), "validateFieldsMatch", params), nil
}

// validateRequireOneOf requires at least one listed field to be present and not empty.
func validateRequireOneOf(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	fields := opts.Strings("fields")
	if len(fields) == 0 {
		return Verdict{}, invalidOptionf("fields is required")
	}
	params := map[string]any{"fields": fields}

	record, ok := Map(value)
	if !ok {
		return Fail("validateRequireOneOf", params), nil
	}
	for _, name := range fields {
		v, present := record[name]
		if !present {
			continue
		}
		verdict, err := validateNotEmpty(ctx, e, v, nil)
		if err != nil {
			return Verdict{}, err
		}
		if verdict.Valid {
			return Pass("validateRequireOneOf"), nil
		}
	}
	return Fail("validateRequireOneOf", params), nil
}
