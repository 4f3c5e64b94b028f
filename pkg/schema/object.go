package schema

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// Field pairs a field name with the schema validating it.
type Field struct {
	Name   string
	Schema Schema
}

// ObjectSchema validates string-keyed records field by field.
//
// Declared fields missing from the input fail with a FieldMissing issue;
// no default is injected. Undeclared fields pass through unvalidated.
type ObjectSchema struct {
	base
	fields []Field
}

// NewObject returns an object schema bound to rt with the given shape.
// It panics when a field uses ObjectKey as its name or has no schema.
func NewObject(rt *Runtime, fields ...Field) ObjectSchema {
	return ObjectSchema{base: base{rt: rt}, fields: mergeFields(nil, fields)}
}

// mergeFields appends fields to shape. A repeated name replaces the
// earlier schema and keeps its position.
func mergeFields(shape, fields []Field) []Field {
	out := make([]Field, len(shape), len(shape)+len(fields))
	copy(out, shape)
	for _, f := range fields {
		if f.Name == ObjectKey {
			panic(fmt.Sprintf("schema: field name %q is reserved for object-level errors", ObjectKey))
		}
		if f.Schema == nil {
			panic(fmt.Sprintf("schema: field %q has no schema", f.Name))
		}
		replaced := false
		for i := range out {
			if out[i].Name == f.Name {
				out[i].Schema = f.Schema
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns a copy of the shape in declaration order.
func (s ObjectSchema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Shape returns a copy with a new shape and the same chain.
func (s ObjectSchema) Shape(fields ...Field) ObjectSchema {
	s.fields = mergeFields(nil, fields)
	return s
}

// Extend returns a copy with fields added to the shape. Existing names are
// replaced in place.
func (s ObjectSchema) Extend(fields ...Field) ObjectSchema {
	s.fields = mergeFields(s.fields, fields)
	return s
}

// Validate checks every declared field in shape order, then runs the
// object-level validators on the record holding the processed fields.
// The returned value is a new map[string]any; the input is not modified.
// Go maps carry no key order, so only Errors.Fields follows the shape order.
func (s ObjectSchema) Validate(ctx context.Context, value any) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	record, ok := rules.Map(value)
	if !ok {
		return s.rt.mismatch(RuleInvalidType, map[string]any{"expected": "object"}, value), nil
	}

	transformed, err := s.rt.transform(ctx, s.chain, maps.Clone(record))
	if err != nil {
		return Result{}, err
	}
	current, ok := rules.Map(transformed)
	if !ok {
		return Result{}, fmt.Errorf("%w: object became %T", ErrShapeChanged, transformed)
	}

	tree := &ErrorTree{object: true}
	if err := s.validateFields(ctx, current, tree); err != nil {
		return Result{}, err
	}

	if tree.Issues, err = s.rt.check(ctx, s.chain, current); err != nil {
		return Result{}, err
	}

	if tree.IsEmpty() {
		return Result{Valid: true, Value: current}, nil
	}
	return Result{Errors: tree, Value: current}, nil
}

// validateFields delegates every declared field to its schema and writes
// the processed values back into current. Only failing fields enter tree.
func (s ObjectSchema) validateFields(ctx context.Context, current map[string]any, tree *ErrorTree) error {
	type outcome struct {
		present bool
		result  Result
	}
	outcomes := make([]outcome, len(s.fields))

	err := s.rt.each(ctx, len(s.fields), func(ctx context.Context, i int) error {
		f := s.fields[i]
		v, present := current[f.Name]
		if !present {
			return nil
		}
		res, err := f.Schema.Validate(ctx, v)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		outcomes[i] = outcome{present: true, result: res}
		return nil
	})
	if err != nil {
		return err
	}

	for i, f := range s.fields {
		o := outcomes[i]
		if !o.present {
			missing := s.rt.issue(FieldMissing, rules.Fail(RuleRequired, nil))
			tree.Fields = append(tree.Fields, FieldErrors{Name: f.Name, Errors: &ErrorTree{Issues: []Issue{missing}}})
			continue
		}
		current[f.Name] = o.result.Value
		if !o.result.Valid && !o.result.Errors.IsEmpty() {
			tree.Fields = append(tree.Fields, FieldErrors{Name: f.Name, Errors: o.result.Errors})
		}
	}
	return nil
}

func (s ObjectSchema) with(step Step) ObjectSchema {
	s.chain = s.chain.Append(step)
	return s
}

// Validator appends a registered object-level validator by rule id.
func (s ObjectSchema) Validator(rule string, opts ...rules.Options) ObjectSchema {
	return s.with(validatorStep(rule, opts))
}

// Sanitizer appends a registered sanitizer applied to the whole record.
func (s ObjectSchema) Sanitizer(rule string, opts ...rules.Options) ObjectSchema {
	return s.with(sanitizerStep(rule, opts))
}

// Custom appends an inline cross-field validator reported under name.
// It receives the record after field validation.
func (s ObjectSchema) Custom(name string, fn rules.ValidatorFunc) ObjectSchema {
	return s.with(customStep(name, fn))
}

// Transform appends an inline sanitizer over the whole record. It must
// return a string-keyed map.
func (s ObjectSchema) Transform(name string, fn rules.SanitizerFunc) ObjectSchema {
	return s.with(transformStep(name, fn))
}

// FieldsMatch requires fields a and b to hold equal values.
func (s ObjectSchema) FieldsMatch(a, b string) ObjectSchema {
	return s.with(validatorStep("validateFieldsMatch", []rules.Options{{"fields": []string{a, b}}}))
}

// RequireOneOf requires at least one of fields to be present and not empty.
func (s ObjectSchema) RequireOneOf(fields ...string) ObjectSchema {
	return s.with(validatorStep("validateRequireOneOf", []rules.Options{{"fields": slices.Clone(fields)}}))
}
