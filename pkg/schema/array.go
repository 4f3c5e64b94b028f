package schema

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// ArraySchema validates sequences and, with an item schema, every element.
type ArraySchema struct {
	base
	item Schema
}

// NewArray returns an array schema bound to rt. item may be nil.
func NewArray(rt *Runtime, item Schema) ArraySchema {
	return ArraySchema{base: base{rt: rt}, item: item}
}

// Item returns the element schema, or nil.
func (s ArraySchema) Item() Schema {
	return s.item
}

// Items returns a copy validating elements with item.
func (s ArraySchema) Items(item Schema) ArraySchema {
	s.item = item
	return s
}

// Validate checks the sequence as a whole, then each element.
//
// Any Go slice or array is accepted and copied into []any; the input is
// never modified. Element results are merged by index, so the outcome is
// the same with or without concurrency.
func (s ArraySchema) Validate(ctx context.Context, value any) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	items, ok := rules.Slice(value)
	if !ok {
		return s.rt.mismatch(RuleInvalidType, map[string]any{"expected": "array"}, value), nil
	}

	transformed, err := s.rt.transform(ctx, s.chain, slices.Clone(items))
	if err != nil {
		return Result{}, err
	}
	current, ok := rules.Slice(transformed)
	if !ok {
		return Result{}, fmt.Errorf("%w: array became %T", ErrShapeChanged, transformed)
	}

	issues, err := s.rt.check(ctx, s.chain, current)
	if err != nil {
		return Result{}, err
	}

	var trees []*ErrorTree
	if s.item != nil {
		if trees, err = s.validateItems(ctx, current); err != nil {
			return Result{}, err
		}
	}

	if len(issues) == 0 && trees == nil {
		return Result{Valid: true, Value: current}, nil
	}
	return Result{Errors: &ErrorTree{Issues: issues, Items: trees}, Value: current}, nil
}

// validateItems replaces every element with its transformed value and
// returns the sparse error side channel, trailing nils trimmed.
func (s ArraySchema) validateItems(ctx context.Context, current []any) ([]*ErrorTree, error) {
	trees := make([]*ErrorTree, len(current))
	err := s.rt.each(ctx, len(current), func(ctx context.Context, i int) error {
		res, err := s.item.Validate(ctx, current[i])
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		current[i] = res.Value
		if !res.Valid {
			trees[i] = res.Errors
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for len(trees) > 0 && trees[len(trees)-1] == nil {
		trees = trees[:len(trees)-1]
	}
	if len(trees) == 0 {
		return nil, nil
	}
	return trees, nil
}

func (s ArraySchema) with(step Step) ArraySchema {
	s.chain = s.chain.Append(step)
	return s
}

// Validator appends a registered validator by rule id. It receives the
// whole sequence.
func (s ArraySchema) Validator(rule string, opts ...rules.Options) ArraySchema {
	return s.with(validatorStep(rule, opts))
}

// Sanitizer appends a registered sanitizer applied to the whole sequence.
func (s ArraySchema) Sanitizer(rule string, opts ...rules.Options) ArraySchema {
	return s.with(sanitizerStep(rule, opts))
}

// Custom appends an inline validator reported under name.
func (s ArraySchema) Custom(name string, fn rules.ValidatorFunc) ArraySchema {
	return s.with(customStep(name, fn))
}

// Transform appends an inline sanitizer over the whole sequence. It must
// return a sequence.
func (s ArraySchema) Transform(name string, fn rules.SanitizerFunc) ArraySchema {
	return s.with(transformStep(name, fn))
}

// MinLength requires at least n elements.
func (s ArraySchema) MinLength(n int) ArraySchema {
	return s.with(validatorStep("validateLength", []rules.Options{{"min": n}}))
}

// MaxLength allows at most n elements.
func (s ArraySchema) MaxLength(n int) ArraySchema {
	return s.with(validatorStep("validateLength", []rules.Options{{"max": n}}))
}

func (s ArraySchema) ValidateLength(opts ...rules.Options) ArraySchema {
	return s.with(validatorStep("validateLength", opts))
}

func (s ArraySchema) ValidateNotEmpty(opts ...rules.Options) ArraySchema {
	return s.with(validatorStep("validateNotEmpty", opts))
}

// ValidateUnique rejects sequences holding two equal elements.
func (s ArraySchema) ValidateUnique(opts ...rules.Options) ArraySchema {
	return s.with(validatorStep("validateUnique", opts))
}
