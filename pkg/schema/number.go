package schema

import (
	"context"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// NumberSchema validates finite numbers of any Go numeric kind.
// Other input, NaN and infinities fail with a single TypeMismatch issue
// before any step runs.
type NumberSchema struct {
	base
}

// NewNumber returns an empty number schema bound to rt.
func NewNumber(rt *Runtime) NumberSchema {
	return NumberSchema{base{rt: rt}}
}

func (s NumberSchema) Validate(ctx context.Context, value any) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	if !rules.IsNumber(value) {
		return s.rt.mismatch(RuleNumeric, nil, value), nil
	}
	return s.rt.run(ctx, s.chain, value)
}

func (s NumberSchema) with(step Step) NumberSchema {
	s.chain = s.chain.Append(step)
	return s
}

// Validator appends a registered validator by rule id.
func (s NumberSchema) Validator(rule string, opts ...rules.Options) NumberSchema {
	return s.with(validatorStep(rule, opts))
}

// Sanitizer appends a registered sanitizer by rule id.
func (s NumberSchema) Sanitizer(rule string, opts ...rules.Options) NumberSchema {
	return s.with(sanitizerStep(rule, opts))
}

// Custom appends an inline validator reported under name.
func (s NumberSchema) Custom(name string, fn rules.ValidatorFunc) NumberSchema {
	return s.with(customStep(name, fn))
}

// Transform appends an inline sanitizer reported under name.
func (s NumberSchema) Transform(name string, fn rules.SanitizerFunc) NumberSchema {
	return s.with(transformStep(name, fn))
}

// Min requires value >= n.
func (s NumberSchema) Min(n float64) NumberSchema {
	return s.with(validatorStep("validateMin", []rules.Options{{"min": n}}))
}

// Max requires value <= n.
func (s NumberSchema) Max(n float64) NumberSchema {
	return s.with(validatorStep("validateMax", []rules.Options{{"max": n}}))
}

func (s NumberSchema) ValidateInt(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateInt", opts))
}

// ValidateFloat requires a fractional part.
func (s NumberSchema) ValidateFloat(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateFloat", opts))
}

func (s NumberSchema) ValidatePositive(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validatePositive", opts))
}

func (s NumberSchema) ValidateNegative(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateNegative", opts))
}

// ValidateDivisibleBy reads the divisor option.
func (s NumberSchema) ValidateDivisibleBy(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateDivisibleBy", opts))
}

// ValidateDecimal requires a fractional part, like ValidateFloat.
func (s NumberSchema) ValidateDecimal(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateDecimal", opts))
}

func (s NumberSchema) ValidateNumeric(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateNumeric", opts))
}

func (s NumberSchema) ValidateNotEmpty(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateNotEmpty", opts))
}

// ValidateIsIn requires the value to be one of the values option.
func (s NumberSchema) ValidateIsIn(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateIsIn", opts))
}

func (s NumberSchema) ValidateIsWhitelisted(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateIsWhitelisted", opts))
}

// ValidateIsBlacklisted rejects the values option.
func (s NumberSchema) ValidateIsBlacklisted(opts ...rules.Options) NumberSchema {
	return s.with(validatorStep("validateIsBlacklisted", opts))
}
