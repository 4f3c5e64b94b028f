package rules

import (
	"context"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// stringRule adapts a string predicate into a validator. Non-strings fail.
func stringRule(rule string, fn func(s string, opts Options) bool) ValidatorFunc {
	return func(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
		s, ok := value.(string)
		if !ok {
			return Fail(rule, nil), nil
		}
		return Check(fn(s, opts), rule, nil), nil
	}
}

// tagRule delegates a string check to a go-playground validator tag.
func tagRule(rule, tag string) ValidatorFunc {
	return func(ctx context.Context, e *Engine, value any, _ Options) (Verdict, error) {
		s, ok := value.(string)
		if !ok {
			return Fail(rule, nil), nil
		}
		valid, err := e.check(ctx, s, tag)
		if err != nil {
			return Verdict{}, err
		}
		return Check(valid, rule, nil), nil
	}
}

// stringSanitizer adapts a string transform. Other values pass through unchanged.
func stringSanitizer(fn func(s string, opts Options) string) SanitizerFunc {
	return func(_ context.Context, _ *Engine, value any, opts Options) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return fn(s, opts), nil
	}
}

// length measures strings in runes and sequences or maps in items.
func length(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		return utf8.RuneCountInString(v), true
	case []any:
		return len(v), true
	case map[string]any:
		return len(v), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// boundsContext builds the {min, max} message context of range rules.
func boundsContext(opts Options) map[string]any {
	params := make(map[string]any, 2)
	if v, ok := opts.Int("min"); ok {
		params["min"] = v
	}
	if v, ok := opts.Int("max"); ok {
		params["max"] = v
	}
	return params
}

// boundsVariant picks the message key of range rules: "<rule>.min",
// "<rule>.max" or the rule itself when both bounds are set.
func boundsVariant(rule string, params map[string]any) string {
	_, hasMin := params["min"]
	_, hasMax := params["max"]
	switch {
	case hasMin && !hasMax:
		return rule + ".min"
	case hasMax && !hasMin:
		return rule + ".max"
	default:
		return rule
	}
}

// failBounds returns a failed range verdict with a message resolved for
// the bounds actually configured.
func failBounds(e *Engine, rule string, opts Options) Verdict {
	params := boundsContext(opts)
	v := Fail(rule, params)
	if key := boundsVariant(rule, params); key != rule {
		v.Message = e.Message(key, params)
	}
	return v
}

// luhn reports whether a digit string carries a valid Luhn checksum.
func luhn(digits string) bool {
	if len(digits) < 2 {
		return false
	}
	sum := 0
	isEven := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if isEven {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
		isEven = !isEven
	}
	return sum%10 == 0
}

func invalidOptionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
}

func unsupportedLocale(rule, country string) error {
	return fmt.Errorf("%w: %s does not support %q", ErrUnsupportedLocale, rule, country)
}
