package rules

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRegex  = regexp.MustCompile(`^[0-9]+$`)
	decimalRegex = regexp.MustCompile(`^[-+]?(?:[0-9]+)?(?:\.([0-9]+))?$`)
)

// numberOf accepts numbers and, when parseStrings is set, numeric strings.
func numberOf(value any, parseStrings bool) (float64, bool) {
	if s, ok := value.(string); ok {
		if !parseStrings {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		value = f
	}
	f, ok := Float64(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// validateNumeric accepts finite numbers and numeric strings.
// With noSymbols, strings must be plain digits.
func validateNumeric(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Check(IsNumber(value), "validateNumeric", nil), nil
	}
	if opts.Bool("noSymbols") {
		return Check(digitsRegex.MatchString(s), "validateNumeric", nil), nil
	}
	valid, err := e.check(ctx, s, "numeric")
	if err != nil {
		return Verdict{}, err
	}
	return Check(valid, "validateNumeric", nil), nil
}

// validateDecimal accepts decimal strings ("10", "10.5", ".5"); maxDecimals caps
// the fraction digits. For numbers it requires a fractional part.
func validateDecimal(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		f, ok := numberOf(value, false)
		return Check(ok && f != math.Trunc(f), "validateDecimal", nil), nil
	}

	m := decimalRegex.FindStringSubmatch(s)
	if m == nil || strings.Trim(s, "+-.") == "" {
		return Fail("validateDecimal", nil), nil
	}
	if maxDecimals, ok := opts.Int("maxDecimals"); ok && len(m[1]) > maxDecimals {
		return Fail("validateDecimal", map[string]any{"maxDecimals": maxDecimals}), nil
	}
	if opts.Bool("forceDecimal") && m[1] == "" {
		return Fail("validateDecimal", nil), nil
	}
	return Pass("validateDecimal"), nil
}

func validateDivisibleBy(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	divisor, _ := opts.Float("divisor")
	params := map[string]any{"divisor": opts["divisor"]}
	f, ok := numberOf(value, true)
	if !ok || divisor == 0 {
		return Fail("validateDivisibleBy", params), nil
	}
	return Check(math.Mod(f, divisor) == 0, "validateDivisibleBy", params), nil
}

func validateInt(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	if s, ok := value.(string); ok {
		_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return Check(err == nil, "validateInt", nil), nil
	}
	f, ok := numberOf(value, false)
	return Check(ok && f == math.Trunc(f), "validateInt", nil), nil
}

func validateFloat(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	f, ok := numberOf(value, true)
	return Check(ok && f != math.Trunc(f), "validateFloat", nil), nil
}

func validatePositive(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	f, ok := numberOf(value, false)
	return Check(ok && f > 0, "validatePositive", nil), nil
}

func validateNegative(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	f, ok := numberOf(value, false)
	return Check(ok && f < 0, "validateNegative", nil), nil
}

func validateMin(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	limit, ok := opts.Float("min")
	if !ok {
		return Verdict{}, invalidOptionf("min is required")
	}
	f, ok := numberOf(value, false)
	return Check(ok && f >= limit, "validateMin", map[string]any{"min": opts["min"]}), nil
}

func validateMax(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	limit, ok := opts.Float("max")
	if !ok {
		return Verdict{}, invalidOptionf("max is required")
	}
	f, ok := numberOf(value, false)
	return Check(ok && f <= limit, "validateMax", map[string]any{"max": opts["max"]}), nil
}

func validateIsIn(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	return membershipRule("validateIsIn", value, opts, true)
}

func validateIsWhitelisted(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	return membershipRule("validateIsWhitelisted", value, opts, true)
}

func validateIsBlacklisted(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	return membershipRule("validateIsBlacklisted", value, opts, false)
}

// membershipRule fails when values is missing, like an empty allow list.
func membershipRule(rule string, value any, opts Options, wantMember bool) (Verdict, error) {
	values, ok := opts.Values("values")
	if !ok {
		return Fail(rule, map[string]any{"values": []any{}}), nil
	}
	found := false
	for _, candidate := range values {
		if equalValues(value, candidate) {
			found = true
			break
		}
	}
	return Check(found == wantMember, rule, map[string]any{"values": values}), nil
}

// validatePort accepts 0-65535 as a digit string or an integral number.
func validatePort(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	if s, ok := value.(string); ok {
		if !digitsRegex.MatchString(s) {
			return Fail("validatePort", nil), nil
		}
		n, err := strconv.Atoi(s)
		return Check(err == nil && n <= 65535, "validatePort", nil), nil
	}
	f, ok := numberOf(value, false)
	return Check(ok && f == math.Trunc(f) && f >= 0 && f <= 65535, "validatePort", nil), nil
}
