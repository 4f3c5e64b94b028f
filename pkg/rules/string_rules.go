package rules

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
)

var patternCache sync.Map // pattern string -> *regexp.Regexp

func validateLength(_ context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	n, ok := length(value)
	if !ok {
		return Fail("validateLength", boundsContext(opts)), nil
	}
	minLen := opts.IntOr("min", 0)
	maxLen, hasMax := opts.Int("max")
	if n < minLen || (hasMax && n > maxLen) {
		return failBounds(e, "validateLength", opts), nil
	}
	return Pass("validateLength"), nil
}

func validateByteLength(_ context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Fail("validateByteLength", boundsContext(opts)), nil
	}
	minLen := opts.IntOr("min", 0)
	maxLen, hasMax := opts.Int("max")
	if len(s) < minLen || (hasMax && len(s) > maxLen) {
		return failBounds(e, "validateByteLength", opts), nil
	}
	return Pass("validateByteLength"), nil
}

// validateNotEmpty rejects nil, blank strings and empty sequences or maps.
// Numbers and booleans are never empty.
func validateNotEmpty(_ context.Context, _ *Engine, value any, _ Options) (Verdict, error) {
	switch v := value.(type) {
	case nil:
		return Fail("validateNotEmpty", nil), nil
	case string:
		return Check(strings.TrimSpace(v) != "", "validateNotEmpty", nil), nil
	}
	if n, ok := length(value); ok {
		return Check(n > 0, "validateNotEmpty", nil), nil
	}
	return Pass("validateNotEmpty"), nil
}

func validateContains(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	seed, ok := opts.String("seed")
	if !ok {
		return Verdict{}, invalidOptionf("seed is required")
	}
	params := map[string]any{"seed": seed}
	s, ok := value.(string)
	if !ok {
		return Fail("validateContains", params), nil
	}
	if opts.Bool("ignoreCase") {
		s, seed = strings.ToLower(s), strings.ToLower(seed)
	}
	return Check(strings.Count(s, seed) >= opts.IntOr("minOccurrences", 1), "validateContains", params), nil
}

func validateStartsWith(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	prefix, ok := opts.String("prefix")
	if !ok {
		return Verdict{}, invalidOptionf("prefix is required")
	}
	s, isString := value.(string)
	return Check(isString && strings.HasPrefix(s, prefix), "validateStartsWith", map[string]any{"prefix": prefix}), nil
}

func validateEndsWith(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	suffix, ok := opts.String("suffix")
	if !ok {
		return Verdict{}, invalidOptionf("suffix is required")
	}
	s, isString := value.(string)
	return Check(isString && strings.HasSuffix(s, suffix), "validateEndsWith", map[string]any{"suffix": suffix}), nil
}

func validateEqualsTo(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	comparison, ok := opts["comparison"]
	if !ok {
		return Verdict{}, invalidOptionf("comparison is required")
	}
	return Check(equalValues(value, comparison), "validateEqualsTo", map[string]any{"comparison": comparison}), nil
}

func validateMatches(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	pattern, ok := opts.String("pattern")
	if !ok {
		return Verdict{}, invalidOptionf("pattern is required")
	}
	if opts.Bool("ignoreCase") {
		pattern = "(?i)" + pattern
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return Verdict{}, err
	}
	params := map[string]any{"pattern": pattern}
	s, ok := value.(string)
	return Check(ok && re.MatchString(s), "validateMatches", params), nil
}

// validateAlpha accepts ASCII letters, or any letter with the unicode option.
// Characters listed in ignore are removed before checking.
func validateAlpha(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	return letterRule(ctx, e, value, opts, "validateAlpha", "alpha", unicode.IsLetter)
}

func validateAlphanumeric(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	return letterRule(ctx, e, value, opts, "validateAlphanumeric", "alphanum", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func letterRule(ctx context.Context, e *Engine, value any, opts Options, rule, tag string, isAllowed func(rune) bool) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Fail(rule, nil), nil
	}
	if ignore, ok := opts.String("ignore"); ok {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(ignore, r) {
				return -1
			}
			return r
		}, s)
	}

	if !opts.Bool("unicode") {
		valid, err := e.check(ctx, s, tag)
		if err != nil {
			return Verdict{}, err
		}
		return Check(valid, rule, nil), nil
	}

	if s == "" {
		return Fail(rule, nil), nil
	}
	for _, r := range s {
		if !isAllowed(r) {
			return Fail(rule, nil), nil
		}
	}
	return Pass(rule), nil
}

func isSurrogatePair(s string, _ Options) bool {
	for _, r := range s {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidOption, pattern, err)
	}
	patternCache.Store(pattern, re)
	return re, nil
}

// equalValues compares numbers by value regardless of their Go kind.
func equalValues(a, b any) bool {
	fa, aNum := Float64(a)
	fb, bNum := Float64(b)
	if aNum && bNum {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}
