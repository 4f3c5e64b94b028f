package rules

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	// Frequently compromised passwords, compared case-insensitively.
	commonPasswords = map[string]bool{
		"password": true, "password1": true, "password123": true, "password!": true,
		"123456": true, "12345678": true, "123456789": true, "1234567890": true,
		"qwerty": true, "qwerty123": true, "qwertyuiop": true, "abc123": true,
		"letmein": true, "welcome": true, "welcome1": true, "admin": true,
		"admin123": true, "iloveyou": true, "monkey": true, "dragon": true,
		"sunshine": true, "princess": true, "football": true, "trustno1": true,
		"p@ssw0rd": true, "passw0rd": true, "master": true, "secret": true,
	}
)

// PasswordPolicy describes the validateStrongPassword requirements.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // minimum number of different character classes
	RejectCommon     bool
}

// DefaultPasswordPolicy returns the NIST-aligned default: 8-128 chars with
// upper, lower, digit and special characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
		RejectCommon:     true,
	}
}

// policyFromOptions overlays option keys named after the policy fields
// (minLength, requireSpecial, ...) on the default policy.
func policyFromOptions(opts Options) PasswordPolicy {
	p := DefaultPasswordPolicy()
	p.MinLength = opts.IntOr("minLength", p.MinLength)
	p.MaxLength = opts.IntOr("maxLength", p.MaxLength)
	p.RequireUppercase = opts.BoolOr("requireUppercase", p.RequireUppercase)
	p.RequireLowercase = opts.BoolOr("requireLowercase", p.RequireLowercase)
	p.RequireDigits = opts.BoolOr("requireDigits", p.RequireDigits)
	p.RequireSpecial = opts.BoolOr("requireSpecial", p.RequireSpecial)
	p.MinCharClasses = opts.IntOr("minCharClasses", p.MinCharClasses)
	p.RejectCommon = opts.BoolOr("rejectCommon", p.RejectCommon)
	return p
}

// Check reports whether password satisfies the policy.
func (p PasswordPolicy) Check(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < p.MinLength || (p.MaxLength > 0 && n > p.MaxLength) {
		return false
	}
	if p.RejectCommon && commonPasswords[strings.ToLower(password)] {
		return false
	}

	hasUpper := uppercaseRegex.MatchString(password)
	hasLower := lowercaseRegex.MatchString(password)
	hasDigit := digitRegex.MatchString(password)
	hasSpecial := specialCharRegex.MatchString(password)

	if (p.RequireUppercase && !hasUpper) ||
		(p.RequireLowercase && !hasLower) ||
		(p.RequireDigits && !hasDigit) ||
		(p.RequireSpecial && !hasSpecial) {
		return false
	}

	classes := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			classes++
		}
	}
	return classes >= p.MinCharClasses
}

func validateStrongPassword(_ context.Context, _ *Engine, value any, opts Options) (Verdict, error) {
	p := policyFromOptions(opts)
	params := map[string]any{"minLength": p.MinLength, "maxLength": p.MaxLength}
	s, ok := value.(string)
	return Check(ok && p.Check(s), "validateStrongPassword", params), nil
}
