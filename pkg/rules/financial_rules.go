package rules

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

var (
	ibanRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
	isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

	// IBAN lengths per country for the SEPA area and common trade partners.
	ibanLengths = map[string]int{
		"AD": 24, "AT": 20, "BE": 16, "BG": 22, "BR": 29, "CH": 21, "CY": 28,
		"CZ": 24, "DE": 22, "DK": 18, "EE": 20, "ES": 24, "FI": 18, "FR": 27,
		"GB": 22, "GR": 27, "HR": 21, "HU": 28, "IE": 22, "IS": 26, "IT": 27,
		"LI": 21, "LT": 20, "LU": 20, "LV": 21, "MC": 27, "MT": 31, "NL": 18,
		"NO": 15, "PL": 28, "PT": 25, "RO": 24, "SE": 24, "SI": 19, "SK": 24,
		"SM": 27, "TR": 26, "UA": 29,
	}
)

// validateCreditCard checks the Luhn checksum; space separated groups are allowed.
func validateCreditCard(ctx context.Context, e *Engine, value any, _ Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Fail("validateCreditCard", nil), nil
	}
	valid, err := e.check(ctx, strings.ReplaceAll(s, "-", " "), "credit_card")
	if err != nil {
		return Verdict{}, err
	}
	return Check(valid, "validateCreditCard", nil), nil
}

// validateCurrency checks monetary amounts like "$1,000.00".
// Options: symbol (default "$"), requireSymbol, allowNegatives (default true)
// and code, which switches to ISO 4217 currency codes instead.
func validateCurrency(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	s, ok := value.(string)
	if !ok {
		return Fail("validateCurrency", nil), nil
	}

	if opts.Bool("code") {
		valid, err := e.check(ctx, strings.ToUpper(s), "iso4217")
		if err != nil {
			return Verdict{}, err
		}
		return Check(valid, "validateCurrency", nil), nil
	}

	symbol := opts.StringOr("symbol", "$")
	re, err := compilePattern(currencyPattern(symbol, opts.Bool("requireSymbol"), opts.BoolOr("allowNegatives", true)))
	if err != nil {
		return Verdict{}, err
	}
	return Check(re.MatchString(s), "validateCurrency", map[string]any{"symbol": symbol}), nil
}

func currencyPattern(symbol string, requireSymbol, allowNegatives bool) string {
	var b strings.Builder
	b.WriteString("^")
	if allowNegatives {
		b.WriteString("-?")
	}
	b.WriteString("(?:")
	b.WriteString(regexp.QuoteMeta(symbol))
	b.WriteString(")")
	if !requireSymbol {
		b.WriteString("?")
	}
	b.WriteString(`\s?(?:[0-9]{1,3}(?:,[0-9]{3})+|[0-9]+)(?:\.[0-9]{1,2})?$`)
	return b.String()
}

// isIBAN checks the structure, the country length when known, and the
// ISO 7064 mod 97 checksum.
func isIBAN(s string, _ Options) bool {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if !ibanRegex.MatchString(s) {
		return false
	}
	if n, ok := ibanLengths[s[:2]]; ok && len(s) != n {
		return false
	}

	rearranged := s[4:] + s[:4]
	remainder := 0
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			remainder = (remainder*100 + int(r-'A') + 10) % 97
			continue
		}
		remainder = (remainder*10 + int(r-'0')) % 97
	}
	return remainder == 1
}

// isISIN checks the format and the Luhn checksum over the letter-expanded code.
func isISIN(s string, _ Options) bool {
	if !isinRegex.MatchString(s) {
		return false
	}
	var digits strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			digits.WriteString(strconv.Itoa(int(r-'A') + 10))
			continue
		}
		digits.WriteRune(r)
	}
	return luhn(digits.String())
}
