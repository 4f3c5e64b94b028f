package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/forma/pkg/i18n"
)

var (
	isrcRegex = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{3}[0-9]{2}[0-9]{5}$`)
	imeiRegex = regexp.MustCompile(`^[0-9]{15}$`)

	licensePlates = map[string]*regexp.Regexp{
		"AR": regexp.MustCompile(`^(?:[A-Z]{2} ?[0-9]{3} ?[A-Z]{2}|[A-Z]{3} ?[0-9]{3})$`),
		"BR": regexp.MustCompile(`^[A-Z]{3}[ -]?[0-9][A-Z0-9][0-9]{2}$`),
		"CZ": regexp.MustCompile(`^(?:(?:[ABCDEFHIJKLMNPRSTUVXYZ]|[0-9])-?){5,8}$`),
		"DE": regexp.MustCompile(`^[A-ZÄÖÜ]{1,3}[ -]?[A-Z]{1,2}[ -]?[0-9]{1,4}[EH]?$`),
		"FI": regexp.MustCompile(`^[A-Z]{2,3}[ -]?[0-9]{1,3}$`),
		"HU": regexp.MustCompile(`^[A-Z]{3}-?[0-9]{3}$`),
		"IN": regexp.MustCompile(`^[A-Z]{2}[ -]?[0-9]{1,2}[ -]?[A-Z]{1,3}[ -]?[0-9]{4}$`),
		"PT": regexp.MustCompile(`^(?:[A-Z]{2}|[0-9]{2})[ ·-]?(?:[A-Z]{2}|[0-9]{2})[ ·-]?(?:[A-Z]{2}|[0-9]{2})$`),
		"SE": regexp.MustCompile(`^[A-HJ-PR-UW-Z]{3} ?[0-9]{2}[A-HJ-PR-UW-Z1-9]$`),
	}

	anyPostalCountries = []string{"US", "BR", "GB", "DE", "FR", "PT", "ES", "IT", "NL", "CA", "JP", "IN", "AU"}
)

// country resolves the country a locale-dependent rule applies to: the
// locale option (a tag like "pt-BR" or a bare "BR"), else the engine locale.
func country(e *Engine, opts Options) (string, bool) {
	if locale, ok := opts.String("locale"); ok {
		if locale == "any" {
			return "any", true
		}
		if len(locale) == 2 {
			return strings.ToUpper(locale), true
		}
		return i18n.Region(locale)
	}
	return e.Region()
}

func isIMEI(s string, opts Options) bool {
	if opts.Bool("allowHyphens") {
		s = strings.ReplaceAll(s, "-", "")
	}
	return imeiRegex.MatchString(s) && luhn(s)
}

func isISRC(s string, _ Options) bool {
	return isrcRegex.MatchString(strings.ToUpper(strings.ReplaceAll(s, "-", "")))
}

// validateTaxID supports US (SSN, EIN) and BR (CPF, CNPJ) identifiers.
func validateTaxID(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	c, _ := country(e, opts)
	params := map[string]any{"country": c}
	s, ok := value.(string)
	if !ok {
		return Fail("validateTaxId", params), nil
	}

	switch c {
	case "US":
		for _, tag := range []string{"ssn", "ein"} {
			valid, err := e.check(ctx, s, tag)
			if err != nil {
				return Verdict{}, err
			}
			if valid {
				return Pass("validateTaxId"), nil
			}
		}
		return Fail("validateTaxId", params), nil
	case "BR":
		digits := strings.NewReplacer(".", "", "-", "", "/", "", " ", "").Replace(s)
		return Check(isCPF(digits) || isCNPJ(digits), "validateTaxId", params), nil
	default:
		return Verdict{}, unsupportedLocale("validateTaxId", c)
	}
}

// validatePostalCode uses the go-playground postcode table for the rule country.
func validatePostalCode(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	c, ok := country(e, opts)
	if !ok {
		return Verdict{}, unsupportedLocale("validatePostalCode", c)
	}
	params := map[string]any{"country": c}
	s, ok := value.(string)
	if !ok {
		return Fail("validatePostalCode", params), nil
	}

	countries := []string{c}
	if c == "any" {
		countries = anyPostalCountries
	}
	for _, code := range countries {
		valid, err := e.check(ctx, s, "postcode_iso3166_alpha2="+code)
		if err != nil {
			return Verdict{}, err
		}
		if valid {
			return Pass("validatePostalCode"), nil
		}
	}
	return Fail("validatePostalCode", params), nil
}

// validateLicensePlate matches the rule country's plate format. Countries
// without a known format, and "any", accept any known format.
func validateLicensePlate(_ context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	c, _ := country(e, opts)
	s, ok := value.(string)
	if !ok {
		return Fail("validateLicensePlate", nil), nil
	}
	s = strings.ToUpper(strings.TrimSpace(s))

	if re, ok := licensePlates[c]; ok {
		return Check(re.MatchString(s), "validateLicensePlate", map[string]any{"country": c}), nil
	}
	for _, re := range licensePlates {
		if re.MatchString(s) {
			return Pass("validateLicensePlate"), nil
		}
	}
	return Fail("validateLicensePlate", nil), nil
}

// validateMobileNumber parses with libphonenumber for the rule country.
// With strict, numbers must be in international form with a leading "+".
func validateMobileNumber(_ context.Context, e *Engine, value any, opts Options) (Verdict, error) {
	region, ok := country(e, opts)
	if !ok || region == "any" {
		region = ""
	}
	params := map[string]any{"country": region}
	s, ok := value.(string)
	if !ok {
		return Fail("validateMobileNumber", params), nil
	}
	s = strings.TrimSpace(s)
	if opts.Bool("strict") && !strings.HasPrefix(s, "+") {
		return Fail("validateMobileNumber", params), nil
	}

	number, err := phonenumbers.Parse(s, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return Fail("validateMobileNumber", params), nil
	}
	switch phonenumbers.GetNumberType(number) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return Pass("validateMobileNumber"), nil
	default:
		return Fail("validateMobileNumber", params), nil
	}
}

func isCPF(digits string) bool {
	if len(digits) != 11 || !digitsRegex.MatchString(digits) || strings.Count(digits, digits[:1]) == 11 {
		return false
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * (n + 1 - i)
		}
		check := sum * 10 % 11
		if check == 10 {
			check = 0
		}
		if check != int(digits[n]-'0') {
			return false
		}
	}
	return true
}

func isCNPJ(digits string) bool {
	if len(digits) != 14 || !digitsRegex.MatchString(digits) || strings.Count(digits, digits[:1]) == 14 {
		return false
	}
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, n := range []int{12, 13} {
		sum := 0
		w := weights[13-n:]
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * w[i]
		}
		check := 0
		if r := sum % 11; r >= 2 {
			check = 11 - r
		}
		if check != int(digits[n]-'0') {
			return false
		}
	}
	return true
}
