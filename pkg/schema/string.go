package schema

import (
	"context"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// StringSchema validates text values. Every method returns a new schema;
// the receiver is never modified. Options passed to a method are merged
// and recorded on the step.
type StringSchema struct {
	base
}

// NewString returns an empty string schema bound to rt.
func NewString(rt *Runtime) StringSchema {
	return StringSchema{base{rt: rt}}
}

// Validate runs the transforms, then every validator on the result.
func (s StringSchema) Validate(ctx context.Context, value any) (Result, error) {
	if err := s.ready(); err != nil {
		return Result{}, err
	}
	return s.rt.run(ctx, s.chain, value)
}

func (s StringSchema) with(step Step) StringSchema {
	s.chain = s.chain.Append(step)
	return s
}

// Validator appends a registered validator by rule id.
func (s StringSchema) Validator(rule string, opts ...rules.Options) StringSchema {
	return s.with(validatorStep(rule, opts))
}

// Sanitizer appends a registered sanitizer by rule id.
func (s StringSchema) Sanitizer(rule string, opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep(rule, opts))
}

// Custom appends an inline validator reported under name.
func (s StringSchema) Custom(name string, fn rules.ValidatorFunc) StringSchema {
	return s.with(customStep(name, fn))
}

// Transform appends an inline sanitizer reported under name.
func (s StringSchema) Transform(name string, fn rules.SanitizerFunc) StringSchema {
	return s.with(transformStep(name, fn))
}

// MinLength requires at least n characters.
func (s StringSchema) MinLength(n int) StringSchema {
	return s.with(validatorStep("validateLength", []rules.Options{{"min": n}}))
}

// MaxLength allows at most n characters.
func (s StringSchema) MaxLength(n int) StringSchema {
	return s.with(validatorStep("validateLength", []rules.Options{{"max": n}}))
}

// Trim removes surrounding whitespace, or the runes of the chars option.
func (s StringSchema) Trim(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("trim", opts))
}

// LTrim removes leading whitespace or chars.
func (s StringSchema) LTrim(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("lTrim", opts))
}

// RTrim removes trailing whitespace or chars.
func (s StringSchema) RTrim(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("rTrim", opts))
}

// ToSlug turns the value into a URL slug. Options: separator, maxLength, lowercase, replace.
func (s StringSchema) ToSlug(opts ...rules.Options) StringSchema {
	return s.with(formatterStep("toSlug", opts))
}

// StripTags removes markup and decodes entities.
func (s StringSchema) StripTags(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("stripTags", opts))
}

func (s StringSchema) EscapeHTML(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("escapeHTML", opts))
}

func (s StringSchema) UnescapeHTML(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("unescapeHTML", opts))
}

// NormalizeEmail lowercases and trims an address. Options: removeSubaddress, removeGmailDots.
func (s StringSchema) NormalizeEmail(opts ...rules.Options) StringSchema {
	return s.with(formatterStep("normalizeEmail", opts))
}

// Blacklist removes the runes listed in the chars option.
func (s StringSchema) Blacklist(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("blacklist", opts))
}

// Whitelist keeps only the runes listed in the chars option.
func (s StringSchema) Whitelist(opts ...rules.Options) StringSchema {
	return s.with(sanitizerStep("whitelist", opts))
}

func (s StringSchema) ToLowerCase(opts ...rules.Options) StringSchema {
	return s.with(formatterStep("toLowerCase", opts))
}

func (s StringSchema) ToUpperCase(opts ...rules.Options) StringSchema {
	return s.with(formatterStep("toUpperCase", opts))
}

// ValidateAlpha adds validateAlpha. Options: ignore, unicode.
func (s StringSchema) ValidateAlpha(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateAlpha", opts))
}

// ValidateAlphanumeric adds validateAlphanumeric. Options: ignore, unicode.
func (s StringSchema) ValidateAlphanumeric(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateAlphanumeric", opts))
}

func (s StringSchema) ValidateASCII(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateAscii", opts))
}

func (s StringSchema) ValidateBase64(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateBase64", opts))
}

func (s StringSchema) ValidateBIC(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateBIC", opts))
}

// ValidateBoolean adds validateBoolean. Options: loose.
func (s StringSchema) ValidateBoolean(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateBoolean", opts))
}

// ValidateByteLength adds validateByteLength. Options: min, max.
func (s StringSchema) ValidateByteLength(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateByteLength", opts))
}

// ValidateContains adds validateContains. Options: seed, ignoreCase, minOccurrences.
func (s StringSchema) ValidateContains(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateContains", opts))
}

func (s StringSchema) ValidateCreditCard(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateCreditCard", opts))
}

// ValidateCurrency adds validateCurrency. Options: symbol, requireSymbol, allowNegatives, code.
func (s StringSchema) ValidateCurrency(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateCurrency", opts))
}

func (s StringSchema) ValidateDataURI(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateDataURI", opts))
}

// ValidateDate adds validateDate. Options: format (default YYYY-MM-DD).
func (s StringSchema) ValidateDate(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateDate", opts))
}

// ValidateDecimal adds validateDecimal. Options: maxDecimals, forceDecimal.
func (s StringSchema) ValidateDecimal(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateDecimal", opts))
}

// ValidateDivisibleBy adds validateDivisibleBy. Options: divisor.
func (s StringSchema) ValidateDivisibleBy(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateDivisibleBy", opts))
}

// ValidateEmail adds validateEmail. Options: allowDisplayName.
func (s StringSchema) ValidateEmail(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateEmail", opts))
}

// ValidateEndsWith adds validateEndsWith. Options: suffix.
func (s StringSchema) ValidateEndsWith(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateEndsWith", opts))
}

// ValidateEqualsTo adds validateEqualsTo. Options: comparison.
func (s StringSchema) ValidateEqualsTo(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateEqualsTo", opts))
}

func (s StringSchema) ValidateFQDN(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateFQDN", opts))
}

func (s StringSchema) ValidateHSL(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateHSL", opts))
}

func (s StringSchema) ValidateHexColor(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateHexColor", opts))
}

func (s StringSchema) ValidateHexadecimal(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateHexadecimal", opts))
}

func (s StringSchema) ValidateIBAN(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateIBAN", opts))
}

// ValidateIMEI adds validateIMEI. Options: allowHyphens.
func (s StringSchema) ValidateIMEI(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateIMEI", opts))
}

// ValidateIP adds validateIP. Options: version (4 or 6).
func (s StringSchema) ValidateIP(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateIP", opts))
}

// ValidateIPRange adds validateIPRange. Options: version (4 or 6).
func (s StringSchema) ValidateIPRange(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateIPRange", opts))
}

// ValidateISBN adds validateISBN. Options: version (10 or 13).
func (s StringSchema) ValidateISBN(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateISBN", opts))
}

func (s StringSchema) ValidateISINCode(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateISINCode", opts))
}

func (s StringSchema) ValidateISO(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateISO", opts))
}

func (s StringSchema) ValidateISRC(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateISRC", opts))
}

func (s StringSchema) ValidateISSN(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateISSN", opts))
}

func (s StringSchema) ValidateJSON(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateJSON", opts))
}

func (s StringSchema) ValidateJWT(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateJWT", opts))
}

// ValidateLength adds validateLength. Options: min, max.
func (s StringSchema) ValidateLength(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateLength", opts))
}

// ValidateLicensePlate adds validateLicensePlate. Options: locale.
func (s StringSchema) ValidateLicensePlate(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateLicensePlate", opts))
}

func (s StringSchema) ValidateLowercase(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateLowercase", opts))
}

func (s StringSchema) ValidateMACAddress(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMACAddress", opts))
}

// ValidateMatches adds validateMatches. Options: pattern, ignoreCase.
func (s StringSchema) ValidateMatches(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMatches", opts))
}

// ValidateMimeType adds validateMimeType. Options: known.
func (s StringSchema) ValidateMimeType(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMimeType", opts))
}

// ValidateMobileNumber adds validateMobileNumber. Options: locale, strict.
func (s StringSchema) ValidateMobileNumber(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMobileNumber", opts))
}

func (s StringSchema) ValidateMongoID(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMongoId", opts))
}

func (s StringSchema) ValidateMultibyte(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateMultibyte", opts))
}

func (s StringSchema) ValidateNotEmpty(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateNotEmpty", opts))
}

// ValidateNumeric adds validateNumeric. Options: noSymbols.
func (s StringSchema) ValidateNumeric(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateNumeric", opts))
}

func (s StringSchema) ValidatePort(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validatePort", opts))
}

// ValidatePostalCode adds validatePostalCode. Options: locale ("any" for any known country).
func (s StringSchema) ValidatePostalCode(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validatePostalCode", opts))
}

func (s StringSchema) ValidateSemVer(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateSemVer", opts))
}

func (s StringSchema) ValidateSlug(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateSlug", opts))
}

// ValidateStartsWith adds validateStartsWith. Options: prefix.
func (s StringSchema) ValidateStartsWith(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateStartsWith", opts))
}

// ValidateStrongPassword adds validateStrongPassword. Options: minLength, maxLength, requireUppercase, requireLowercase, requireDigits, requireSpecial, minCharClasses, rejectCommon.
func (s StringSchema) ValidateStrongPassword(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateStrongPassword", opts))
}

func (s StringSchema) ValidateSurrogatePair(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateSurrogatePair", opts))
}

// ValidateTaxID adds validateTaxId. Options: locale.
func (s StringSchema) ValidateTaxID(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateTaxId", opts))
}

// ValidateURL adds validateURL. Options: protocols.
func (s StringSchema) ValidateURL(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateURL", opts))
}

func (s StringSchema) ValidateUppercase(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateUppercase", opts))
}

// ValidateUUID adds validateUUID. Options: version.
func (s StringSchema) ValidateUUID(opts ...rules.Options) StringSchema {
	return s.with(validatorStep("validateUUID", opts))
}
