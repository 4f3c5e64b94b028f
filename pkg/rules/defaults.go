package rules

func defaultSanitizers() map[string]SanitizerFunc {
	return map[string]SanitizerFunc{
		"trim":           stringSanitizer(trimRule),
		"lTrim":          stringSanitizer(lTrimRule),
		"rTrim":          stringSanitizer(rTrimRule),
		"toSlug":         stringSanitizer(toSlugRule),
		"stripTags":      stringSanitizer(stripTagsRule),
		"escapeHTML":     stringSanitizer(escapeHTMLRule),
		"unescapeHTML":   stringSanitizer(unescapeHTMLRule),
		"normalizeEmail": stringSanitizer(normalizeEmailRule),
		"blacklist":      stringSanitizer(blacklistRule),
		"whitelist":      stringSanitizer(whitelistRule),
		"toLowerCase":    stringSanitizer(toLowerCaseRule),
		"toUpperCase":    stringSanitizer(toUpperCaseRule),
	}
}

func defaultValidators() map[string]ValidatorFunc {
	return map[string]ValidatorFunc{
		// strings
		"validateAlpha":          validateAlpha,
		"validateAlphanumeric":   validateAlphanumeric,
		"validateAscii":          tagRule("validateAscii", "ascii"),
		"validateByteLength":     validateByteLength,
		"validateContains":       validateContains,
		"validateEndsWith":       validateEndsWith,
		"validateEqualsTo":       validateEqualsTo,
		"validateLength":         validateLength,
		"validateLowercase":      tagRule("validateLowercase", "lowercase"),
		"validateMatches":        validateMatches,
		"validateMultibyte":      tagRule("validateMultibyte", "multibyte"),
		"validateNotEmpty":       validateNotEmpty,
		"validateStartsWith":     validateStartsWith,
		"validateSurrogatePair":  stringRule("validateSurrogatePair", isSurrogatePair),
		"validateUppercase":      tagRule("validateUppercase", "uppercase"),
		"validateStrongPassword": validateStrongPassword,

		// formats
		"validateBase64":      tagRule("validateBase64", "base64"),
		"validateBoolean":     validateBoolean,
		"validateDataURI":     tagRule("validateDataURI", "datauri"),
		"validateDate":        validateDate,
		"validateEmail":       stringRule("validateEmail", isEmail),
		"validateFQDN":        tagRule("validateFQDN", "fqdn"),
		"validateHSL":         tagRule("validateHSL", "hsl"),
		"validateHexColor":    tagRule("validateHexColor", "hexcolor"),
		"validateHexadecimal": tagRule("validateHexadecimal", "hexadecimal"),
		"validateIP":          validateIP,
		"validateIPRange":     validateIPRange,
		"validateISO":         stringRule("validateISO", isISO8601),
		"validateJSON":        tagRule("validateJSON", "json"),
		"validateJWT":         tagRule("validateJWT", "jwt"),
		"validateMACAddress":  tagRule("validateMACAddress", "mac"),
		"validateMimeType":    stringRule("validateMimeType", isMimeType),
		"validateSemVer":      tagRule("validateSemVer", "semver"),
		"validateSlug":        stringRule("validateSlug", isSlug),
		"validateURL":         validateURL,
		"validateUUID":        validateUUID,

		// identifiers
		"validateIMEI":         stringRule("validateIMEI", isIMEI),
		"validateISBN":         validateISBN,
		"validateISRC":         stringRule("validateISRC", isISRC),
		"validateISSN":         tagRule("validateISSN", "issn"),
		"validateLicensePlate": validateLicensePlate,
		"validateMobileNumber": validateMobileNumber,
		"validateMongoId":      tagRule("validateMongoId", "mongodb"),
		"validatePostalCode":   validatePostalCode,
		"validateTaxId":        validateTaxID,

		// financial
		"validateBIC":        tagRule("validateBIC", "bic"),
		"validateCreditCard": validateCreditCard,
		"validateCurrency":   validateCurrency,
		"validateIBAN":       stringRule("validateIBAN", isIBAN),
		"validateISINCode":   stringRule("validateISINCode", isISIN),

		// numbers
		"validateDecimal":       validateDecimal,
		"validateDivisibleBy":   validateDivisibleBy,
		"validateFloat":         validateFloat,
		"validateInt":           validateInt,
		"validateIsBlacklisted": validateIsBlacklisted,
		"validateIsIn":          validateIsIn,
		"validateIsWhitelisted": validateIsWhitelisted,
		"validateMax":           validateMax,
		"validateMin":           validateMin,
		"validateNegative":      validateNegative,
		"validateNumeric":       validateNumeric,
		"validatePort":          validatePort,
		"validatePositive":      validatePositive,

		// collections
		"validateUnique":       validateUnique,
		"validateFieldsMatch":  validateFieldsMatch,
		"validateRequireOneOf": validateRequireOneOf,
	}
}
