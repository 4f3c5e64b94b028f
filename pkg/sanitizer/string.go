package sanitizer

import (
	"strings"
	"unicode"
)

// Compose chains transforms left to right into a single transform.
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		for _, transform := range transforms {
			s = transform(s)
		}
		return s
	}
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimChars removes the given characters from both ends of s.
// An empty cutset falls back to whitespace.
func TrimChars(s, cutset string) string {
	if cutset == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, cutset)
}

// LTrim removes leading characters of cutset (whitespace when empty).
func LTrim(s, cutset string) string {
	if cutset == "" {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, cutset)
}

// RTrim removes trailing characters of cutset (whitespace when empty).
func RTrim(s, cutset string) string {
	if cutset == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, cutset)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Blacklist removes every rune of chars from s.
func Blacklist(s, chars string) string {
	if chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// Whitelist keeps only the runes of s that appear in chars.
// An empty allow list yields an empty string.
func Whitelist(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return r
		}
		return -1
	}, s)
}
