package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.+`)

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")

	return local + "@" + domain
}

// NormalizeEmailOptions controls provider-specific normalisation.
type NormalizeEmailOptions struct {
	// RemoveSubaddress drops "+tag" suffixes from the local part.
	RemoveSubaddress bool
	// RemoveGmailDots drops every dot from gmail.com / googlemail.com local parts.
	RemoveGmailDots bool
}

// NormalizeEmailWith applies NormalizeEmail and then the optional provider rules.
func NormalizeEmailWith(email string, opts NormalizeEmailOptions) string {
	email = NormalizeEmail(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}

	if opts.RemoveSubaddress {
		if i := strings.IndexByte(local, '+'); i > 0 {
			local = local[:i]
		}
	}
	if opts.RemoveGmailDots && (domain == "gmail.com" || domain == "googlemail.com") {
		local = strings.ReplaceAll(local, ".", "")
	}

	return local + "@" + domain
}
