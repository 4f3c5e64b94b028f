package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en-US"

// CanonicalLocale validates a BCP 47 tag and returns its canonical form
// ("pt-br" → "pt-BR").
func CanonicalLocale(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
	}
	return tag.String(), nil
}

// canonical is CanonicalLocale for already trusted input; malformed tags
// are kept verbatim so they can still match literally.
func canonical(locale string) string {
	if c, err := CanonicalLocale(locale); err == nil {
		return c
	}
	return locale
}

// fallbackChain lists the catalogs consulted for locale, most specific first,
// without duplicates: "pt-BR" → ["pt-BR", "pt", "en-US", "en"].
func fallbackChain(locale, defaultLocale string) []string {
	chain := make([]string, 0, 4)
	seen := make(map[string]bool, 4)
	add := func(l string) {
		if l != "" && !seen[l] {
			seen[l] = true
			chain = append(chain, l)
		}
	}

	for _, l := range []string{locale, defaultLocale} {
		c := canonical(l)
		add(c)
		if tag, err := language.Parse(c); err == nil {
			base, conf := tag.Base()
			if conf != language.No {
				add(base.String())
			}
		}
	}

	return chain
}

// Region returns the ISO 3166-1 region of a locale ("pt-BR" → "BR").
// For tags without an explicit region the most likely one is inferred
// ("fr" → "FR"); ok is false when no region can be determined.
func Region(locale string) (region string, ok bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	r, conf := tag.Region()
	if conf == language.No {
		return "", false
	}
	return r.String(), true
}
