package slug

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	customReplace map[string]string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator placed between words. Default is "-".
// An empty separator is ignored.
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Lowercase controls whether the slug should be converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// CustomReplace sets string replacements applied before slugification,
// e.g. {"&": "and", "@": "at"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// foldMap covers Latin letters that have no canonical decomposition.
var foldMap = map[rune]string{
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ħ': "h", 'Ħ': "H",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'þ': "th", 'Þ': "TH",
}

// Fold strips diacritics from s: "Ação" → "Acao".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	if !strings.ContainsFunc(folded, func(r rune) bool { _, ok := foldMap[r]; return ok }) {
		return folded
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if repl, ok := foldMap[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Make creates a URL-safe slug from the input string.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.customReplace) > 0 {
		// Longest keys first, ties by key, so overlapping replacements are deterministic.
		keys := make([]string, 0, len(cfg.customReplace))
		for k := range cfg.customReplace {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			if k != "" {
				s = strings.ReplaceAll(s, k, " "+cfg.customReplace[k]+" ")
			}
		}
	}

	s = Fold(s)
	if cfg.lowercase {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSep && b.Len() > 0 {
				b.WriteString(cfg.separator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	result := b.String()
	if cfg.maxLength > 0 {
		if r := []rune(result); len(r) > cfg.maxLength {
			result = strings.TrimSuffix(string(r[:cfg.maxLength]), cfg.separator)
		}
	}

	return result
}
