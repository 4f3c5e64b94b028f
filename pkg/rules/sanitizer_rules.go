package rules

import (
	"github.com/dmitrymomot/forma/pkg/sanitizer"
	"github.com/dmitrymomot/forma/pkg/slug"
)

func trimRule(s string, opts Options) string {
	return sanitizer.TrimChars(s, opts.StringOr("chars", ""))
}

func lTrimRule(s string, opts Options) string {
	return sanitizer.LTrim(s, opts.StringOr("chars", ""))
}

func rTrimRule(s string, opts Options) string {
	return sanitizer.RTrim(s, opts.StringOr("chars", ""))
}

// toSlugRule accepts separator, maxLength, lowercase and replace options.
func toSlugRule(s string, opts Options) string {
	var slugOpts []slug.Option
	if sep, ok := opts.String("separator"); ok {
		slugOpts = append(slugOpts, slug.Separator(sep))
	}
	if n, ok := opts.Int("maxLength"); ok {
		slugOpts = append(slugOpts, slug.MaxLength(n))
	}
	if v, ok := opts["lowercase"].(bool); ok {
		slugOpts = append(slugOpts, slug.Lowercase(v))
	}
	if m, ok := Map(opts["replace"]); ok {
		replacements := make(map[string]string, len(m))
		for k, v := range m {
			if r, ok := v.(string); ok {
				replacements[k] = r
			}
		}
		slugOpts = append(slugOpts, slug.CustomReplace(replacements))
	}
	return slug.Make(s, slugOpts...)
}

func stripTagsRule(s string, _ Options) string {
	return sanitizer.StripTags(s)
}

func escapeHTMLRule(s string, _ Options) string {
	return sanitizer.EscapeHTML(s)
}

func unescapeHTMLRule(s string, _ Options) string {
	return sanitizer.UnescapeHTML(s)
}

func normalizeEmailRule(s string, opts Options) string {
	return sanitizer.NormalizeEmailWith(s, sanitizer.NormalizeEmailOptions{
		RemoveSubaddress: opts.Bool("removeSubaddress"),
		RemoveGmailDots:  opts.Bool("removeGmailDots"),
	})
}

func blacklistRule(s string, opts Options) string {
	return sanitizer.Blacklist(s, opts.StringOr("chars", ""))
}

func whitelistRule(s string, opts Options) string {
	return sanitizer.Whitelist(s, opts.StringOr("chars", ""))
}

func toLowerCaseRule(s string, _ Options) string {
	return sanitizer.ToLower(s)
}

func toUpperCaseRule(s string, _ Options) string {
	return sanitizer.ToUpper(s)
}
