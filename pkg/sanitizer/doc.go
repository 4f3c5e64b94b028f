// Package sanitizer provides the string transforms behind forma's sanitizer
// rules: trimming, HTML escaping and stripping, e-mail normalisation and
// character black/white listing.
//
// Every helper is a pure function over strings. None of them returns an
// error: invalid input falls back to a safe result (usually the input
// itself). Because there is no global state the helpers are safe for
// concurrent use.
//
// Helpers can be combined with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.StripTags,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	out := clean("  <b>Hello</b>   world ") // "Hello world"
//
// The rule engine in package rules binds these helpers to rule ids such as
// "trim" or "normalizeEmail"; schemas never call them directly.
package sanitizer
