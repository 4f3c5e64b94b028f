// Package slug converts arbitrary text into URL-safe slugs.
//
// Diacritics are folded to their ASCII base letters through Unicode
// decomposition (golang.org/x/text), so "João da Silva" becomes
// "joao-da-silva". Letters that have no decomposition (ø, ł, ß, æ, …) are
// folded through a small lookup table. Every other non-alphanumeric run
// collapses into a single separator.
//
// # Usage
//
//	s := slug.Make("João da Silva")
//	// s == "joao-da-silva"
//
//	s = slug.Make("Straße & Café",
//		slug.Separator("_"),
//		slug.CustomReplace(map[string]string{"&": "and"}),
//	)
//	// s == "strasse_and_cafe"
//
// Make is idempotent: slugifying an existing slug (built with the same
// options) returns it unchanged.
//
// All functions are safe for concurrent use.
package slug
