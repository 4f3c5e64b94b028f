// Package i18n provides the message catalog used to render validation
// failures in the caller's language.
//
// A Catalog maps a locale and a message key (a rule id such as
// "validateEmail") to a template. Templates carry named placeholders in
// curly braces, e.g. "Must be at least {min} characters", which Interpolate
// fills from a verdict's context. Placeholders without a matching context
// entry are left untouched.
//
// # Architecture
//
// Storage is delegated to a TranslationAdapter. Ready-made adapters load
// catalogs from an in-memory map, a single file, a directory, or any fs.FS
// (typically an embed.FS). Files are parsed by extension with the JSON or
// YAML parser. Each file holds one top-level key per locale:
//
//	en-US:
//	  validateEmail: "Invalid email address"
//	  validateLength: "Length must be between {min} and {max}"
//	pt-BR:
//	  validateEmail: "Endereço de e-mail inválido"
//
// Locale tags are canonicalised with golang.org/x/text/language, so "pt-br"
// and "pt-BR" address the same catalog. Lookups fall back from the exact
// locale to its base language ("pt-BR" → "pt") and finally to the default
// locale.
//
// # Usage
//
//	catalog, err := i18n.NewCatalog(ctx,
//		i18n.NewFSAdapter(messages, "messages"),
//		i18n.WithDefaultLocale("en-US"),
//	)
//	if err != nil {
//		return err
//	}
//	msg, ok := catalog.Format("pt-BR", "validateLength", map[string]any{"min": 3})
//
// # Error Handling
//
// Loading failures wrap the package sentinels, so callers can branch with
// errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseFile) {
//		// bad catalog file
//	}
//
// A Catalog is safe for concurrent use.
package i18n
