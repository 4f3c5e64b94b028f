// Package forma provides chainable, schema-based validation and sanitization
// for dynamic data such as decoded JSON or YAML documents and form values.
//
// A Factory owns a rule engine (the registry of named validators and
// sanitizers plus the message catalog) and builds schemas bound to it.
// Schemas are immutable: every chain method returns a new schema, so a
// partially built schema can be reused as the base of several others.
//
// Basic Usage:
//
//	f, err := forma.New(forma.WithLocale("pt-BR"))
//	if err != nil {
//		return err
//	}
//
//	signup := f.Object(
//		forma.Field("name", f.String().Trim().ValidateNotEmpty().MinLength(3)),
//		forma.Field("email", f.String().Trim().NormalizeEmail().ValidateEmail()),
//		forma.Field("age", f.Number().ValidateInt().Min(18)),
//		forma.Field("tags", f.Array(f.String().ToSlug()).ValidateUnique()),
//	)
//
//	res, err := signup.Validate(ctx, payload)
//	if err != nil {
//		// a rule faulted or is not registered
//	}
//	if !res.Valid {
//		// res.Errors mirrors the shape of payload
//	}
//
// Validation failures are data in the returned Result; only faults (failing
// operations, unknown rule ids, transforms that change the shape of an
// array or object, undecodable input) are returned as errors.
//
// Sub-packages:
//
//   - pkg/schema: string, number, array and object schemas and the error tree
//   - pkg/rules: the rule engine and every built-in rule
//   - pkg/i18n: message catalogs with locale fallback and interpolation
//   - pkg/sanitizer, pkg/slug: string transformations used by the rules
//   - pkg/config, pkg/logger: environment configuration and slog setup
package forma
