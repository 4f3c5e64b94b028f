// Package rules is the named operation registry behind forma schemas.
//
// An Engine maps rule ids to validators and sanitizers. Validators return a
// Verdict; sanitizers return the transformed value. Both receive the engine
// itself, so locale-dependent rules (mobile numbers, postal codes, tax ids)
// and message lookup can reach the current locale and the message catalog.
//
// # Built-in rules
//
// New registers the default rule set: string sanitizers such as trim, toSlug
// and normalizeEmail, and validators for strings, numbers, collections and
// objects (validateEmail, validateLength, validateMin, validateUnique,
// validateFieldsMatch, ...). Format checks are delegated to
// github.com/go-playground/validator where it has a matching tag; phone
// numbers use github.com/nyaruka/phonenumbers and UUIDs github.com/google/uuid.
//
// # Messages
//
// Engine.Message resolves a template from the catalog for the current locale
// and interpolates the verdict context into it:
//
//	e, _ := rules.New(rules.WithLocale("pt-BR"))
//	e.Message("validateMin", map[string]any{"min": 18})
//	// "O valor deve ser no mínimo 18"
//
// The embedded catalog ships en-US and pt-BR. Use WithCatalog to provide a
// different one.
//
// # Custom rules
//
//	_ = e.RegisterValidator("validateEven", func(ctx context.Context, e *rules.Engine, v any, _ rules.Options) (rules.Verdict, error) {
//	    n, ok := rules.Float64(v)
//	    return rules.Check(ok && int(n)%2 == 0, "validateEven", nil), nil
//	})
//
// An error returned from a rule is a fault: it aborts the validation and is
// returned to the caller wrapped with the rule id. A failed check is a
// Verdict with Valid set to false.
//
// Registration is safe for concurrent use. SetLocale is not synchronized and
// must only be called between validations.
package rules
