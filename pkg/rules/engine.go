package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/forma/pkg/i18n"
	"github.com/dmitrymomot/forma/pkg/logger"
)

// DefaultMessage is used when no template exists for a rule id.
const DefaultMessage = "Validation error."

// Engine is the named operation registry consulted by schemas.
//
// Registration is safe for concurrent use. The current locale is not
// synchronized: change it only between Validate calls, never while
// validations that use this engine are running.
type Engine struct {
	mu         sync.RWMutex
	validators map[string]ValidatorFunc
	sanitizers map[string]SanitizerFunc

	locale   string
	catalog  *i18n.Catalog
	logger   *slog.Logger
	validate *validator.Validate
	defaults bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the initial locale. Invalid tags make New fail.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		e.locale = locale
	}
}

// WithCatalog replaces the embedded message catalog.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(e *Engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithLogger sets the logger used for fault and lookup diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithoutDefaultRules creates an engine with an empty registry.
func WithoutDefaultRules() Option {
	return func(e *Engine) {
		e.defaults = false
	}
}

// New creates an engine with the built-in rules and the embedded
// en-US and pt-BR message catalogs.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		validators: make(map[string]ValidatorFunc),
		sanitizers: make(map[string]SanitizerFunc),
		locale:     i18n.DefaultLocale,
		logger:     logger.Discard(),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		defaults:   true,
	}
	for _, opt := range opts {
		opt(e)
	}

	locale, err := i18n.CanonicalLocale(e.locale)
	if err != nil {
		return nil, err
	}
	e.locale = locale

	if e.catalog == nil {
		catalog, err := DefaultCatalog(i18n.WithLogger(e.logger))
		if err != nil {
			return nil, fmt.Errorf("load default catalog: %w", err)
		}
		e.catalog = catalog
	}

	if e.defaults {
		for name, fn := range defaultValidators() {
			e.validators[name] = fn
		}
		for name, fn := range defaultSanitizers() {
			e.sanitizers[name] = fn
		}
	}

	return e, nil
}

// RegisterValidator adds or replaces a named validator.
func (e *Engine) RegisterValidator(name string, fn ValidatorFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRule, name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validators[name] = fn
	return nil
}

// RegisterSanitizer adds or replaces a named sanitizer.
func (e *Engine) RegisterSanitizer(name string, fn SanitizerFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRule, name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sanitizers[name] = fn
	return nil
}

// Validator looks up a validator by rule id.
func (e *Engine) Validator(name string) (ValidatorFunc, error) {
	e.mu.RLock()
	fn, ok := e.validators[name]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: validator %q", ErrUnknownRule, name)
	}
	return fn, nil
}

// Sanitizer looks up a sanitizer by rule id.
func (e *Engine) Sanitizer(name string) (SanitizerFunc, error) {
	e.mu.RLock()
	fn, ok := e.sanitizers[name]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: sanitizer %q", ErrUnknownRule, name)
	}
	return fn, nil
}

// Validators returns the sorted ids of registered validators.
func (e *Engine) Validators() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.validators)
}

// Sanitizers returns the sorted ids of registered sanitizers.
func (e *Engine) Sanitizers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.sanitizers)
}

// Validate runs the named validator. The verdict's rule defaults to name.
func (e *Engine) Validate(ctx context.Context, name string, value any, opts Options) (Verdict, error) {
	fn, err := e.Validator(name)
	if err != nil {
		return Verdict{}, err
	}
	return e.RunValidator(ctx, name, fn, value, opts)
}

// RunValidator runs fn under the given rule id with the engine bound.
func (e *Engine) RunValidator(ctx context.Context, name string, fn ValidatorFunc, value any, opts Options) (Verdict, error) {
	verdict, err := fn(ctx, e, value, opts)
	if err != nil {
		e.logger.DebugContext(ctx, "Validator failed", logger.Rule(name), logger.Error(err))
		return Verdict{}, fmt.Errorf("rule %s: %w", name, err)
	}
	if verdict.Rule == "" {
		verdict.Rule = name
	}
	return verdict, nil
}

// Sanitize runs the named sanitizer.
func (e *Engine) Sanitize(ctx context.Context, name string, value any, opts Options) (any, error) {
	fn, err := e.Sanitizer(name)
	if err != nil {
		return nil, err
	}
	return e.RunSanitizer(ctx, name, fn, value, opts)
}

// RunSanitizer runs fn under the given rule id with the engine bound.
func (e *Engine) RunSanitizer(ctx context.Context, name string, fn SanitizerFunc, value any, opts Options) (any, error) {
	out, err := fn(ctx, e, value, opts)
	if err != nil {
		e.logger.DebugContext(ctx, "Sanitizer failed", logger.Rule(name), logger.Error(err))
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return out, nil
}

// SetLocale switches the locale used for message lookup.
// It is not safe to call while validations on this engine are in flight.
func (e *Engine) SetLocale(locale string) error {
	canonical, err := i18n.CanonicalLocale(locale)
	if err != nil {
		return err
	}
	e.locale = canonical
	return nil
}

// Locale returns the current locale.
func (e *Engine) Locale() string {
	return e.locale
}

// Region returns the ISO 3166 country of the current locale.
func (e *Engine) Region() (string, bool) {
	return i18n.Region(e.locale)
}

// Catalog returns the message catalog.
func (e *Engine) Catalog() *i18n.Catalog {
	return e.catalog
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Message formats the template for key in the current locale with params.
// Unknown keys yield DefaultMessage.
func (e *Engine) Message(key string, params map[string]any) string {
	if msg, ok := e.catalog.Format(e.locale, key, params); ok {
		return msg
	}
	return DefaultMessage
}

// check runs a go-playground validator tag against s.
func (e *Engine) check(ctx context.Context, s, tag string) (bool, error) {
	err := e.validate.VarCtx(ctx, s, tag)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
