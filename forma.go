package forma

import (
	"log/slog"

	"github.com/dmitrymomot/forma/pkg/i18n"
	"github.com/dmitrymomot/forma/pkg/rules"
	"github.com/dmitrymomot/forma/pkg/schema"
)

// Factory builds schemas bound to one rule engine.
type Factory struct {
	engine *rules.Engine
	rt     *schema.Runtime
}

// Option configures a Factory.
type Option func(*options)

type options struct {
	engine      *rules.Engine
	engineOpts  []rules.Option
	runtimeOpts []schema.RuntimeOption
}

// WithLocale sets the initial message locale, like "en-US" or "pt-BR".
func WithLocale(locale string) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, rules.WithLocale(locale))
	}
}

// WithCatalog replaces the embedded message catalog.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, rules.WithCatalog(catalog))
	}
}

// WithLogger sets the logger for rule faults and catalog diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, rules.WithLogger(l))
	}
}

// WithConcurrency validates up to n array items or object fields at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.runtimeOpts = append(o.runtimeOpts, schema.WithConcurrency(n))
	}
}

// WithEngine binds the factory to an existing engine. Locale, catalog and
// logger options are ignored when it is set.
func WithEngine(e *rules.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// New creates a factory with a fresh engine holding the built-in rules.
func New(opts ...Option) (*Factory, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	engine := o.engine
	if engine == nil {
		var err error
		if engine, err = rules.New(o.engineOpts...); err != nil {
			return nil, err
		}
	}

	return &Factory{
		engine: engine,
		rt:     schema.NewRuntime(engine, o.runtimeOpts...),
	}, nil
}

// MustNew works like New but panics on failure.
func MustNew(opts ...Option) *Factory {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns an empty string schema.
func (f *Factory) String() schema.StringSchema {
	return schema.NewString(f.rt)
}

// Number returns an empty number schema.
func (f *Factory) Number() schema.NumberSchema {
	return schema.NewNumber(f.rt)
}

// Object returns an object schema with the given shape.
// It panics when a field is named schema.ObjectKey or has no schema.
func (f *Factory) Object(fields ...schema.Field) schema.ObjectSchema {
	return schema.NewObject(f.rt, fields...)
}

// Array returns an array schema validating every element with item.
// A nil item validates the array as a whole only.
func (f *Factory) Array(item schema.Schema) schema.ArraySchema {
	return schema.NewArray(f.rt, item)
}

// SetLocale switches the message locale of every schema built by f.
// Call it between Validate calls only; it is not synchronized with
// validations in flight.
func (f *Factory) SetLocale(locale string) error {
	return f.engine.SetLocale(locale)
}

// Locale returns the current message locale.
func (f *Factory) Locale() string {
	return f.engine.Locale()
}

// Engine returns the rule engine, for registering custom rules.
func (f *Factory) Engine() *rules.Engine {
	return f.engine
}

// Runtime returns the runtime shared by the schemas of f.
func (f *Factory) Runtime() *schema.Runtime {
	return f.rt
}

// Field is shorthand for a schema.Field literal.
func Field(name string, s schema.Schema) schema.Field {
	return schema.Field{Name: name, Schema: s}
}
