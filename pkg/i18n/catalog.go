package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/forma/pkg/logger"
)

// Catalog stores message templates per locale.
type Catalog struct {
	templates      map[string]map[string]any
	defaultLocale  string
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// Option is a function that configures a Catalog instance.
type Option func(*Catalog)

// WithDefaultLocale sets the locale consulted when a template is missing
// from the requested one.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = canonical(locale)
		}
	}
}

// WithLogger provides a customizable logger for the catalog.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingTranslationsLogging controls whether missing templates
// are logged. Default is false to avoid excessive logging.
func WithMissingTranslationsLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// NewCatalog creates a Catalog from the given adapter.
func NewCatalog(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Catalog, error) {
	c := NewEmptyCatalog(options...)
	if err := c.Load(ctx, adapter); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "Message catalog loaded", "locales", c.Locales())
	return c, nil
}

// NewEmptyCatalog creates a Catalog without templates. Every lookup misses
// until Load or Merge adds some.
func NewEmptyCatalog(options ...Option) *Catalog {
	c := &Catalog{
		templates:     make(map[string]map[string]any),
		defaultLocale: DefaultLocale,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Load reads templates from adapter and merges them over the existing ones.
func (c *Catalog) Load(ctx context.Context, adapter TranslationAdapter) error {
	if adapter == nil {
		return ErrNilAdapter
	}

	loaded, err := adapter.Load(ctx)
	if err != nil {
		return err
	}

	for locale, entries := range loaded {
		if strings.TrimSpace(locale) == "" {
			return ErrEmptyLocaleKey
		}
		if entries == nil {
			return fmt.Errorf("nil entries for locale: %s", locale)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for locale, entries := range loaded {
		c.merge(locale, entries)
	}
	return nil
}

// Merge adds or overrides templates of one locale.
func (c *Catalog) Merge(locale string, entries map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.merge(locale, entries)
}

func (c *Catalog) merge(locale string, entries map[string]any) {
	locale = canonical(locale)
	if c.templates[locale] == nil {
		c.templates[locale] = make(map[string]any, len(entries))
	}
	maps.Copy(c.templates[locale], entries)
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the sorted list of locales that have templates.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := make([]string, 0, len(c.templates))
	for locale := range c.templates {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Template returns the template for key, walking the locale fallback chain.
func (c *Catalog) Template(locale, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, l := range fallbackChain(locale, c.defaultLocale) {
		entries, ok := c.templates[l]
		if !ok {
			continue
		}
		if tmpl, ok := lookup(entries, key); ok {
			return tmpl, true
		}
	}

	if c.missingLogMode {
		c.logger.Warn("Message template not found", logger.Locale(locale), logger.Key(key))
	}
	return "", false
}

// HasTemplate reports whether key resolves for locale (fallbacks included).
func (c *Catalog) HasTemplate(locale, key string) bool {
	_, ok := c.Template(locale, key)
	return ok
}

// Format resolves key for locale and interpolates params into it.
func (c *Catalog) Format(locale, key string, params map[string]any) (string, bool) {
	tmpl, ok := c.Template(locale, key)
	if !ok {
		return "", false
	}
	return Interpolate(tmpl, params), true
}

// lookup traverses nested maps using dot-separated keys.
// For example, key "password.weak" resolves m["password"]["weak"].
func lookup(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return asTemplate(v)
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return asTemplate(next)
		}

		switch nm := next.(type) {
		case map[string]any:
			current = nm
		case map[any]any:
			current = make(map[string]any, len(nm))
			for k, v := range nm {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return "", false
		}
	}

	return "", false
}

func asTemplate(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}
