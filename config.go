package forma

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/forma/pkg/config"
	"github.com/dmitrymomot/forma/pkg/i18n"
	"github.com/dmitrymomot/forma/pkg/logger"
	"github.com/dmitrymomot/forma/pkg/rules"
)

// Config is the environment configuration read by NewFromEnv.
type Config struct {
	Locale      string `env:"FORMA_LOCALE" envDefault:"en-US"`
	CatalogPath string `env:"FORMA_CATALOG_PATH"`
	Concurrency int    `env:"FORMA_CONCURRENCY" envDefault:"1"`
	LogLevel    string `env:"FORMA_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"FORMA_LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv loads Config from the environment (and a .env file when
// present) and builds a factory from it. Options passed here are applied
// after the configured ones.
func NewFromEnv(ctx context.Context, opts ...Option) (*Factory, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return NewFromConfig(ctx, cfg, opts...)
}

// NewFromConfig builds a factory from cfg. Templates found in
// cfg.CatalogPath are merged over the embedded catalog.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Factory, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("%w: negative concurrency %d", ErrInvalidConfig, cfg.Concurrency)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Component("forma")),
	)

	base := []Option{WithLogger(log), WithConcurrency(cfg.Concurrency)}
	if cfg.Locale != "" {
		base = append(base, WithLocale(cfg.Locale))
	}

	if cfg.CatalogPath != "" {
		catalog, err := rules.DefaultCatalog(
			i18n.WithLogger(log),
			i18n.WithMissingTranslationsLogging(level <= slog.LevelDebug),
		)
		if err != nil {
			return nil, errors.Join(ErrLoadCatalog, err)
		}
		if err := catalog.Load(ctx, i18n.NewDirectoryAdapter(cfg.CatalogPath)); err != nil {
			return nil, errors.Join(ErrLoadCatalog, err)
		}
		log.InfoContext(ctx, "Custom message catalog loaded",
			"path", cfg.CatalogPath,
			"locales", catalog.Locales(),
		)
		base = append(base, WithCatalog(catalog))
	}

	return New(append(base, opts...)...)
}
