package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forma/pkg/config"
)

type appConfig struct {
	Locale      string   `env:"CONFIG_TEST_LOCALE" envDefault:"en-US"`
	Concurrency int      `env:"CONFIG_TEST_CONCURRENCY" envDefault:"1"`
	Tags        []string `env:"CONFIG_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_SECRET,required"`
}

type fileConfig struct {
	Value    string `env:"CONFIG_TEST_FILE_VALUE"`
	Priority string `env:"CONFIG_TEST_FILE_PRIORITY"`
}

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_LOCALE", "pt-BR")
	t.Setenv("CONFIG_TEST_TAGS", "a,b")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)

	t.Run("cached", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_LOCALE", "de-DE")
		var again appConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "pt-BR", again.Locale)

		require.NoError(t, config.ForceReload(&again))
		assert.Equal(t, "de-DE", again.Locale)
	})
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	var nilCfg *appConfig
	require.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CONFIG_TEST_SECRET", "s3cret")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	first := writeEnvFile(t, "first.env", "CONFIG_TEST_FILE_VALUE=first\nCONFIG_TEST_FILE_PRIORITY=first\n")
	second := writeEnvFile(t, "second.env", "CONFIG_TEST_FILE_PRIORITY=second\n")

	t.Setenv("CONFIG_TEST_FILE_VALUE", "")
	require.NoError(t, os.Unsetenv("CONFIG_TEST_FILE_VALUE"))
	t.Setenv("CONFIG_TEST_FILE_PRIORITY", "")
	require.NoError(t, os.Unsetenv("CONFIG_TEST_FILE_PRIORITY"))

	require.NoError(t, config.LoadEnv(first, second))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)
	assert.Equal(t, "second", cfg.Priority)

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_FILE_VALUE", "process")
		require.NoError(t, config.LoadEnv(first))
		assert.Equal(t, "process", os.Getenv("CONFIG_TEST_FILE_VALUE"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
	})
}
