// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Each configuration type
// is parsed once and cached; ForceReload and ResetCache exist for tests and
// for processes whose environment changes after start.
//
//	type Config struct {
//	    Locale      string `env:"FORMA_LOCALE" envDefault:"en-US"`
//	    Concurrency int    `env:"FORMA_CONCURRENCY" envDefault:"1"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
