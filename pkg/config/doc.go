// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11 and can read
// optional .env files first with github.com/joho/godotenv. A prefix keeps the
// binary's variables in their own namespace.
//
// # Usage
//
//	type Config struct {
//		Env       string `env:"ENV" envDefault:"development"`
//		LogFormat string `env:"LOG_FORMAT"`
//	}
//
//	cfg, err := config.Load[Config](
//		config.WithPrefix("GENV_"),
//		config.WithEnvFiles(".env"),
//	)
//	if err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// # Error Handling
//
// ErrParsingConfig wraps tag parsing failures (missing required variables,
// malformed values). ErrLoadingEnvFile is returned for unreadable env files,
// and for missing ones when RequireEnvFiles is set.
package config
