package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	files    []string
	required bool
	environ  map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "GENV_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// skipped unless RequireEnvFiles is also given. Values already present in the
// process environment are never overwritten.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// RequireEnvFiles turns a missing env file into an error.
func RequireEnvFiles() Option {
	return func(o *options) { o.required = true }
}

// WithEnvironment parses from the given map instead of the process
// environment. Env files are ignored in that case.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses environment variables into a new T based on its env tags.
//
// Example:
//
//	type Config struct {
//		LogFormat string        `env:"LOG_FORMAT" envDefault:"text"`
//		Timeout   time.Duration `env:"CHROME_TIMEOUT" envDefault:"30s"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("GENV_"), config.WithEnvFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environ == nil {
		for _, file := range o.files {
			if err := godotenv.Load(file); err != nil {
				if errors.Is(err, fs.ErrNotExist) && !o.required {
					continue
				}
				return cfg, fmt.Errorf("%w %q: %w", ErrLoadingEnvFile, file, err)
			}
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environ != nil {
		envOpts.Environment = o.environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
