package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/considonet/g-env/pkg/config"
	"github.com/considonet/g-env/pkg/host/chromehost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probeserver"
)

const envPrefix = "GENV_"

// Config is read from GENV_* variables and an optional .env file.
type Config struct {
	Env       string             `env:"ENV" envDefault:"development"`
	LogFormat string             `env:"LOG_FORMAT"`
	LogLevel  string             `env:"LOG_LEVEL"`
	Chrome    chromehost.Config  `envPrefix:"CHROME_"`
	HTTP      probeserver.Config `envPrefix:"HTTP_"`
}

func loadConfig(environ map[string]string) (Config, error) {
	opts := []config.Option{config.WithPrefix(envPrefix), config.WithEnvFiles(".env")}
	if environ != nil {
		opts = append(opts, config.WithEnvironment(environ))
	}
	return config.Load[Config](opts...)
}

// newLogger builds the CLI logger. Explicit format and level settings win
// over the environment defaults.
func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "genv"),
		logger.WithOutput(out),
	}
	if cfg.LogFormat != "" {
		f := logger.Format(cfg.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
