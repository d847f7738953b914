package chromehost

import "time"

const (
	DefaultURL     = "about:blank"
	DefaultTimeout = 30 * time.Second
)

// Config controls the browser the probe runs in. The zero value runs a
// headless browser on about:blank with DefaultTimeout.
type Config struct {
	Headful   bool          `env:"HEADFUL"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"USER_AGENT"`
	URL       string        `env:"URL" envDefault:"about:blank"`
}

func (c Config) headless() bool {
	return !c.Headful
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}
	return c
}
