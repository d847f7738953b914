package htmlhost

// Style property sets of common engines, spelled the way the probe tests them.
var (
	// ModernProperties is an evergreen engine with unprefixed transitions and animations.
	ModernProperties = []string{"transition", "animationName", "WebkitTransition", "WebkitAnimationName"}

	// LegacyWebKitProperties is an engine that only knows the -webkit- prefixed forms.
	LegacyWebKitProperties = []string{"WebkitTransition", "WebkitAnimationName"}

	// IE11Properties is Internet Explorer 11, including its IE-only properties.
	IE11Properties = []string{"transition", "animationName", "msTransition", "msAnimationName", "-ms-scroll-limit", "-ms-ime-align"}
)

// Option configures a Host.
type Option func(*config)

type config struct {
	nav        navigator
	win        window
	properties map[string]struct{}
	gutter     int
}

func newConfig(opts []Option) *config {
	cfg := &config{properties: make(map[string]struct{})}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithUserAgent(ua string) Option {
	return func(c *config) { c.nav.userAgent = ua }
}

// WithPlatform sets navigator.platform, e.g. "iPhone", "Win32" or "MacIntel".
func WithPlatform(platform string) Option {
	return func(c *config) { c.nav.platform = platform }
}

func WithAppVersion(appVersion string) Option {
	return func(c *config) { c.nav.appVersion = appVersion }
}

func WithTouchStart(enabled bool) Option {
	return func(c *config) { c.win.touchStart = enabled }
}

func WithDocumentTouch(enabled bool) Option {
	return func(c *config) { c.win.documentTouch = enabled }
}

func WithActiveX(enabled bool) Option {
	return func(c *config) { c.win.activeX = enabled }
}

// WithStyleProperties adds property names the simulated style declarations
// expose. It may be given several times.
func WithStyleProperties(names ...string) Option {
	return func(c *config) {
		for _, name := range names {
			if name != "" {
				c.properties[name] = struct{}{}
			}
		}
	}
}

// WithScrollbarGutter sets the width in px a vertical scrollbar takes from a
// scrolling element. Negative values are ignored.
func WithScrollbarGutter(px int) Option {
	return func(c *config) {
		if px >= 0 {
			c.gutter = px
		}
	}
}
