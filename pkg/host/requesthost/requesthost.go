package requesthost

import (
	"net/http"
	"strings"

	"github.com/considonet/g-env/pkg/host/htmlhost"
)

// Client hint headers
const (
	HeaderPlatform = "Sec-CH-UA-Platform"
	HeaderMobile   = "Sec-CH-UA-Mobile"
)

// deviceTokens are UA tokens that navigator.platform reports verbatim.
// The order matters; the first one found wins.
var deviceTokens = []string{"iPhone", "iPad", "iPod"}

// hintPlatforms maps Sec-CH-UA-Platform values to navigator.platform.
var hintPlatforms = map[string]string{
	"windows":   "Win32",
	"macos":     "MacIntel",
	"linux":     "Linux x86_64",
	"chrome os": "Linux x86_64",
	"chromeos":  "Linux x86_64",
	"android":   "Linux armv8l",
	"ios":       "iPhone",
}

// New builds a host from the request headers. Options are applied after the
// header-derived ones, so callers can override any of them.
func New(r *http.Request, opts ...htmlhost.Option) *htmlhost.Host {
	ua := r.UserAgent()
	base := []htmlhost.Option{
		htmlhost.WithUserAgent(ua),
		htmlhost.WithAppVersion(AppVersion(ua)),
		htmlhost.WithPlatform(Platform(r)),
		htmlhost.WithTouchStart(IsMobileHint(r)),
	}
	return htmlhost.New(append(base, opts...)...)
}

// AppVersion derives navigator.appVersion from the user agent.
func AppVersion(ua string) string {
	return strings.TrimPrefix(ua, "Mozilla/")
}

// Platform guesses navigator.platform. Apple device tokens in the UA win over
// the client hint because iOS browsers do not send hints.
func Platform(r *http.Request) string {
	ua := r.UserAgent()
	for _, token := range deviceTokens {
		if strings.Contains(ua, token) {
			return token
		}
	}
	hint := strings.ToLower(strings.Trim(strings.TrimSpace(r.Header.Get(HeaderPlatform)), `"`))
	return hintPlatforms[hint]
}

// IsMobileHint reports "Sec-CH-UA-Mobile: ?1".
func IsMobileHint(r *http.Request) bool {
	return strings.TrimSpace(r.Header.Get(HeaderMobile)) == "?1"
}
