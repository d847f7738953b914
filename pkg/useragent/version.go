package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

// Thresholds below which an Android client is treated as the pre-Chromium
// stock browser. Empirical cutoffs; keep them as they are.
const (
	LegacyWebKitCutoff = 537.0
	LegacyChromeCutoff = 37.0
)

var (
	webKitRegex     = regexp.MustCompile(`AppleWebKit/([\d.]+)`)
	chromeRegex     = regexp.MustCompile(`Chrome/([\d.]+)`)
	leadingFloat    = regexp.MustCompile(`^(?:\d+\.?\d*|\.\d+)`)
	iOSVersionRegex = regexp.MustCompile(`OS (\d+)_(\d+)_?(\d+)?`)
)

// WebKitVersion returns the float following "AppleWebKit/".
func WebKitVersion(ua string) (float64, bool) {
	return extractFloat(ua, webKitRegex)
}

// ChromeVersion returns the float following "Chrome/".
func ChromeVersion(ua string) (float64, bool) {
	return extractFloat(ua, chromeRegex)
}

// extractFloat parses the leading float of the first capture group, so
// "605.1.15" yields 605.1.
func extractFloat(ua string, regex *regexp.Regexp) (float64, bool) {
	matches := regex.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return 0, false
	}
	num := leadingFloat.FindString(matches[1])
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(num, "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsLegacyAndroidBrowser flags the stock Android browser that predates the
// Chrome-based WebView. A nil version means the token was absent.
func IsLegacyAndroidBrowser(android bool, webKit, chrome *float64) bool {
	return (android && webKit != nil && *webKit < LegacyWebKitCutoff) ||
		(chrome != nil && *chrome < LegacyChromeCutoff)
}

// IOSVersion parses "OS <major>_<minor>[_<patch>]" out of navigator.appVersion.
// The patch component defaults to 0.
func IOSVersion(appVersion string) ([3]int, bool) {
	var v [3]int
	matches := iOSVersionRegex.FindStringSubmatch(appVersion)
	if matches == nil {
		return v, false
	}
	for i := range v {
		part := matches[i+1]
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}, false
		}
		v[i] = n
	}
	return v, true
}

// versionPattern detects one IE/Edge generation
type versionPattern struct {
	Name      string
	Token     string
	Regex     *regexp.Regexp
	OrderHint int
}

// IE/Edge patterns in order of checking priority
var ieVersionPatterns = []versionPattern{
	{
		Name:      "MSIE", // IE 10 and older
		Token:     "MSIE ",
		Regex:     regexp.MustCompile(`MSIE (\d+)`),
		OrderHint: 10,
	},
	{
		Name:      "Trident", // IE 11 reports its version through rv:
		Token:     "Trident/",
		Regex:     regexp.MustCompile(`rv:(\d+)`),
		OrderHint: 20,
	},
	{
		Name:      "Edge", // EdgeHTML, IE 12+
		Token:     "Edge/",
		Regex:     regexp.MustCompile(`Edge/(\d+)`),
		OrderHint: 30,
	},
}

// IEVersion returns the integer major version of Internet Explorer or legacy
// Edge. Chromium Edge ("Edg/") is not matched.
func IEVersion(ua string) (int, bool) {
	for _, pattern := range ieVersionPatterns {
		if !strings.Contains(ua, pattern.Token) {
			continue
		}
		matches := pattern.Regex.FindStringSubmatch(ua)
		if len(matches) < 2 {
			continue
		}
		v, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
