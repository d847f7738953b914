package useragent

import (
	"regexp"
	"strings"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Mobile platform tokens, matched case-insensitively against the whole UA.
var (
	androidKeywords    = newKeywordSet("android")
	windowsKeywords    = newKeywordSet("iemobile", "windows phone")
	blackBerryKeywords = newKeywordSet("blackberry")
	iOSKeywords        = newKeywordSet("iphone", "ipad", "ipod")
)

// Platforms holds the four independent mobile platform flags.
type Platforms struct {
	Android    bool
	Windows    bool
	BlackBerry bool
	IOS        bool
}

// Any reports whether at least one mobile platform token matched.
func (p Platforms) Any() bool {
	return p.Android || p.Windows || p.BlackBerry || p.IOS
}

// DetectPlatforms runs the four mobile platform tests. The flags are computed
// independently, so a UA carrying several tokens sets several flags.
func DetectPlatforms(ua string) Platforms {
	lowerUA := strings.ToLower(ua)
	return Platforms{
		Android:    androidKeywords.contains(lowerUA),
		Windows:    windowsKeywords.contains(lowerUA),
		BlackBerry: blackBerryKeywords.contains(lowerUA),
		IOS:        iOSKeywords.contains(lowerUA),
	}
}

var applePlatformRegex = regexp.MustCompile(`iP(hone|od|ad)`)

// IsApplePlatform reports whether navigator.platform names an Apple mobile
// device. The match is case-sensitive.
func IsApplePlatform(platform string) bool {
	return applePlatformRegex.MatchString(platform)
}

// windows7Token is the NT kernel version Windows 7 reports.
const windows7Token = "Windows NT 6.1"

// IsWindows7 reports whether the UA was sent from Windows 7.
func IsWindows7(ua string) bool {
	return strings.Contains(ua, windows7Token)
}
