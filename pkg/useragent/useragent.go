package useragent

import (
	"fmt"
	"strings"

	uaparser "github.com/mileusna/useragent"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Describe returns a short human-readable identifier for log lines.
// Format: Browser/Version (OS, DeviceType) or Bot: BotName for bots
func Describe(ua string) (string, error) {
	if strings.TrimSpace(ua) == "" {
		return "Unknown device", ErrEmptyUserAgent
	}

	parsed := uaparser.Parse(ua)
	if parsed.Bot {
		return fmt.Sprintf("Bot: %s", formatName(parsed.Name, "Unknown Bot")), nil
	}

	name := formatName(parsed.Name, "Unknown")
	osName := formatName(parsed.OS, "Unknown OS")
	if parsed.OS == "iOS" {
		osName = "iOS"
	}

	return fmt.Sprintf("%s/%s (%s, %s)", name, formatVersion(parsed.Version), osName, deviceType(parsed)), nil
}

func formatName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	// Names coming from the parser are already cased; only fix lowercase ones
	if strings.ToLower(name) == name {
		return cases.Title(language.English).String(name)
	}
	return name
}

// formatVersion keeps major.minor
func formatVersion(version string) string {
	if version == "" {
		return "?"
	}
	parts := strings.SplitN(version, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

func deviceType(ua uaparser.UserAgent) string {
	switch {
	case ua.Tablet:
		return "tablet"
	case ua.Mobile:
		return "mobile"
	case ua.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
