// Package useragent extracts the user-agent level signals used by the
// environment probe: mobile platform tokens, rendering engine versions,
// Internet Explorer / legacy Edge versions and the iOS version carried in
// navigator.appVersion.
//
// Every function is total over its input. A missing or malformed token never
// produces an error; it yields the zero value together with ok == false, so
// callers can keep their own defaults.
//
// # Architecture
//
// Platform detection uses keyword sets over the lower-cased user agent
// (platform.go). Version extraction uses pre-compiled capture-group patterns
// (version.go). IE/Edge detection walks an ordered pattern table: the first
// pattern whose literal token is present and whose capture group parses wins,
// giving the fixed MSIE → Trident → Edge priority. The table is sorted by
// OrderHint once at package initialisation (init.go).
//
//	UA string ──▶ DetectPlatforms ──▶ Platforms{Android, Windows, BlackBerry, IOS}
//	          ──▶ WebKitVersion / ChromeVersion ──▶ IsLegacyAndroidBrowser
//	          ──▶ IEVersion ──▶ MSIE | Trident rv: | Edge
//	platform  ──▶ IsApplePlatform ──▶ IOSVersion(appVersion)
//
// # Usage
//
//	import "github.com/considonet/g-env/pkg/useragent"
//
//	p := useragent.DetectPlatforms(ua)
//	if p.Any() {
//	    // mobile client
//	}
//
//	if v, ok := useragent.IEVersion(ua); ok && v <= 11 {
//	    // legacy IE
//	}
//
// For log lines Describe returns a short identifier such as
// "Chrome/91.0 (Windows, desktop)".
//
// # Error Handling
//
// Only Describe returns an error: ErrEmptyUserAgent when there is nothing to
// describe. All detection helpers report absence through their boolean result.
package useragent
