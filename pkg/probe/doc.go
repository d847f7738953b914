// Package probe inspects a browser-like host and reports touch capability,
// mobile platform family and a set of browser capability and version flags.
//
// The probe never touches globals. Everything it reads comes through the Host
// interface, so the same detection runs inside a page compiled to WebAssembly
// (pkg/host/jshost), against headless Chrome (pkg/host/chromehost), or over an
// in-memory document built from request headers (pkg/host/htmlhost,
// pkg/host/requesthost).
//
// # Checks
//
// Detect runs a fixed sequence of independent checks:
//
//  1. touch support (ontouchstart or DocumentTouch)
//  2. mobile platform tokens in the user agent (Android, Windows Phone /
//     IEMobile, BlackBerry, iPhone/iPad/iPod)
//  3. AppleWebKit and Chrome versions
//  4. the legacy Android stock browser heuristic
//  5. the iOS version from navigator.appVersion, only on iPhone/iPad/iPod
//     platforms
//  6. IE on Windows 7
//  7. the IE / legacy Edge major version (MSIE, then Trident rv:, then Edge)
//  8. CSS transition support
//  9. CSS animation support
//  10. the scrollbar width, measured with a temporary offscreen element and
//     forced to 0 for IE/Edge 10 to 13
//
// Later checks only read values computed earlier: engine versions feed the
// Android heuristic and the IE version gates the scrollbar measurement.
//
// # Report encoding
//
// Report encodes to JSON and YAML with the field names browser-side consumers
// expect. isMobile is false when no platform matched and a record of all four
// flags otherwise; IEVersion is false or an integer; missing versions are null.
//
//	{"isTouchDevice":false,"isMobile":false,"browserInfo":{"appleWebKitVersion":537.36,...}}
//
// # Usage
//
//	host := htmlhost.New(htmlhost.WithUserAgent(r.UserAgent()))
//	report, err := probe.Detect(host)
//	if err != nil {
//	    // errors.Is(err, probe.ErrEnvironmentUnavailable)
//	}
//	if report.IsMobile != nil && report.IsMobile.IOS {
//	    // ...
//	}
//
// # Error Handling
//
// Detect returns ErrEnvironmentUnavailable when the host cannot provide a
// navigator, window, document element, or a body for the scrollbar
// measurement. Individual checks never fail; a missing signal leaves the
// field at its default (null, false or 0).
package probe
