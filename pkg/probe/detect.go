package probe

import (
	"fmt"

	"github.com/considonet/g-env/pkg/useragent"
)

// Detect inspects the host and returns a fresh capability snapshot. Call it
// again when a newer reading is needed.
//
// The only error is ErrEnvironmentUnavailable, returned when the host lacks a
// navigator, window, document element or, when scrollbar measurement is
// needed, a body. Every individual check degrades to its default instead.
func Detect(host Host) (Report, error) {
	if host == nil {
		return Report{}, fmt.Errorf("%w: no host", ErrEnvironmentUnavailable)
	}
	nav, win, doc := host.Navigator(), host.Window(), host.Document()
	switch {
	case nav == nil:
		return Report{}, fmt.Errorf("%w: no navigator", ErrEnvironmentUnavailable)
	case win == nil:
		return Report{}, fmt.Errorf("%w: no window", ErrEnvironmentUnavailable)
	case doc == nil:
		return Report{}, fmt.Errorf("%w: no document", ErrEnvironmentUnavailable)
	case doc.DocumentElement() == nil:
		return Report{}, fmt.Errorf("%w: no document element", ErrEnvironmentUnavailable)
	}

	ua := nav.UserAgent()
	var report Report

	report.IsTouchDevice = IsTouchDevice(win)

	platforms := useragent.DetectPlatforms(ua)
	if platforms.Any() {
		report.IsMobile = &MobileInfo{
			Android:    platforms.Android,
			Windows:    platforms.Windows,
			BlackBerry: platforms.BlackBerry,
			IOS:        platforms.IOS,
		}
	}

	info := &report.BrowserInfo
	if v, ok := useragent.WebKitVersion(ua); ok {
		info.AppleWebKitVersion = &v
	}
	if v, ok := useragent.ChromeVersion(ua); ok {
		info.ChromeVersion = &v
	}
	info.IsAndroidBrowser = useragent.IsLegacyAndroidBrowser(platforms.Android, info.AppleWebKitVersion, info.ChromeVersion)

	if useragent.IsApplePlatform(nav.Platform()) {
		if v, ok := useragent.IOSVersion(nav.AppVersion()); ok {
			info.IOSVersion = &v
		}
	}

	info.IEWindows7 = IsIEWindows7(doc, win, ua)

	if v, ok := useragent.IEVersion(ua); ok {
		info.IEVersion = IEVersion(v)
	}

	info.SupportsTransitions = SupportsTransitions(doc)
	info.SupportsAnimations = SupportsAnimations(doc)

	if !SkipsScrollbarMeasurement(info.IEVersion) {
		width, err := MeasureScrollbarWidth(doc)
		if err != nil {
			return Report{}, err
		}
		info.ScrollbarWidth = width
	}

	return report, nil
}
