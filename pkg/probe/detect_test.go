package probe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/considonet/g-env/pkg/host/htmlhost"
	"github.com/considonet/g-env/pkg/probe"
)

const (
	uaChromeDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	uaAndroidStock  = "Mozilla/5.0 (Linux; U; Android 4.1.1; en-us; GT-N7100 Build/JRO03C) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30"
	uaAndroidChrome = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	uaIPhone        = "Mozilla/5.0 (iPhone; CPU iPhone OS 10_3_2 like Mac OS X) AppleWebKit/603.2.4 (KHTML, like Gecko) Version/10.0 Mobile/14F89 Safari/602.1"
	uaIE9Win7       = "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"
	uaIE11Win7      = "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko"
	uaEdge18        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.17763"
	uaFirefox       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
)

func f64(v float64) *float64 { return &v }

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []htmlhost.Option
		expected probe.Report
	}{
		{
			name: "desktop Chrome",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaChromeDesktop),
				htmlhost.WithPlatform("Win32"),
				htmlhost.WithAppVersion("5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
				htmlhost.WithStyleProperties(htmlhost.ModernProperties...),
				htmlhost.WithScrollbarGutter(17),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion:  f64(537.36),
					ChromeVersion:       f64(91),
					SupportsTransitions: true,
					SupportsAnimations:  true,
					ScrollbarWidth:      17,
				},
			},
		},
		{
			name: "Android stock browser",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaAndroidStock),
				htmlhost.WithPlatform("Linux armv7l"),
				htmlhost.WithTouchStart(true),
				htmlhost.WithStyleProperties(htmlhost.LegacyWebKitProperties...),
			},
			expected: probe.Report{
				IsTouchDevice: true,
				IsMobile:      &probe.MobileInfo{Android: true},
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion:  f64(534.30),
					IsAndroidBrowser:    true,
					SupportsTransitions: true,
					SupportsAnimations:  true,
				},
			},
		},
		{
			name: "Android Chrome",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaAndroidChrome),
				htmlhost.WithTouchStart(true),
			},
			expected: probe.Report{
				IsTouchDevice: true,
				IsMobile:      &probe.MobileInfo{Android: true},
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion: f64(537.36),
					ChromeVersion:      f64(91),
				},
			},
		},
		{
			name: "iPhone",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIPhone),
				htmlhost.WithPlatform("iPhone"),
				htmlhost.WithAppVersion("5.0 (iPhone; CPU iPhone OS 10_3_2 like Mac OS X) AppleWebKit/603.2.4"),
				htmlhost.WithDocumentTouch(true),
			},
			expected: probe.Report{
				IsTouchDevice: true,
				IsMobile:      &probe.MobileInfo{IOS: true},
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion: f64(603.2),
					IOSVersion:         &[3]int{10, 3, 2},
				},
			},
		},
		{
			name: "iOS version needs an Apple platform",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIPhone),
				htmlhost.WithPlatform("MacIntel"),
				htmlhost.WithAppVersion("5.0 (iPhone; CPU iPhone OS 10_3_2 like Mac OS X)"),
			},
			expected: probe.Report{
				IsMobile: &probe.MobileInfo{IOS: true},
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion: f64(603.2),
				},
			},
		},
		{
			name: "Apple platform with unparsable appVersion",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIPhone),
				htmlhost.WithPlatform("iPad"),
				htmlhost.WithAppVersion("garbage"),
			},
			expected: probe.Report{
				IsMobile: &probe.MobileInfo{IOS: true},
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion: f64(603.2),
				},
			},
		},
		{
			name: "IE9 on Windows 7 via ActiveX",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIE9Win7),
				htmlhost.WithActiveX(true),
				htmlhost.WithScrollbarGutter(17),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					IEWindows7:     true,
					IEVersion:      9,
					ScrollbarWidth: 17,
				},
			},
		},
		{
			name: "IE11 on Windows 7 via ms properties skips measurement",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIE11Win7),
				htmlhost.WithStyleProperties(htmlhost.IE11Properties...),
				htmlhost.WithScrollbarGutter(17),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					IEWindows7:          true,
					IEVersion:           11,
					SupportsTransitions: true,
					SupportsAnimations:  true,
				},
			},
		},
		{
			name: "ms properties without Windows 7",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaEdge18),
				htmlhost.WithStyleProperties(htmlhost.IE11Properties...),
				htmlhost.WithScrollbarGutter(12),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					AppleWebKitVersion:  f64(537.36),
					ChromeVersion:       f64(70),
					IEVersion:           18,
					SupportsTransitions: true,
					SupportsAnimations:  true,
					ScrollbarWidth:      12,
				},
			},
		},
		{
			name: "only one ms property",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaIE11Win7),
				htmlhost.WithStyleProperties("-ms-scroll-limit"),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					IEVersion: 11,
				},
			},
		},
		{
			name: "Firefox with prefixed transitions",
			opts: []htmlhost.Option{
				htmlhost.WithUserAgent(uaFirefox),
				htmlhost.WithStyleProperties("MozTransition", "MozAnimationName"),
				htmlhost.WithScrollbarGutter(15),
			},
			expected: probe.Report{
				BrowserInfo: probe.BrowserInfo{
					SupportsTransitions: true,
					SupportsAnimations:  true,
					ScrollbarWidth:      15,
				},
			},
		},
		{
			name: "empty user agent",
			opts: nil,
			expected: probe.Report{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			report, err := probe.Detect(htmlhost.New(tc.opts...))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, report)
		})
	}
}

func TestDetect_NotMobileIsNil(t *testing.T) {
	t.Parallel()

	report, err := probe.Detect(htmlhost.New(htmlhost.WithUserAgent(uaFirefox)))
	require.NoError(t, err)
	assert.Nil(t, report.IsMobile, "no platform token must leave the not-mobile sentinel, not an all-false record")
}

func TestDetect_IEScrollbarExemption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ua       string
		expected int
	}{
		{ua: "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1)", expected: 17},
		{ua: "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2)", expected: 0},
		{ua: uaIE11Win7, expected: 0},
		{ua: "Mozilla/5.0 (Windows NT 10.0) Edge/12.10136", expected: 0},
		{ua: "Mozilla/5.0 (Windows NT 10.0) Edge/13.10586", expected: 0},
		{ua: "Mozilla/5.0 (Windows NT 10.0) Edge/14.14393", expected: 17},
		{ua: uaFirefox, expected: 17},
	}

	for _, tc := range tests {
		t.Run(tc.ua, func(t *testing.T) {
			t.Parallel()
			host := htmlhost.New(htmlhost.WithUserAgent(tc.ua), htmlhost.WithScrollbarGutter(17))
			report, err := probe.Detect(host)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, report.BrowserInfo.ScrollbarWidth)
		})
	}
}

func TestDetect_NoDOMLeak(t *testing.T) {
	t.Parallel()

	host := htmlhost.New(htmlhost.WithUserAgent(uaChromeDesktop), htmlhost.WithScrollbarGutter(17))
	before, err := host.HTML()
	require.NoError(t, err)

	report, err := probe.Detect(host)
	require.NoError(t, err)
	assert.Equal(t, 17, report.BrowserInfo.ScrollbarWidth)

	after, err := host.HTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NotContains(t, after, "overflow")
}

func TestDetect_Idempotent(t *testing.T) {
	t.Parallel()

	host := htmlhost.New(
		htmlhost.WithUserAgent(uaAndroidStock),
		htmlhost.WithPlatform("Linux armv7l"),
		htmlhost.WithTouchStart(true),
		htmlhost.WithStyleProperties(htmlhost.ModernProperties...),
		htmlhost.WithScrollbarGutter(9),
	)

	first, err := probe.Detect(host)
	require.NoError(t, err)
	second, err := probe.Detect(host)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetect_EnvironmentUnavailable(t *testing.T) {
	t.Parallel()

	full := htmlhost.New(htmlhost.WithUserAgent(uaChromeDesktop))

	tests := []struct {
		name string
		host probe.Host
	}{
		{name: "nil host", host: nil},
		{name: "no navigator", host: fakeHost{win: full.Window(), doc: full.Document()}},
		{name: "no window", host: fakeHost{nav: full.Navigator(), doc: full.Document()}},
		{name: "no document", host: fakeHost{nav: full.Navigator(), win: full.Window()}},
		{name: "no document element", host: fakeHost{nav: full.Navigator(), win: full.Window(), doc: fakeDocument{}}},
		{name: "no body", host: fakeHost{nav: full.Navigator(), win: full.Window(), doc: fakeDocument{root: full.Document().DocumentElement(), create: full.Document()}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := probe.Detect(tc.host)
			require.Error(t, err)
			assert.ErrorIs(t, err, probe.ErrEnvironmentUnavailable)
		})
	}
}

func TestDetect_NoBodyNeededForExemptIE(t *testing.T) {
	t.Parallel()

	full := htmlhost.New(htmlhost.WithUserAgent(uaIE11Win7), htmlhost.WithStyleProperties(htmlhost.IE11Properties...))
	host := fakeHost{
		nav: full.Navigator(),
		win: full.Window(),
		doc: fakeDocument{root: full.Document().DocumentElement(), create: full.Document()},
	}

	report, err := probe.Detect(host)
	require.NoError(t, err)
	assert.Equal(t, probe.IEVersion(11), report.BrowserInfo.IEVersion)
	assert.True(t, report.BrowserInfo.SupportsTransitions, "falls back to the document element")
}

func TestMeasureScrollbarWidth_RemovesOnMeasureAndReportsRemovalFailure(t *testing.T) {
	t.Parallel()

	body := &recordingElement{failRemove: true}
	doc := fakeDocument{root: body, body: body, create: htmlhost.New().Document()}

	_, err := probe.MeasureScrollbarWidth(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, probe.ErrEnvironmentUnavailable)
	assert.Equal(t, 1, body.appended)
	assert.Equal(t, 1, body.removeCalls)
}

func TestMeasureScrollbarWidth_AppendFailure(t *testing.T) {
	t.Parallel()

	body := &recordingElement{failAppend: true}
	doc := fakeDocument{root: body, body: body, create: htmlhost.New().Document()}

	_, err := probe.MeasureScrollbarWidth(doc)
	require.ErrorIs(t, err, probe.ErrEnvironmentUnavailable)
	assert.Equal(t, 0, body.removeCalls, "nothing to remove when the insertion failed")
}

type fakeHost struct {
	nav probe.Navigator
	win probe.Window
	doc probe.Document
}

func (h fakeHost) Navigator() probe.Navigator { return h.nav }
func (h fakeHost) Window() probe.Window       { return h.win }
func (h fakeHost) Document() probe.Document   { return h.doc }

type fakeDocument struct {
	root   probe.Element
	body   probe.Element
	create probe.Document
}

func (d fakeDocument) DocumentElement() probe.Element { return d.root }
func (d fakeDocument) Body() probe.Element            { return d.body }
func (d fakeDocument) CreateElement(tag string) probe.Element {
	if d.create == nil {
		return nil
	}
	return d.create.CreateElement(tag)
}

type recordingElement struct {
	failAppend  bool
	failRemove  bool
	appended    int
	removeCalls int
}

func (e *recordingElement) Style() probe.Style { return nil }
func (e *recordingElement) OffsetWidth() int   { return 0 }
func (e *recordingElement) ClientWidth() int   { return 0 }

func (e *recordingElement) AppendChild(probe.Element) error {
	if e.failAppend {
		return errors.New("append refused")
	}
	e.appended++
	return nil
}

func (e *recordingElement) RemoveChild(probe.Element) error {
	e.removeCalls++
	if e.failRemove {
		return errors.New("remove refused")
	}
	return nil
}
