package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Report is the capability snapshot produced by Detect. It is a plain value:
// nothing updates it after Detect returns.
type Report struct {
	IsTouchDevice bool
	// IsMobile is nil when no mobile platform token matched.
	IsMobile    *MobileInfo
	BrowserInfo BrowserInfo
}

// MobileInfo carries all four platform flags once any of them matched.
type MobileInfo struct {
	Android    bool `json:"Android" yaml:"Android"`
	Windows    bool `json:"Windows" yaml:"Windows"`
	BlackBerry bool `json:"BlackBerry" yaml:"BlackBerry"`
	IOS        bool `json:"iOS" yaml:"iOS"`
}

// Platforms returns the names of the flags that are set.
func (m *MobileInfo) Platforms() []string {
	if m == nil {
		return nil
	}
	var names []string
	if m.Android {
		names = append(names, "Android")
	}
	if m.Windows {
		names = append(names, "Windows")
	}
	if m.BlackBerry {
		names = append(names, "BlackBerry")
	}
	if m.IOS {
		names = append(names, "iOS")
	}
	return names
}

// BrowserInfo groups the engine versions and capability flags.
type BrowserInfo struct {
	AppleWebKitVersion  *float64  `json:"appleWebKitVersion" yaml:"appleWebKitVersion"`
	ChromeVersion       *float64  `json:"chromeVersion" yaml:"chromeVersion"`
	IsAndroidBrowser    bool      `json:"isAndroidBrowser" yaml:"isAndroidBrowser"`
	IOSVersion          *[3]int   `json:"iOSVersion" yaml:"iOSVersion,flow"`
	IEWindows7          bool      `json:"IEWindows7" yaml:"IEWindows7"`
	IEVersion           IEVersion `json:"IEVersion" yaml:"IEVersion"`
	SupportsTransitions bool      `json:"supportsTransitions" yaml:"supportsTransitions"`
	SupportsAnimations  bool      `json:"supportsAnimations" yaml:"supportsAnimations"`
	ScrollbarWidth      int       `json:"scrollbarWidth" yaml:"scrollbarWidth"`
}

// IEVersion is the major version of Internet Explorer or legacy Edge.
// The zero value means the client is neither and encodes as false.
type IEVersion int

// NotIE marks a client that is neither Internet Explorer nor legacy Edge.
const NotIE IEVersion = 0

// IsIE reports whether a version was detected.
func (v IEVersion) IsIE() bool { return v != NotIE }

func (v IEVersion) MarshalJSON() ([]byte, error) {
	if !v.IsIE() {
		return []byte("false"), nil
	}
	return strconv.AppendInt(nil, int64(v), 10), nil
}

func (v *IEVersion) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "false", "null":
		*v = NotIE
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: IEVersion must be false or an integer: %w", ErrInvalidReport, err)
	}
	*v = IEVersion(n)
	return nil
}

func (v IEVersion) MarshalYAML() (any, error) {
	if !v.IsIE() {
		return false, nil
	}
	return int(v), nil
}

// wireReport is the public encoding: isMobile is either false or a record.
type wireReport struct {
	IsTouchDevice bool        `json:"isTouchDevice" yaml:"isTouchDevice"`
	IsMobile      any         `json:"isMobile" yaml:"isMobile"`
	BrowserInfo   BrowserInfo `json:"browserInfo" yaml:"browserInfo"`
}

func (r Report) wire() wireReport {
	var mobile any = false
	if r.IsMobile != nil {
		mobile = r.IsMobile
	}
	return wireReport{
		IsTouchDevice: r.IsTouchDevice,
		IsMobile:      mobile,
		BrowserInfo:   r.BrowserInfo,
	}
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

func (r Report) MarshalYAML() (any, error) {
	return r.wire(), nil
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var w struct {
		IsTouchDevice bool            `json:"isTouchDevice"`
		IsMobile      json.RawMessage `json:"isMobile"`
		BrowserInfo   BrowserInfo     `json:"browserInfo"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	var mobile *MobileInfo
	switch string(bytes.TrimSpace(w.IsMobile)) {
	case "", "false", "null":
	default:
		mobile = &MobileInfo{}
		if err := json.Unmarshal(w.IsMobile, mobile); err != nil {
			return fmt.Errorf("%w: isMobile must be false or a record: %w", ErrInvalidReport, err)
		}
	}

	*r = Report{
		IsTouchDevice: w.IsTouchDevice,
		IsMobile:      mobile,
		BrowserInfo:   w.BrowserInfo,
	}
	return nil
}

// LogValue renders a compact view of the report for slog.
func (r Report) LogValue() slog.Value {
	mobile := "none"
	if names := r.IsMobile.Platforms(); len(names) > 0 {
		mobile = strings.Join(names, ",")
	} else if r.IsMobile != nil {
		mobile = "unknown"
	}

	attrs := []slog.Attr{
		slog.Bool("touch", r.IsTouchDevice),
		slog.String("mobile", mobile),
		slog.Int("scrollbar_width", r.BrowserInfo.ScrollbarWidth),
	}
	if r.BrowserInfo.IEVersion.IsIE() {
		attrs = append(attrs, slog.Int("ie_version", int(r.BrowserInfo.IEVersion)))
	}
	if v := r.BrowserInfo.AppleWebKitVersion; v != nil {
		attrs = append(attrs, slog.Float64("webkit", *v))
	}
	if v := r.BrowserInfo.ChromeVersion; v != nil {
		attrs = append(attrs, slog.Float64("chrome", *v))
	}
	return slog.GroupValue(attrs...)
}
