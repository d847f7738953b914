package probe

import (
	"fmt"

	"github.com/considonet/g-env/pkg/useragent"
)

var (
	transitionPrefixes = []string{"Moz", "webkit", "Webkit", "Khtml", "O", "ms"}
	animationPrefixes  = []string{"Webkit", "Moz", "O", "ms", "Khtml"}
)

// IsTouchDevice reports touch-event support or a touch document.
func IsTouchDevice(win Window) bool {
	if win == nil {
		return false
	}
	return win.HasTouchStart() || win.HasDocumentTouch()
}

// IsIEWindows7 detects IE running on Windows 7 through the IE-only style
// properties or the ActiveX marker, combined with the Windows 7 UA token.
func IsIEWindows7(doc Document, win Window, ua string) bool {
	ieMarkers := win != nil && win.HasActiveX()
	if root := documentElement(doc); root != nil {
		if style := root.Style(); style != nil {
			ieMarkers = ieMarkers || (style.Supports("-ms-scroll-limit") && style.Supports("-ms-ime-align"))
		}
	}
	return ieMarkers && useragent.IsWindows7(ua)
}

// SupportsTransitions tests the transition property on the body, falling back
// to the document element, first unprefixed then with vendor prefixes.
func SupportsTransitions(doc Document) bool {
	if doc == nil {
		return false
	}
	el := doc.Body()
	if el == nil {
		el = doc.DocumentElement()
	}
	if el == nil {
		return false
	}
	return supportsProperty(el.Style(), "transition", "Transition", transitionPrefixes)
}

// SupportsAnimations tests animation-name on a fresh div.
func SupportsAnimations(doc Document) bool {
	if doc == nil {
		return false
	}
	el := doc.CreateElement("div")
	if el == nil {
		return false
	}
	return supportsProperty(el.Style(), "animationName", "AnimationName", animationPrefixes)
}

func supportsProperty(style Style, unprefixed, suffix string, prefixes []string) bool {
	if style == nil {
		return false
	}
	if style.Supports(unprefixed) {
		return true
	}
	for _, prefix := range prefixes {
		if style.Supports(prefix + suffix) {
			return true
		}
	}
	return false
}

// SkipsScrollbarMeasurement reports the IE/Edge versions whose scrollbars do
// not reserve layout width.
func SkipsScrollbarMeasurement(v IEVersion) bool {
	switch v {
	case 10, 11, 12, 13:
		return true
	}
	return false
}

// MeasureScrollbarWidth inserts an offscreen 100x100 scrolling div into the
// body, reads offsetWidth - clientWidth and removes the div again. The div is
// removed whenever the insertion succeeded.
func MeasureScrollbarWidth(doc Document) (width int, err error) {
	if doc == nil {
		return 0, fmt.Errorf("%w: no document", ErrEnvironmentUnavailable)
	}
	body := doc.Body()
	if body == nil {
		return 0, fmt.Errorf("%w: no body to measure the scrollbar in", ErrEnvironmentUnavailable)
	}
	div := doc.CreateElement("div")
	if div == nil {
		return 0, fmt.Errorf("%w: cannot create elements", ErrEnvironmentUnavailable)
	}

	style := div.Style()
	if style == nil {
		return 0, fmt.Errorf("%w: measurement node has no style", ErrEnvironmentUnavailable)
	}
	style.Set("width", "100px")
	style.Set("height", "100px")
	style.Set("overflow", "scroll")
	style.Set("position", "absolute")
	style.Set("top", "-9999px")

	if err := body.AppendChild(div); err != nil {
		return 0, fmt.Errorf("%w: append measurement node: %w", ErrEnvironmentUnavailable, err)
	}
	defer func() {
		if rmErr := body.RemoveChild(div); rmErr != nil && err == nil {
			width, err = 0, fmt.Errorf("%w: remove measurement node: %w", ErrEnvironmentUnavailable, rmErr)
		}
	}()

	return div.OffsetWidth() - div.ClientWidth(), nil
}

func documentElement(doc Document) Element {
	if doc == nil {
		return nil
	}
	return doc.DocumentElement()
}
