package probe

// Host is the capability set the probe reads from. A browser page, a headless
// Chrome tab or an in-memory document can all stand behind it.
type Host interface {
	Navigator() Navigator
	Window() Window
	Document() Document
}

// Navigator exposes the navigator strings.
type Navigator interface {
	UserAgent() string
	Platform() string
	AppVersion() string
}

// Window exposes the global feature markers.
type Window interface {
	// HasTouchStart reports "ontouchstart" in window.
	HasTouchStart() bool
	// HasDocumentTouch reports window.DocumentTouch && document instanceof DocumentTouch.
	HasDocumentTouch() bool
	// HasActiveX reports a truthy window.ActiveXObject.
	HasActiveX() bool
}

// Document creates elements and exposes the two roots the probe touches.
// Body returns nil while the document has no body.
type Document interface {
	DocumentElement() Element
	Body() Element
	CreateElement(tag string) Element
}

// Element is the slice of the DOM element API the probe needs.
type Element interface {
	Style() Style
	OffsetWidth() int
	ClientWidth() int
	AppendChild(child Element) error
	RemoveChild(child Element) error
}

// Style is an element's inline style declaration.
type Style interface {
	// Supports reports whether the declaration exposes the property name,
	// spelled exactly as given (camelCase, vendor-prefixed or dashed).
	Supports(property string) bool
	Set(property, value string)
}
