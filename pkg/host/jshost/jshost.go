//go:build js && wasm

package jshost

import (
	"fmt"
	"syscall/js"

	"github.com/considonet/g-env/pkg/probe"
)

// Host reads navigator, window and document from a JS global object.
type Host struct {
	global js.Value
}

// New returns a host over the page's global object.
func New() *Host {
	return &Host{global: js.Global()}
}

// NewWithGlobal returns a host over an arbitrary global-like object, such as
// an iframe's contentWindow.
func NewWithGlobal(global js.Value) *Host {
	return &Host{global: global}
}

func (h *Host) Navigator() probe.Navigator {
	v := h.global.Get("navigator")
	if !present(v) {
		return nil
	}
	return navigator{v: v}
}

func (h *Host) Window() probe.Window {
	if !present(h.global) {
		return nil
	}
	return window{v: h.global, reflect: h.global.Get("Reflect")}
}

func (h *Host) Document() probe.Document {
	v := h.global.Get("document")
	if !present(v) {
		return nil
	}
	return document{v: v, reflect: h.global.Get("Reflect")}
}

type navigator struct {
	v js.Value
}

func (n navigator) UserAgent() string  { return stringProp(n.v, "userAgent") }
func (n navigator) Platform() string   { return stringProp(n.v, "platform") }
func (n navigator) AppVersion() string { return stringProp(n.v, "appVersion") }

type window struct {
	v       js.Value
	reflect js.Value
}

func (w window) HasTouchStart() bool { return has(w.reflect, w.v, "ontouchstart") }
func (w window) HasActiveX() bool    { return has(w.reflect, w.v, "ActiveXObject") }

func (w window) HasDocumentTouch() bool {
	dt := w.v.Get("DocumentTouch")
	if dt.Type() != js.TypeFunction {
		return false
	}
	doc := w.v.Get("document")
	return present(doc) && doc.InstanceOf(dt)
}

type document struct {
	v       js.Value
	reflect js.Value
}

func (d document) DocumentElement() probe.Element { return d.wrap(d.v.Get("documentElement")) }
func (d document) Body() probe.Element            { return d.wrap(d.v.Get("body")) }

func (d document) CreateElement(tag string) (el probe.Element) {
	defer func() {
		if recover() != nil {
			el = nil
		}
	}()
	return d.wrap(d.v.Call("createElement", tag))
}

func (d document) wrap(v js.Value) probe.Element {
	if !present(v) {
		return nil
	}
	return &element{v: v, reflect: d.reflect}
}

type element struct {
	v       js.Value
	reflect js.Value
}

func (e *element) Style() probe.Style {
	s := e.v.Get("style")
	if !present(s) {
		return nil
	}
	return style{v: s, reflect: e.reflect}
}

func (e *element) OffsetWidth() int { return intProp(e.v, "offsetWidth") }
func (e *element) ClientWidth() int { return intProp(e.v, "clientWidth") }

func (e *element) AppendChild(child probe.Element) error {
	return e.call("appendChild", child)
}

func (e *element) RemoveChild(child probe.Element) error {
	return e.call("removeChild", child)
}

func (e *element) call(method string, child probe.Element) (err error) {
	c, ok := child.(*element)
	if !ok {
		return ErrForeignElement
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrJSException, method, r)
		}
	}()
	e.v.Call(method, c.v)
	return nil
}

type style struct {
	v       js.Value
	reflect js.Value
}

func (s style) Supports(property string) bool { return has(s.reflect, s.v, property) }

func (s style) Set(property, value string) {
	defer func() { _ = recover() }()
	s.v.Set(property, value)
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// has mirrors the JS "in" operator.
func has(reflect, target js.Value, key string) (ok bool) {
	if !present(reflect) || !present(target) {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return reflect.Call("has", target, key).Bool()
}

func stringProp(v js.Value, key string) string {
	p := v.Get(key)
	if p.Type() != js.TypeString {
		return ""
	}
	return p.String()
}

func intProp(v js.Value, key string) int {
	p := v.Get(key)
	if p.Type() != js.TypeNumber {
		return 0
	}
	return p.Int()
}
