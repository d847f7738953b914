package chromehost

import (
	"fmt"

	"github.com/considonet/g-env/pkg/probe"
)

type host struct {
	s    *session
	snap snapshot
}

func (h *host) Navigator() probe.Navigator { return navigator{snap: h.snap} }
func (h *host) Window() probe.Window       { return window{snap: h.snap} }
func (h *host) Document() probe.Document   { return &document{h: h} }

type navigator struct {
	snap snapshot
}

func (n navigator) UserAgent() string  { return n.snap.UserAgent }
func (n navigator) Platform() string   { return n.snap.Platform }
func (n navigator) AppVersion() string { return n.snap.AppVersion }

type window struct {
	snap snapshot
}

func (w window) HasTouchStart() bool    { return w.snap.TouchStart }
func (w window) HasDocumentTouch() bool { return w.snap.DocumentTouch }
func (w window) HasActiveX() bool       { return w.snap.ActiveX }

type document struct {
	h *host
}

func (d *document) DocumentElement() probe.Element {
	if !d.h.snap.HasRoot {
		return nil
	}
	return &element{s: d.h.s, slot: rootSlot}
}

func (d *document) Body() probe.Element {
	if !d.h.snap.HasBody {
		return nil
	}
	return &element{s: d.h.s, slot: bodySlot}
}

func (d *document) CreateElement(tag string) probe.Element {
	expr := fmt.Sprintf(`(function () {
		%s.push(document.createElement(%s));
		return %s.length - 1;
	})()`, registry, jsString(tag), registry)

	var slot int
	if err := d.h.s.eval(expr, &slot); err != nil {
		return nil
	}
	return &element{s: d.h.s, slot: slot}
}

type element struct {
	s    *session
	slot int
}

func (e *element) Style() probe.Style { return &style{el: e} }

func (e *element) OffsetWidth() int {
	var w int
	_ = e.s.eval(e.s.node(e.slot)+".offsetWidth", &w)
	return w
}

func (e *element) ClientWidth() int {
	var w int
	_ = e.s.eval(e.s.node(e.slot)+".clientWidth", &w)
	return w
}

func (e *element) AppendChild(child probe.Element) error {
	return e.mutate("appendChild", child)
}

func (e *element) RemoveChild(child probe.Element) error {
	return e.mutate("removeChild", child)
}

func (e *element) mutate(method string, child probe.Element) error {
	c, ok := child.(*element)
	if !ok || c.s != e.s {
		return ErrForeignElement
	}
	var done bool
	expr := fmt.Sprintf("(%s.%s(%s), true)", e.s.node(e.slot), method, e.s.node(c.slot))
	return e.s.eval(expr, &done)
}

type style struct {
	el *element
}

func (st *style) Supports(property string) bool {
	var ok bool
	expr := fmt.Sprintf("%s in %s.style", jsString(property), st.el.s.node(st.el.slot))
	_ = st.el.s.eval(expr, &ok)
	return ok
}

func (st *style) Set(property, value string) {
	var done bool
	expr := fmt.Sprintf("(%s.style[%s] = %s, true)", st.el.s.node(st.el.slot), jsString(property), jsString(value))
	_ = st.el.s.eval(expr, &done)
}
