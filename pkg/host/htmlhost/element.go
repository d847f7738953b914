package htmlhost

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/considonet/g-env/pkg/probe"
)

// Element wraps an element node of a Document.
type Element struct {
	node *html.Node
	doc  *Document
}

func (e *Element) Style() probe.Style {
	return &Style{el: e}
}

// OffsetWidth is the px width of an attached element, 0 when detached.
func (e *Element) OffsetWidth() int {
	if !e.attached() {
		return 0
	}
	return pxValue(e.inlineStyle().get("width"))
}

// ClientWidth subtracts the scrollbar gutter from scrolling elements.
func (e *Element) ClientWidth() int {
	width := e.OffsetWidth()
	if width == 0 {
		return 0
	}
	if strings.EqualFold(strings.TrimSpace(e.inlineStyle().get("overflow")), "scroll") {
		width -= e.doc.cfg.gutter
	}
	return max(width, 0)
}

func (e *Element) AppendChild(child probe.Element) error {
	c, err := e.own(child)
	if err != nil {
		return err
	}
	if c.node.Parent != nil {
		return fmt.Errorf("%w: <%s> already has a parent", ErrHierarchy, c.node.Data)
	}
	for n := e.node; n != nil; n = n.Parent {
		if n == c.node {
			return fmt.Errorf("%w: <%s> would contain itself", ErrHierarchy, c.node.Data)
		}
	}
	e.node.AppendChild(c.node)
	return nil
}

func (e *Element) RemoveChild(child probe.Element) error {
	c, err := e.own(child)
	if err != nil {
		return err
	}
	if c.node.Parent != e.node {
		return fmt.Errorf("%w: <%s>", ErrNotChild, c.node.Data)
	}
	e.node.RemoveChild(c.node)
	return nil
}

func (e *Element) own(child probe.Element) (*Element, error) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.doc != e.doc {
		return nil, ErrForeignElement
	}
	return c, nil
}

func (e *Element) attached() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

func (e *Element) inlineStyle() declarations {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == "style" {
			return parseDeclarations(attr.Val)
		}
	}
	return nil
}

func (e *Element) setInlineStyle(d declarations) {
	val := d.String()
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == "style" {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "style", Val: val})
}

// pxValue reads "100px" or "100" as 100; anything else is 0.
func pxValue(v string) int {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return int(f)
}
