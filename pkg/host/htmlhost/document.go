package htmlhost

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/considonet/g-env/pkg/probe"
)

// Document wraps the root node of the parsed page.
type Document struct {
	root *html.Node
	cfg  *config
}

// DocumentElement returns the <html> element, or nil.
func (d *Document) DocumentElement() probe.Element {
	if n := findChild(d.root, atom.Html); n != nil {
		return d.wrap(n)
	}
	return nil
}

// Body returns the <body> element, or nil while there is none.
func (d *Document) Body() probe.Element {
	if n := findChild(findChild(d.root, atom.Html), atom.Body); n != nil {
		return d.wrap(n)
	}
	return nil
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) probe.Element {
	return d.wrap(newElementNode(strings.ToLower(tag)))
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{node: n, doc: d}
}

func findChild(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}
