package htmlhost

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/considonet/g-env/pkg/probe"
)

// Host is an in-memory probe.Host.
type Host struct {
	nav navigator
	win window
	doc *Document
}

var _ probe.Host = (*Host)(nil)

// New creates a host over an empty document with a head and a body.
func New(opts ...Option) *Host {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := newElementNode("html")
	htmlEl.AppendChild(newElementNode("head"))
	htmlEl.AppendChild(newElementNode("body"))
	root.AppendChild(htmlEl)
	return newHost(root, newConfig(opts))
}

// Parse creates a host over an existing page.
func Parse(r io.Reader, opts ...Option) (*Host, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}
	return newHost(root, newConfig(opts)), nil
}

func newHost(root *html.Node, cfg *config) *Host {
	return &Host{
		nav: cfg.nav,
		win: cfg.win,
		doc: &Document{root: root, cfg: cfg},
	}
}

func (h *Host) Navigator() probe.Navigator { return h.nav }
func (h *Host) Window() probe.Window       { return h.win }
func (h *Host) Document() probe.Document   { return h.doc }

// HTML renders the current document.
func (h *Host) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, h.doc.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type navigator struct {
	userAgent  string
	platform   string
	appVersion string
}

func (n navigator) UserAgent() string  { return n.userAgent }
func (n navigator) Platform() string   { return n.platform }
func (n navigator) AppVersion() string { return n.appVersion }

type window struct {
	touchStart    bool
	documentTouch bool
	activeX       bool
}

func (w window) HasTouchStart() bool    { return w.touchStart }
func (w window) HasDocumentTouch() bool { return w.documentTouch }
func (w window) HasActiveX() bool       { return w.activeX }

func newElementNode(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}
