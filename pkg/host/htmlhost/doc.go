// Package htmlhost implements probe.Host over an in-memory HTML document
// parsed with golang.org/x/net/html.
//
// It lets the probe run without a browser: on a server, from the CLI, or in
// tests. Navigator strings, window markers, the set of style properties the
// simulated engine exposes and its scrollbar gutter are supplied as options.
//
// Inline styles are stored in each element's style attribute and read back
// with the douceur CSS declaration parser, so the document can be rendered
// at any time with HTML and inspected.
//
// The layout model is deliberately small: detached elements measure 0, an
// attached element is as wide as its px width, and an element with
// overflow: scroll loses the scrollbar gutter from its client width.
package htmlhost
