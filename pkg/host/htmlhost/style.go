package htmlhost

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Style is the inline style declaration of an Element.
type Style struct {
	el *Element
}

// Supports reports whether the simulated engine exposes the property.
func (s *Style) Supports(property string) bool {
	_, ok := s.el.doc.cfg.properties[property]
	return ok
}

// Set writes the property into the element's style attribute, replacing an
// earlier value.
func (s *Style) Set(property, value string) {
	decls := s.el.inlineStyle()
	s.el.setInlineStyle(decls.set(property, value))
}

// Get returns the inline value of a property, or "".
func (s *Style) Get(property string) string {
	return s.el.inlineStyle().get(property)
}

type declarations []*css.Declaration

func parseDeclarations(text string) declarations {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	// douceur drops the value of an unterminated last declaration
	text = strings.TrimSpace(text)
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil
	}
	return decls
}

func (d declarations) get(property string) string {
	property = strings.ToLower(property)
	// Later declarations win, as in a browser
	for i := len(d) - 1; i >= 0; i-- {
		if strings.ToLower(d[i].Property) == property {
			return d[i].Value
		}
	}
	return ""
}

func (d declarations) set(property, value string) declarations {
	property = strings.ToLower(property)
	for _, decl := range d {
		if strings.ToLower(decl.Property) == property {
			decl.Value = value
			return d
		}
	}
	return append(d, &css.Declaration{Property: property, Value: value})
}

func (d declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		part := decl.Property + ": " + decl.Value
		if decl.Important {
			part += " !important"
		}
		parts = append(parts, part+";")
	}
	return strings.Join(parts, " ")
}
