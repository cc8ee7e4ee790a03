// Package tree loads the grid containers of an HTML document.
package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	pr "github.com/benoitkugler/gridtracks/css/properties"
	"github.com/benoitkugler/gridtracks/css/validation"
	"github.com/benoitkugler/gridtracks/logger"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an HTML document parsed by net/html.
type Document struct {
	Root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	logger.ProgressLogger.Println("Step 1 - Parsing HTML")
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input : %w", err)
	}
	return newDocument(root)
}

func newDocument(root *html.Node) (*Document, error) {
	if root.FirstChild == nil {
		return nil, errors.New("invalid html input : empty document")
	}
	out := Document{Root: root.FirstChild}
	// html.Parse wraps the <html> tag
	if out.Root.Type == html.DoctypeNode {
		out.Root = out.Root.NextSibling
	}
	return &out, nil
}

// ParseString is a convenience wrapper for [Parse].
func ParseString(content string) (*Document, error) {
	return Parse(bytes.NewReader([]byte(content)))
}

// Container is an element with display: grid or inline-grid.
type Container struct {
	Element *html.Node
	Style   pr.Style
	// Items are the in-flow children of the container.
	Items []*html.Node
}

// Name returns a short description of the container, using
// its tag, id and classes.
func (c Container) Name() string {
	var b strings.Builder
	b.WriteString(c.Element.Data)
	if id := attr(c.Element, "id"); id != "" {
		b.WriteString("#" + id)
	}
	for _, class := range strings.Fields(attr(c.Element, "class")) {
		b.WriteString("." + class)
	}
	return b.String()
}

func attr(element *html.Node, key string) string {
	v, _ := hasAttr(element, key)
	return v
}

// these elements never generate boxes
var nonRendered = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Link:     true,
	atom.Meta:     true,
	atom.Title:    true,
}

// elementStyle returns the properties declared in the
// “style“ attribute of [element].
func elementStyle(element *html.Node) pr.Style {
	style := validation.ParseStyle(attr(element, "style"))
	// [hidden] { display: none } from the user agent stylesheet
	if _, hidden := hasAttr(element, "hidden"); hidden {
		style.Display = "none"
	}
	return style
}

func hasAttr(element *html.Node, key string) (string, bool) {
	for _, a := range element.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// GridContainers returns the grid containers of the document,
// in tree order. Elements with display: none, and their
// descendants, are ignored.
func (d *Document) GridContainers() []Container {
	logger.ProgressLogger.Println("Step 2 - Finding grid containers")
	var out []Container
	var walk func(element *html.Node, style pr.Style)
	walk = func(element *html.Node, style pr.Style) {
		isGrid := style.IsGrid()
		if isGrid {
			out = append(out, Container{Element: element, Style: style})
		}
		index := len(out) - 1
		for child := element.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode || nonRendered[child.DataAtom] {
				continue
			}
			childStyle := elementStyle(child)
			if childStyle.Display == "none" {
				continue
			}
			if isGrid {
				out[index].Items = append(out[index].Items, child)
			}
			walk(child, childStyle)
		}
	}
	if d.Root == nil || d.Root.Type != html.ElementNode {
		return nil
	}
	if style := elementStyle(d.Root); style.Display != "none" {
		walk(d.Root, style)
	}
	return out
}
