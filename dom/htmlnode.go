package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// htmlElement adapts a *html.Node to the Element interface.
type htmlElement struct {
	node *html.Node
}

// Parse reads an HTML document and returns its root as an Element.
func Parse(r io.Reader) (Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return htmlElement{node: doc}, nil
}

// FromHTML wraps an already-parsed node.
func FromHTML(n *html.Node) Element {
	return htmlElement{node: n}
}

// Node returns the underlying parsed node.
func Node(e Element) *html.Node {
	if he, ok := e.(htmlElement); ok {
		return he.node
	}
	return nil
}

func (e htmlElement) Name() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

func (e htmlElement) IntAttr(name string, def int) int {
	for _, attr := range e.node.Attr {
		if attr.Key == name {
			if v, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil {
				return v
			}
			return def
		}
	}
	return def
}

func (e htmlElement) Descendants(name string) []Element {
	var out []Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == name {
				out = append(out, htmlElement{node: c})
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

func (e htmlElement) Text() string {
	var sb strings.Builder
	textContent(e.node, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func textContent(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
	// Block-ish separators so adjacent cells and breaks do not run together.
	if n.Type == html.ElementNode {
		switch n.Data {
		case "br", "p", "div", "li", "tr", "td", "th":
			sb.WriteString(" ")
		}
	}
}

func (e htmlElement) Detach() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

func (e htmlElement) Clone() Element {
	return htmlElement{node: cloneNode(e.node)}
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
