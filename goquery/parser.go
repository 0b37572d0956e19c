// Package goquery implements HTML parsing and the fixed chapter/title
// lookups on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkex"
)

// Ensure Parser implements linkex.Parser at compile time.
var _ linkex.Parser = (*Parser)(nil)

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html. The input must be valid UTF-8; fetchers are expected to
// have decoded the response body already.
func (p *Parser) Parse(html string) (linkex.Document, error) {
	if !utf8.ValidString(html) {
		return nil, linkex.Errorf(linkex.EPARSE, "failed to parse HTML: input is not valid UTF-8")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, linkex.Errorf(linkex.EPARSE, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Ensure Document implements linkex.Document at compile time.
var _ linkex.Document = (*Document)(nil)

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Select returns the nodes matching pattern in document order.
func (d *Document) Select(pattern linkex.SelectorPattern) []linkex.Node {
	sel := Select(d.doc, pattern)

	nodes := make([]linkex.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Ensure Node implements linkex.Node at compile time.
var _ linkex.Node = (*Node)(nil)

// Node wraps a single-element selection.
type Node struct {
	sel *goquery.Selection
}

// Attr returns the attribute value, or "" if the attribute is absent.
func (n *Node) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// Text returns the combined text of the element and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}
