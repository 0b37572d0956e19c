package mock

import "github.com/fwojciec/linkex"

var _ linkex.Parser = (*Parser)(nil)

// Parser is a mock implementation of linkex.Parser.
type Parser struct {
	ParseFn func(html string) (linkex.Document, error)
}

func (p *Parser) Parse(html string) (linkex.Document, error) {
	return p.ParseFn(html)
}

var _ linkex.Document = (*Document)(nil)

// Document is a mock implementation of linkex.Document.
type Document struct {
	SelectFn func(pattern linkex.SelectorPattern) []linkex.Node
}

func (d *Document) Select(pattern linkex.SelectorPattern) []linkex.Node {
	return d.SelectFn(pattern)
}

var _ linkex.Node = (*Node)(nil)

// Node is a static implementation of linkex.Node.
type Node struct {
	Attrs   map[string]string
	Content string
}

func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

func (n *Node) Text() string {
	return n.Content
}
