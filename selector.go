package linkex

// SelectorPattern identifies one of the fixed structural lookups used to
// pull chapter links and the title out of a manga index page.
type SelectorPattern int

// Supported selector patterns.
const (
	// PatternChapterLinks collects every anchor below the div or ul
	// with id "chapters-list".
	PatternChapterLinks SelectorPattern = iota + 1

	// PatternChapterLinksLoose collects every anchor below any element
	// with id "chapters-list". Used when PatternChapterLinks finds nothing.
	PatternChapterLinksLoose

	// PatternTitleHeading returns the first h1 below the div with
	// id "manga-info-rightColumn".
	PatternTitleHeading
)

// String returns the pattern name used in logs.
func (p SelectorPattern) String() string {
	switch p {
	case PatternChapterLinks:
		return "chapter-links"
	case PatternChapterLinksLoose:
		return "chapter-links-loose"
	case PatternTitleHeading:
		return "title-heading"
	}
	return "unknown"
}

// Node is a read-only view of an element in a parsed page.
// The underlying tree is owned by the Parser that produced it.
type Node interface {
	// Attr returns the value of the named attribute, or "" if absent.
	Attr(name string) string

	// Text returns the concatenated text content of the node and its descendants.
	Text() string
}

// Document is a parsed HTML page.
type Document interface {
	// Select returns the nodes matching pattern in document order.
	// Returns an empty slice (not an error) when nothing matches.
	Select(pattern SelectorPattern) []Node
}

// Parser turns raw HTML into a Document.
type Parser interface {
	// Parse parses html. Returns EPARSE if the input cannot be parsed.
	Parse(html string) (Document, error)
}
