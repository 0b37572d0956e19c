package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkex"
)

// Container identifiers of the manga index page layout.
const (
	ChaptersListID   = "chapters-list"
	TitleContainerID = "manga-info-rightColumn"
)

// SelectorRule describes one fixed lookup: the container element to find,
// the elements to collect below it, and whether only the first match counts.
type SelectorRule struct {
	Container string
	Target    string
	FirstOnly bool
}

// Rules maps each selector pattern to its lookup.
var Rules = map[linkex.SelectorPattern]SelectorRule{
	linkex.PatternChapterLinks: {
		Container: "div#" + ChaptersListID + ", ul#" + ChaptersListID,
		Target:    "a",
	},
	linkex.PatternChapterLinksLoose: {
		Container: "#" + ChaptersListID,
		Target:    "a",
	},
	linkex.PatternTitleHeading: {
		Container: "div#" + TitleContainerID,
		Target:    "h1",
		FirstOnly: true,
	},
}

// Select returns the elements of doc matching pattern in document order.
// Anchors are collected at any depth below the container. For first-only
// rules at most one element is returned. An unknown pattern or a missing
// container yields an empty selection.
func Select(doc *goquery.Document, pattern linkex.SelectorPattern) *goquery.Selection {
	rule, ok := Rules[pattern]
	if !ok {
		return doc.FindNodes()
	}

	found := doc.Find(rule.Container).Find(rule.Target)
	if rule.FirstOnly {
		return found.First()
	}
	return found
}
