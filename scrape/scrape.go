// Package scrape provides the extraction pipeline: it fetches one manga index
// page, selects its chapter links and title, and assembles a sorted result.
package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/linkex"
)

// Scraper runs the extraction pipeline for a single page.
type Scraper struct {
	Fetcher linkex.Fetcher
	Parser  linkex.Parser

	// Origin is the base URL relative chapter links are joined against.
	// Defaults to linkex.DefaultOrigin.
	Origin string

	// Now returns the time recorded on results. Defaults to time.Now.
	Now func() time.Time
}

// State is a step of the extraction pipeline.
type State int

const (
	StateInit State = iota
	StateFetched
	StateParsed
	StateLinksSelected
	StateLinksResolved
	StateSorted
	StateTitleSelected
	StateComplete
	StateFailed
)

// String returns the state name used in progress output.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateFetched:
		return "fetched"
	case StateParsed:
		return "parsed"
	case StateLinksSelected:
		return "links-selected"
	case StateLinksResolved:
		return "links-resolved"
	case StateSorted:
		return "sorted"
	case StateTitleSelected:
		return "title-selected"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ProgressEvent reports progress during a scrape.
// Completed and Total are set while links are being resolved.
type ProgressEvent struct {
	State     State
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Scrape fetches sourceURL and extracts its chapter links and title.
// It returns either a complete result or an error; the progress callback,
// if provided, receives one event per state transition and one per resolved
// link. Failures emit a StateFailed event carrying the error.
func (s *Scraper) Scrape(ctx context.Context, sourceURL string, progress ProgressFunc) (*linkex.ScrapeResult, error) {
	emit := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}
	fail := func(err error) (*linkex.ScrapeResult, error) {
		emit(ProgressEvent{State: StateFailed, URL: sourceURL, Error: err})
		return nil, err
	}

	emit(ProgressEvent{State: StateInit, URL: sourceURL})

	if !linkex.IsValidURL(sourceURL) {
		return fail(linkex.Errorf(linkex.EINVALID, "invalid URL %q: must start with http:// or https://", sourceURL))
	}

	html, err := s.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		if linkex.ErrorCode(err) == linkex.EINTERNAL {
			err = linkex.Errorf(linkex.EFETCH, "fetching %s: %v", sourceURL, err)
		}
		return fail(err)
	}
	emit(ProgressEvent{State: StateFetched, URL: sourceURL})

	doc, err := s.Parser.Parse(html)
	if err != nil {
		if linkex.ErrorCode(err) == linkex.EINTERNAL {
			err = linkex.Errorf(linkex.EPARSE, "parsing %s: %v", sourceURL, err)
		}
		return fail(err)
	}
	emit(ProgressEvent{State: StateParsed, URL: sourceURL})

	nodes := doc.Select(linkex.PatternChapterLinks)
	if len(nodes) == 0 {
		nodes = doc.Select(linkex.PatternChapterLinksLoose)
	}
	if len(nodes) == 0 {
		return fail(linkex.Errorf(linkex.EEMPTY, "no chapter links found"))
	}
	emit(ProgressEvent{State: StateLinksSelected, URL: sourceURL, Total: len(nodes)})

	links := s.resolveLinks(nodes, emit)
	if len(links) == 0 {
		return fail(linkex.Errorf(linkex.EEMPTY, "no chapter links found"))
	}
	emit(ProgressEvent{State: StateLinksResolved, URL: sourceURL, Completed: len(links), Total: len(nodes)})

	linkex.SortNatural(links)
	emit(ProgressEvent{State: StateSorted, URL: sourceURL, Total: len(links)})

	title := extractTitle(doc)
	emit(ProgressEvent{State: StateTitleSelected, URL: sourceURL})

	result := &linkex.ScrapeResult{
		SourceURL: sourceURL,
		Title:     title,
		Links:     links,
		ScrapedAt: s.now(),
	}
	if err := result.Validate(); err != nil {
		return fail(fmt.Errorf("assembling result: %w", err))
	}
	emit(ProgressEvent{State: StateComplete, URL: sourceURL, Completed: len(links), Total: len(links)})

	return result, nil
}

// resolveLinks turns link nodes into absolute URLs, preferring href over src.
// Nodes without a reference or whose joined URL is not absolute are dropped.
func (s *Scraper) resolveLinks(nodes []linkex.Node, emit func(ProgressEvent)) []string {
	origin := s.origin()
	links := make([]string, 0, len(nodes))
	for i, n := range nodes {
		ref := n.Attr("href")
		if ref == "" {
			ref = n.Attr("src")
		}

		var link string
		if ref != "" {
			if joined := linkex.JoinURL(origin, ref); linkex.IsValidURL(joined) {
				link = joined
				links = append(links, link)
			}
		}

		emit(ProgressEvent{
			State:     StateLinksSelected,
			Completed: i + 1,
			Total:     len(nodes),
			URL:       link,
		})
	}
	return links
}

// extractTitle returns the trimmed text of the title heading,
// or linkex.UnknownTitle when it is missing or blank.
func extractTitle(doc linkex.Document) string {
	nodes := doc.Select(linkex.PatternTitleHeading)
	if len(nodes) == 0 {
		return linkex.UnknownTitle
	}
	title := strings.TrimSpace(nodes[0].Text())
	if title == "" {
		return linkex.UnknownTitle
	}
	return title
}

func (s *Scraper) origin() string {
	if s.Origin == "" {
		return linkex.DefaultOrigin
	}
	return s.Origin
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
