package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkex"
	"github.com/fwojciec/linkex/scrape"
)

// progressURLWidth is the display width of the link shown after the
// in-place progress counter.
const progressURLWidth = 60

// ScrapeCmd extracts the chapter list of one page and saves it.
type ScrapeCmd struct {
	URL string
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching %s\n", c.URL)

	progress := func(event scrape.ProgressEvent) {
		switch event.State {
		case scrape.StateFetched:
			fmt.Fprintln(deps.Stdout, "Parsing page")
		case scrape.StateLinksSelected:
			if event.Completed == 0 {
				fmt.Fprintf(deps.Stdout, "Found %d chapter links\n", event.Total)
				return
			}
			fmt.Fprint(deps.Stdout, scrape.FormatProgress(event, progressURLWidth))
			if event.Completed == event.Total {
				fmt.Fprintln(deps.Stdout)
			}
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL, progress)
	if err != nil {
		return err
	}

	path, err := deps.Writer.WriteResult(deps.Ctx, result)
	if err != nil {
		return err
	}

	printSummary(deps, result, path)

	if deps.Runs != nil {
		c.recordRun(deps, result)
	}

	return nil
}

func printSummary(deps *Dependencies, result *linkex.ScrapeResult, path string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout, " SCRAPING SUMMARY")
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Manga Title:    %s\n", result.Title)
	fmt.Fprintf(deps.Stdout, "Source URL:     %s\n", result.SourceURL)
	fmt.Fprintf(deps.Stdout, "Chapters Found: %d\n", len(result.Links))
	fmt.Fprintf(deps.Stdout, "Filename:       %s\n", filepath.Base(path))
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Saved to %s\n", path)
}

// recordRun reports chapters added since the previous run of the same page
// and records this run. Failures are warnings; the result is already saved.
func (c *ScrapeCmd) recordRun(deps *Dependencies, result *linkex.ScrapeResult) {
	previous, err := deps.Runs.FindLatestRun(deps.Ctx, result.SourceURL)
	switch {
	case linkex.ErrorCode(err) == linkex.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, "History: first run for this page")
	case err != nil:
		fmt.Fprintf(deps.Stderr, "warning: reading history: %v\n", err)
	default:
		added := linkex.NewLinks(previous.Links, result.Links)
		fmt.Fprintf(deps.Stdout, "History: %d new chapters since %s\n",
			len(added), previous.CreatedAt.Local().Format(linkex.TimestampLayout))
		for _, link := range added {
			fmt.Fprintf(deps.Stdout, "  + %s\n", link)
		}
	}

	if err := deps.Runs.CreateRun(deps.Ctx, linkex.NewRun(result)); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: recording history: %v\n", err)
	}
}
