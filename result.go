package linkex

import (
	"context"
	"time"
)

// ScrapeResult is the outcome of one successful scrape of a manga index page.
type ScrapeResult struct {
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Links     []string  `json:"links"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *ScrapeResult) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "result source URL required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "result title required")
	}
	if len(r.Links) == 0 {
		return Errorf(EINVALID, "result has no chapter links")
	}
	return nil
}

// Filename returns the file name the result is saved under for the given
// extension, e.g. "test_manga.txt".
func (r *ScrapeResult) Filename(ext string) string {
	return SafeName(r.Title) + "." + ext
}

// Formatter renders a ScrapeResult as file content.
type Formatter interface {
	// Format returns the file content for the result.
	Format(result *ScrapeResult) (string, error)

	// Extension returns the file extension without the leading dot.
	Extension() string
}

// ResultWriter persists scrape results.
type ResultWriter interface {
	// WriteResult saves the result and returns the path written.
	// Returns EPERSIST if the output cannot be created or written.
	WriteResult(ctx context.Context, result *ScrapeResult) (path string, err error)
}
