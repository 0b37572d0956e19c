package linkex

import (
	"context"
	"time"
)

// Run is a recorded successful scrape, kept so later runs can report which
// chapters are new.
type Run struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Links     []string  `json:"links"`
	LinksHash string    `json:"linksHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "run title required")
	}
	return nil
}

// NewRun creates an unsaved Run from a scrape result.
func NewRun(result *ScrapeResult) *Run {
	return &Run{
		SourceURL: result.SourceURL,
		Title:     result.Title,
		Links:     append([]string(nil), result.Links...),
	}
}

// RunService represents a service for managing scrape history.
type RunService interface {
	// CreateRun records a run. ID, LinksHash and CreatedAt are assigned.
	CreateRun(ctx context.Context, run *Run) error

	// FindLatestRun returns the most recent run for a source URL.
	// Returns ENOTFOUND if the source has never been recorded.
	FindLatestRun(ctx context.Context, sourceURL string) (*Run, error)
}

// NewLinks returns the links in current that are absent from previous,
// in the order they appear in current.
func NewLinks(previous, current []string) []string {
	seen := make(map[string]bool, len(previous))
	for _, l := range previous {
		seen[l] = true
	}

	var added []string
	for _, l := range current {
		if !seen[l] {
			added = append(added, l)
		}
	}
	return added
}
