package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/linkex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkex.RunService = (*RunService)(nil)

// RunService implements linkex.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a run and its links in one transaction.
func (s *RunService) CreateRun(ctx context.Context, run *linkex.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC().Truncate(time.Second)
	run.LinksHash = HashLinks(run.Links)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, title, links_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.Title, run.LinksHash, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, link := range run.Links {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_links (run_id, position, url) VALUES (?, ?, ?)
		`, run.ID, i, link); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindLatestRun retrieves the most recent run for a source URL with its
// links in their recorded order. Runs created within the same second are
// ordered by insertion.
func (s *RunService) FindLatestRun(ctx context.Context, sourceURL string) (*linkex.Run, error) {
	var run linkex.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, links_hash, created_at
		FROM runs
		WHERE source_url = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, sourceURL).Scan(&run.ID, &run.SourceURL, &run.Title, &run.LinksHash, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, linkex.Errorf(linkex.ENOTFOUND, "no previous run for %s", sourceURL)
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if run.Links, err = s.findLinks(ctx, run.ID); err != nil {
		return nil, err
	}

	return &run, nil
}

func (s *RunService) findLinks(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url FROM run_links WHERE run_id = ? ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run links: %w", err)
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
