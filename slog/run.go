package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkex"
)

// Ensure LoggingRunService implements linkex.RunService.
var _ linkex.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with debug logging.
type LoggingRunService struct {
	next   linkex.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next linkex.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *linkex.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"url", run.SourceURL,
			"id", run.ID,
			"links", len(run.Links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindLatestRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindLatestRun(ctx context.Context, sourceURL string) (run *linkex.Run, err error) {
	defer func(begin time.Time) {
		found := run != nil
		s.logger.Info("find latest run",
			"url", sourceURL,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLatestRun(ctx, sourceURL)
}
