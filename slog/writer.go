package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkex"
)

// Ensure LoggingResultWriter implements linkex.ResultWriter.
var _ linkex.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with debug logging.
type LoggingResultWriter struct {
	next   linkex.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next linkex.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, result *linkex.ScrapeResult) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write result",
			"title", result.Title,
			"links", len(result.Links),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, result)
}
