package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkex"
)

// Ensure LoggingParser implements linkex.Parser.
var _ linkex.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging. Documents it returns
// log every selection.
type LoggingParser struct {
	next   linkex.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next linkex.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string) (doc linkex.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	doc, err = p.next.Parse(html)
	if err != nil {
		return nil, err
	}
	return &loggingDocument{next: doc, logger: p.logger}, nil
}

// loggingDocument logs the pattern and match count of each selection.
type loggingDocument struct {
	next   linkex.Document
	logger *slog.Logger
}

func (d *loggingDocument) Select(pattern linkex.SelectorPattern) (nodes []linkex.Node) {
	defer func(begin time.Time) {
		d.logger.Info("select",
			"pattern", pattern.String(),
			"count", len(nodes),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Select(pattern)
}
