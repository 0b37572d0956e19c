package mock

import (
	"context"

	"github.com/fwojciec/linkex"
)

var _ linkex.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of linkex.Formatter.
type Formatter struct {
	FormatFn    func(result *linkex.ScrapeResult) (string, error)
	ExtensionFn func() string
}

func (f *Formatter) Format(result *linkex.ScrapeResult) (string, error) {
	return f.FormatFn(result)
}

func (f *Formatter) Extension() string {
	return f.ExtensionFn()
}

var _ linkex.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of linkex.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *linkex.ScrapeResult) (string, error)
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *linkex.ScrapeResult) (string, error) {
	return w.WriteResultFn(ctx, result)
}
