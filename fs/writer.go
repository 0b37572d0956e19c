// Package fs provides file-based storage for scrape results.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/linkex"
)

// Ensure Writer implements linkex.ResultWriter at compile time.
var _ linkex.ResultWriter = (*Writer)(nil)

// Writer saves scrape results as files in a directory, one file per result
// named after its title.
type Writer struct {
	dir       string
	formatter linkex.Formatter
}

// NewWriter creates a new Writer that renders results with formatter and
// writes them to dir.
func NewWriter(dir string, formatter linkex.Formatter) *Writer {
	return &Writer{dir: dir, formatter: formatter}
}

// Path returns the path the result would be written to.
func (w *Writer) Path(result *linkex.ScrapeResult) string {
	return filepath.Join(w.dir, result.Filename(w.formatter.Extension()))
}

// WriteResult renders the result and writes it atomically: content goes to a
// temporary file in the target directory which is renamed into place on
// success and removed on failure. An existing file is replaced.
func (w *Writer) WriteResult(ctx context.Context, result *linkex.ScrapeResult) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", linkex.Errorf(linkex.EPERSIST, "writing result: %v", err)
	}

	content, err := w.formatter.Format(result)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", linkex.Errorf(linkex.EPERSIST, "creating output directory: %v", err)
	}

	path := w.Path(result)
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return "", linkex.Errorf(linkex.EPERSIST, "writing %s: %v", path, err)
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
