package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkex"
	"github.com/fwojciec/linkex/etree"
	"github.com/fwojciec/linkex/fs"
	"github.com/fwojciec/linkex/goquery"
	lxhttp "github.com/fwojciec/linkex/http"
	"github.com/fwojciec/linkex/ratelimit"
	"github.com/fwojciec/linkex/scrape"
	lxslog "github.com/fwojciec/linkex/slog"
	"github.com/fwojciec/linkex/sqlite"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()
	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding run history. Opened only when --history is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		reportError(stderr, err)
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkex"),
		kong.Description("Extract the chapter links of a manga index page into a naturally sorted list."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"default_origin":     linkex.DefaultOrigin,
			"default_user_agent": lxhttp.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return linkex.Errorf(linkex.EUSAGE, "missing URL argument")
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return linkex.Errorf(linkex.EUSAGE, "%v", err)
	}

	if !linkex.IsValidURL(cli.URL) {
		return linkex.Errorf(linkex.EINVALID, "invalid URL %q: must start with http:// or https://", cli.URL)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire fetching and parsing
	fetcher := lxhttp.NewFetcher(
		lxhttp.WithTimeout(cli.Timeout),
		lxhttp.WithUserAgent(cli.UserAgent),
		lxhttp.WithLimiter(ratelimit.NewLimiter(cli.Rate)),
	)
	defer fetcher.Close()

	var (
		f linkex.Fetcher = fetcher
		p linkex.Parser  = goquery.NewParser()
	)
	if logger != nil {
		f = lxslog.NewLoggingFetcher(f, logger)
		p = lxslog.NewLoggingParser(p, logger)
	}
	deps.Scraper = &scrape.Scraper{
		Fetcher: f,
		Parser:  p,
		Origin:  cli.Origin,
	}

	// Wire output
	var w linkex.ResultWriter = fs.NewWriter(cli.OutputDir, newFormatter(cli.Format))
	if logger != nil {
		w = lxslog.NewLoggingResultWriter(w, logger)
	}
	deps.Writer = w

	// Wire optional run history
	if cli.History != "" {
		m.DB = sqlite.NewDB(cli.History)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "warning: history disabled: failed to open %q: %v\n", cli.History, err)
		}
		defer m.Close()

		if m.DB.IsOpen() {
			var runs linkex.RunService = sqlite.NewRunService(m.DB)
			if logger != nil {
				runs = lxslog.NewLoggingRunService(runs, logger)
			}
			deps.Runs = runs
		}
	}

	cmd := &ScrapeCmd{URL: cli.URL}
	return cmd.Run(deps)
}

const usage = "usage: linkex [flags] <url>"

// newFormatter returns the output formatter for a --format value.
func newFormatter(format string) linkex.Formatter {
	if format == FormatSitemap {
		return etree.NewSitemapFormatter()
	}
	return linkex.NewTextFormatter()
}

// reportError prints err for the user. Empty extractions are warnings.
func reportError(w io.Writer, err error) {
	prefix := "error"
	if linkex.ErrorCode(err) == linkex.EEMPTY {
		prefix = "warning"
	}

	msg := err.Error()
	if linkex.ErrorCode(err) != linkex.EINTERNAL {
		msg = linkex.ErrorMessage(err)
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, msg)
}
