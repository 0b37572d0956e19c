package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/linkex"
	"github.com/fwojciec/linkex/scrape"
)

// Output formats accepted by --format.
const (
	FormatText    = "text"
	FormatSitemap = "sitemap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper *scrape.Scraper
	Writer  linkex.ResultWriter

	// Runs is nil when run history is disabled.
	Runs linkex.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" help:"Manga index page URL"`
	Origin    string        `default:"${default_origin}" help:"Base URL relative chapter links are joined against"`
	Timeout   time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	OutputDir string        `short:"o" default:"." help:"Directory to write the chapter list to"`
	Format    string        `short:"f" default:"text" enum:"text,sitemap" help:"Output format (text, sitemap)"`
	UserAgent string        `default:"${default_user_agent}" help:"User-Agent header sent with the request"`
	Rate      float64       `default:"1" help:"Requests per second per domain (0 disables limiting)"`
	History   string        `env:"LINKEX_HISTORY" help:"SQLite database recording runs, used to report new chapters"`
	Verbose   bool          `short:"v" help:"Log operations to stderr"`
}
