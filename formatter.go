package linkex

import (
	"strconv"
	"strings"
)

// TimestampLayout is the layout of the "Generated" header line.
const TimestampLayout = "2006-01-02 15:04:05"

var _ Formatter = (*TextFormatter)(nil)

// TextFormatter renders a result as the plain text chapter list:
// a commented header block followed by one numbered entry per link.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Extension returns "txt".
func (f *TextFormatter) Extension() string {
	return "txt"
}

// Format renders the result. Entries are separated by blank lines.
func (f *TextFormatter) Format(result *ScrapeResult) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Manga Chapter Links\n")
	b.WriteString("# Title: " + result.Title + "\n")
	b.WriteString("# Source: " + result.SourceURL + "\n")
	b.WriteString("# Total Chapters: " + strconv.Itoa(len(result.Links)) + "\n")
	b.WriteString("# Generated: " + result.ScrapedAt.Local().Format(TimestampLayout) + "\n")
	b.WriteString("# ==========================================\n\n")

	for i, link := range result.Links {
		b.WriteString("# Chapter " + strconv.Itoa(i+1) + "\n")
		b.WriteString(link + "\n\n")
	}

	return b.String(), nil
}
