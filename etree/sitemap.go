// Package etree renders scrape results as XML using github.com/beevik/etree.
package etree

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/fwojciec/linkex"
)

// SitemapNamespace is the XML namespace of the sitemap protocol.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ linkex.Formatter = (*SitemapFormatter)(nil)

// SitemapFormatter renders a result as a sitemap <urlset> with one <url>
// entry per chapter link, in chapter order.
type SitemapFormatter struct{}

// NewSitemapFormatter creates a new SitemapFormatter.
func NewSitemapFormatter() *SitemapFormatter {
	return &SitemapFormatter{}
}

// Extension returns "xml".
func (f *SitemapFormatter) Extension() string {
	return "xml"
}

// Format renders the result as an indented sitemap document.
func (f *SitemapFormatter) Format(result *linkex.ScrapeResult) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	lastmod := result.ScrapedAt.UTC().Format("2006-01-02")
	for _, link := range result.Links {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(link)
		if !result.ScrapedAt.IsZero() {
			u.CreateElement("lastmod").SetText(lastmod)
		}
	}

	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("rendering sitemap: %w", err)
	}
	return s, nil
}
