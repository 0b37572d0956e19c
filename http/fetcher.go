// Package http provides an HTTP-based implementation of linkex.Fetcher
// for fetching manga index pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/linkex"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies linkex to the sites it fetches.
const DefaultUserAgent = "linkex/2.0 (Advanced Web Scraper)"

// Ensure Fetcher implements linkex.Fetcher at compile time.
var _ linkex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Redirects are followed and TLS certificates are verified, both as
// configured by net/http defaults.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   linkex.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes the fetcher wait on limiter before each request.
func WithLimiter(l linkex.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at rawURL and returns its body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", linkex.Errorf(linkex.EFETCH, "invalid URL %q: %v", rawURL, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", linkex.Errorf(linkex.EFETCH, "waiting for rate limit: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", linkex.Errorf(linkex.EFETCH, "creating request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", linkex.Errorf(linkex.EFETCH, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", linkex.Errorf(linkex.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", linkex.Errorf(linkex.EFETCH, "reading body of %s: %v", rawURL, err)
	}

	html, err := decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", linkex.Errorf(linkex.EFETCH, "decoding body of %s: %v", rawURL, err)
	}

	return html, nil
}

// decode converts body to UTF-8. A charset declared in the Content-Type
// header or the document wins, and invalid sequences in it become U+FFFD.
// An undeclared body that is already valid UTF-8 is kept as is.
func decode(body []byte, contentType string) (string, error) {
	enc, _, certain := charset.DetermineEncoding(body, contentType)
	if !certain && utf8.Valid(body) {
		return string(body), nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
