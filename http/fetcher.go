// Package http provides an HTTP-based implementation of fbdocs.Fetcher.
// It performs one synchronous GET per call with a browser-like header set,
// which Firebase's documentation servers expect.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/kavinduUdhara/fbdocs"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// defaultHeaders mimic a desktop Chrome browser. Some documentation hosts
// serve reduced or blocked content to unknown user agents.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Ensure Fetcher implements fbdocs.Fetcher at compile time.
var _ fbdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
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

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fbdocs.Errorf(fbdocs.EINVALID, "invalid URL %q: %v", url, err)
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return decodeToUTF8(body, resp.Header.Get("Content-Type"))
}

// decodeToUTF8 converts the response body to UTF-8 based on the declared or
// detected charset. UTF-8 input is returned as-is.
func decodeToUTF8(body []byte, contentType string) (string, error) {
	enc, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		return string(body), nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()))
	if err != nil {
		return "", fbdocs.Errorf(fbdocs.EINTERNAL, "decoding %s response: %v", name, err)
	}
	return string(decoded), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusError maps a non-2xx status code to a domain error.
func statusError(status int, url string) error {
	switch {
	case status == http.StatusNotFound:
		return fbdocs.Errorf(fbdocs.ENOTFOUND, "HTTP 404 for %s", url)
	case status >= 500:
		return fbdocs.Errorf(fbdocs.EUNAVAILABLE, "HTTP %d for %s", status, url)
	default:
		return fbdocs.Errorf(fbdocs.EINTERNAL, "HTTP %d for %s", status, url)
	}
}
