package fbdocs

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body
	// decoded to UTF-8. Non-2xx responses are errors; ErrorCode reports
	// ENOTFOUND for 404 and EUNAVAILABLE for 5xx.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
