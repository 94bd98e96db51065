// Package http provides an HTTP-based implementation of
// webextractor.Fetcher for fetching static pages that don't require
// JavaScript rendering.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	webextractor "github.com/achieveai/mcp-web-extractor"
)

// DefaultFetchTimeout caps a fetch when the request context carries no
// deadline of its own.
const DefaultFetchTimeout = 2 * time.Minute

// DefaultUserAgent identifies this adapter to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; mcp-web-extractor/0.1)"

// Ensure Fetcher implements webextractor.Fetcher at compile time.
var _ webextractor.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Redirects are followed automatically; any non-2xx status is an error.
// Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the outer bound for HTTP requests. Per-request context
// deadlines shorter than this still apply. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit throttles fetches to at most rps requests per second per
// host. No limiting is applied by default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = newHostLimiter(rps)
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

// Fetch performs a single GET against the URL and returns the body.
// Failures are classified as acquisition errors: a timeout, an HTTP error
// status carrying the status code, or any other transport fault with its
// cause preserved.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", webextractor.Errorf(webextractor.EACQUISITION, "invalid url %q: %v", rawURL, err)
		}
		if err := f.limiter.wait(ctx, u.Host); err != nil {
			return "", classify(rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", webextractor.Errorf(webextractor.EACQUISITION, "invalid url %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", webextractor.Errorf(webextractor.EACQUISITION, "HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(rawURL, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classify maps transport faults to acquisition errors, distinguishing
// timeouts so callers see an unambiguous cause.
func classify(rawURL string, err error) error {
	if isTimeout(err) {
		return webextractor.Errorf(webextractor.EACQUISITION, "timeout fetching %s", rawURL)
	}
	return webextractor.Errorf(webextractor.EACQUISITION, "fetching %s: %v", rawURL, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
