// Package rod provides a browser-based implementation of
// webextractor.Fetcher for pages that require JavaScript to render their
// content. The plain HTTP fetcher should be preferred for static pages.
package rod

import (
	"context"
	"errors"
	"fmt"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements webextractor.Fetcher at compile time.
var _ webextractor.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the browser user agent for fetched pages.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML. Failures are classified as acquisition errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify(url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", classify(url, err)
	}
	defer page.Close()

	// All subsequent page operations honor the caller's deadline.
	page = page.Context(ctx)

	if f.userAgent != "" {
		override := &proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(override); err != nil {
			return "", classify(url, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", classify(url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", classify(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", classify(url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}

func classify(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return webextractor.Errorf(webextractor.EACQUISITION, "timeout fetching %s", url)
	}
	return webextractor.Errorf(webextractor.EACQUISITION, "fetching %s: %v", url, err)
}
