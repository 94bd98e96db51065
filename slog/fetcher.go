// Package slog provides logging decorators for webextractor interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	webextractor "github.com/achieveai/mcp-web-extractor"
)

// Ensure Fetcher implements webextractor.Fetcher at compile time.
var _ webextractor.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a webextractor.Fetcher with structured logging.
type Fetcher struct {
	next   webextractor.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher decorator.
func NewFetcher(next webextractor.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}

	f.logger.Info("fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
