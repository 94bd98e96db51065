package slog

import (
	"fmt"
	"log/slog"
	"time"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/cespare/xxhash/v2"
)

// Ensure Extractor implements webextractor.Extractor at compile time.
var _ webextractor.Extractor = (*Extractor)(nil)

// Extractor wraps a webextractor.Extractor with structured logging.
// The logged content digest makes repeated extractions of the same input
// easy to spot when troubleshooting.
type Extractor struct {
	next   webextractor.Extractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor decorator.
func NewExtractor(next webextractor.Extractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *Extractor) Extract(html string, opts webextractor.ExtractOptions) (string, error) {
	begin := time.Now()
	text, err := e.next.Extract(html, opts)
	if err != nil {
		e.logger.Error("extraction failed",
			"format", opts.Format,
			"input_bytes", len(html),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}

	e.logger.Info("extracted",
		"format", opts.Format,
		"input_bytes", len(html),
		"chars", len(text),
		"digest", contentDigest(text),
		"duration", time.Since(begin),
	)
	return text, nil
}

// contentDigest computes a short xxhash digest of the content.
func contentDigest(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
