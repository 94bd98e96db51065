// Package extract orchestrates the extraction pipeline: request
// validation, content acquisition and engine invocation. Each call moves
// through validate -> acquire -> extract, short-circuiting on the first
// failure; no stage is ever retried.
package extract

import (
	"context"
	"strings"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrentExtractions bounds how many engine invocations may
// run at once. Extraction is CPU-bound, so unbounded dispatch under load
// would starve everything else.
const DefaultMaxConcurrentExtractions = 4

// Pipeline runs extraction requests end to end.
// It holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	fetcher   webextractor.Fetcher
	extractor webextractor.Extractor
	sem       *semaphore.Weighted
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMaxConcurrentExtractions sets the engine invocation limit.
// Values below 1 fall back to DefaultMaxConcurrentExtractions.
func WithMaxConcurrentExtractions(n int64) Option {
	return func(p *Pipeline) {
		if n >= 1 {
			p.sem = semaphore.NewWeighted(n)
		}
	}
}

// NewPipeline creates a Pipeline around a fetcher and an extraction engine.
func NewPipeline(fetcher webextractor.Fetcher, extractor webextractor.Extractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		sem:       semaphore.NewWeighted(DefaultMaxConcurrentExtractions),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run validates the raw parameters, acquires the HTML and extracts the
// content. On success the returned text is non-blank and trimmed; every
// returned error carries a webextractor error code.
func (p *Pipeline) Run(ctx context.Context, params webextractor.RequestParams) (string, error) {
	req, err := webextractor.ParseRequest(params)
	if err != nil {
		return "", err
	}

	html, err := p.acquire(ctx, req)
	if err != nil {
		return "", err
	}

	text, err := p.extract(ctx, html, req.Options)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", webextractor.Errorf(webextractor.EEMPTY,
			"the extraction engine returned no content; the page may not contain extractable text")
	}
	return text, nil
}

// acquire resolves the HTML to operate on. Inline HTML is returned as-is
// (already trimmed by validation) with no I/O; a URL source is fetched
// with the request timeout as the deadline.
func (p *Pipeline) acquire(ctx context.Context, req *webextractor.Request) (string, error) {
	html, inline := req.Source.HTML()
	if !inline {
		url, _ := req.Source.URL()
		fetchCtx, cancel := context.WithTimeout(ctx, req.Timeout)
		defer cancel()

		fetched, err := p.fetcher.Fetch(fetchCtx, url)
		if err != nil {
			if webextractor.ErrorCode(err) == webextractor.EACQUISITION {
				return "", err
			}
			return "", webextractor.Errorf(webextractor.EACQUISITION, "fetching %s: %v", url, err)
		}
		html = fetched
	}

	if strings.TrimSpace(html) == "" {
		return "", webextractor.Errorf(webextractor.EEMPTY, "no HTML content available for extraction")
	}
	return html, nil
}

type engineResult struct {
	text string
	err  error
}

// extract dispatches the CPU-bound engine call onto its own goroutine so a
// slow extraction never stalls concurrent calls, then suspends until the
// engine completes or the context is done. Engine panics are recovered and
// reclassified; they never propagate.
func (p *Pipeline) extract(ctx context.Context, html string, opts webextractor.ExtractOptions) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", webextractor.Errorf(webextractor.EEXTRACTION, "extraction canceled: %v", err)
	}

	ch := make(chan engineResult, 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				ch <- engineResult{err: webextractor.Errorf(webextractor.EEXTRACTION,
					"extraction engine panic: %v", r)}
			}
		}()

		text, err := p.extractor.Extract(html, opts)
		if err != nil && webextractor.ErrorCode(err) != webextractor.EEMPTY {
			err = webextractor.Errorf(webextractor.EEXTRACTION, "content extraction failed: %v", err)
		}
		ch <- engineResult{text: text, err: err}
	}()

	select {
	case res := <-ch:
		return res.text, res.err
	case <-ctx.Done():
		return "", webextractor.Errorf(webextractor.EEXTRACTION, "extraction canceled: %v", ctx.Err())
	}
}
