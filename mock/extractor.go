package mock

import (
	webextractor "github.com/achieveai/mcp-web-extractor"
)

var _ webextractor.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webextractor.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts webextractor.ExtractOptions) (string, error)
}

func (e *Extractor) Extract(html string, opts webextractor.ExtractOptions) (string, error) {
	return e.ExtractFn(html, opts)
}
