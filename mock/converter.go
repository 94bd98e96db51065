package mock

import (
	webextractor "github.com/achieveai/mcp-web-extractor"
)

var _ webextractor.Converter = (*Converter)(nil)

// Converter is a mock implementation of webextractor.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
