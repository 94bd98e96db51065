// Package trafilatura wraps go-trafilatura, the content extraction engine
// behind the extract_markdown tool. It maps request options onto engine
// knobs and serializes the engine's result in the requested output format.
package trafilatura

import (
	"bytes"
	"strings"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webextractor.Extractor at compile time.
var _ webextractor.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML using go-trafilatura.
// The zero options run in precision mode with markdown output.
type Extractor struct {
	converter webextractor.Converter
}

// NewExtractor creates a new Extractor. The converter serializes the
// markdown output format and is required.
func NewExtractor(converter webextractor.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract runs the engine over raw HTML and returns the content in the
// requested format. Returns "" with a nil error when the page contains
// nothing extractable, so callers can tell "found nothing" from a fault.
func (e *Extractor) Extract(rawHTML string, opts webextractor.ExtractOptions) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), engineOptions(opts))
	if err != nil {
		// go-trafilatura reports "no content found" through its error
		// return; surface it as an empty result rather than a fault.
		return "", nil
	}
	if result == nil {
		return "", nil
	}

	switch opts.Format {
	case webextractor.FormatTxt:
		return formatText(result, opts), nil
	case webextractor.FormatXML:
		return formatXML(result, opts)
	default:
		return e.formatMarkdown(result)
	}
}

// engineOptions translates request options into engine knobs. Precision
// and recall are a single inverted switch; comment and table inclusion are
// expressed as exclusions on the engine side.
func engineOptions(opts webextractor.ExtractOptions) trafilatura.Options {
	focus := trafilatura.FavorRecall
	if opts.Precision {
		focus = trafilatura.FavorPrecision
	}
	return trafilatura.Options{
		EnableFallback:  true,
		Focus:           focus,
		ExcludeComments: !opts.IncludeComments,
		ExcludeTables:   !opts.IncludeTables,
		IncludeImages:   opts.IncludeImages,
		IncludeLinks:    opts.IncludeLinks,
	}
}

func formatText(result *trafilatura.ExtractResult, opts webextractor.ExtractOptions) string {
	text := strings.TrimSpace(result.ContentText)
	if opts.IncludeComments {
		if comments := strings.TrimSpace(result.CommentsText); comments != "" {
			text = text + "\n\n" + comments
		}
	}
	return text
}

func (e *Extractor) formatMarkdown(result *trafilatura.ExtractResult) (string, error) {
	if result.ContentNode == nil {
		return "", nil
	}
	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}
	return e.converter.Convert(contentHTML)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
