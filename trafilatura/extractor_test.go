package trafilatura_test

import (
	"strings"
	"testing"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/achieveai/mcp-web-extractor/htmltomarkdown"
	"github.com/achieveai/mcp-web-extractor/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webextractor.Extractor at compile time.
var _ webextractor.Extractor = (*trafilatura.Extractor)(nil)

func newExtractor() *trafilatura.Extractor {
	return trafilatura.NewExtractor(htmltomarkdown.NewConverter())
}

func defaultOpts(format string) webextractor.ExtractOptions {
	return webextractor.ExtractOptions{
		Format:        format,
		Precision:     true,
		IncludeTables: true,
		IncludeImages: true,
		IncludeLinks:  true,
	}
}

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article</title></head>
<body>
<nav class="main-nav"><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>T</h1>
<p>Body text.</p>
<p>A second paragraph with enough substance to keep the extractor interested in this article.</p>
</article>
<script>trackVisitor();</script>
<footer><p>Copyright 2024 Example Corp</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("txt contains visible text and excludes boilerplate", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		text, err := ext.Extract(articleHTML, defaultOpts(webextractor.FormatTxt))

		require.NoError(t, err)
		assert.Contains(t, text, "T")
		assert.Contains(t, text, "Body text.")
		assert.NotContains(t, text, "trackVisitor")
		assert.NotContains(t, text, "Copyright 2024 Example Corp")
	})

	t.Run("txt from minimal document", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		text, err := ext.Extract(
			`<html><body><h1>T</h1><p>Body text.</p></body></html>`,
			defaultOpts(webextractor.FormatTxt))

		require.NoError(t, err)
		assert.Contains(t, text, "T")
		assert.Contains(t, text, "Body text.")
	})

	t.Run("markdown output", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		md, err := ext.Extract(articleHTML, defaultOpts(webextractor.FormatMarkdown))

		require.NoError(t, err)
		assert.Contains(t, md, "Body text.")
		assert.NotContains(t, md, "Copyright 2024 Example Corp")
	})

	t.Run("xml output wraps paragraphs", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		out, err := ext.Extract(articleHTML, defaultOpts(webextractor.FormatXML))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<?xml"), "xml output should start with a declaration, got %q", out)
		assert.Contains(t, out, "<main>")
		assert.Contains(t, out, "Body text.")
		assert.NotContains(t, out, "Copyright 2024 Example Corp")
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		text, err := ext.Extract("", defaultOpts(webextractor.FormatMarkdown))

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("returns empty when nothing is extractable", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		text, err := ext.Extract("<p></p>", defaultOpts(webextractor.FormatMarkdown))

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("deterministic for a fixed input", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor()
		first, err := ext.Extract(articleHTML, defaultOpts(webextractor.FormatMarkdown))
		require.NoError(t, err)
		second, err := ext.Extract(articleHTML, defaultOpts(webextractor.FormatMarkdown))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("recall mode still extracts", func(t *testing.T) {
		t.Parallel()

		opts := defaultOpts(webextractor.FormatTxt)
		opts.Precision = false

		ext := newExtractor()
		text, err := ext.Extract(articleHTML, opts)

		require.NoError(t, err)
		assert.Contains(t, text, "Body text.")
	})

	t.Run("table inclusion is honored", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Tables</title></head>
<body>
<article>
<h1>Quarterly Numbers</h1>
<p>The quarterly results are summarized in the table below for reference.</p>
<table>
<tr><th>Quarter</th><th>Revenue</th></tr>
<tr><td>Q1</td><td>NineHundredUnits</td></tr>
</table>
<p>Revenue grew steadily through the period under review.</p>
</article>
</body>
</html>`

		ext := newExtractor()

		withTables, err := ext.Extract(html, defaultOpts(webextractor.FormatTxt))
		require.NoError(t, err)
		assert.Contains(t, withTables, "NineHundredUnits")

		opts := defaultOpts(webextractor.FormatTxt)
		opts.IncludeTables = false
		withoutTables, err := ext.Extract(html, opts)
		require.NoError(t, err)
		assert.NotContains(t, withoutTables, "NineHundredUnits")
	})

	t.Run("link inclusion is honored in markdown", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Links</title></head>
<body>
<article>
<h1>Further Reading</h1>
<p>See <a href="https://example.com/reference-manual">the reference manual</a> for the full configuration syntax and many worked examples.</p>
<p>The manual also covers troubleshooting and upgrade notes in depth.</p>
</article>
</body>
</html>`

		ext := newExtractor()

		withLinks, err := ext.Extract(html, defaultOpts(webextractor.FormatMarkdown))
		require.NoError(t, err)
		assert.Contains(t, withLinks, "https://example.com/reference-manual")

		opts := defaultOpts(webextractor.FormatMarkdown)
		opts.IncludeLinks = false
		withoutLinks, err := ext.Extract(html, opts)
		require.NoError(t, err)
		assert.NotContains(t, withoutLinks, "https://example.com/reference-manual")
		assert.Contains(t, withoutLinks, "reference manual")
	})
}
