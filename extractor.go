package webextractor

// ExtractOptions control how the extraction engine processes HTML and how
// the result is serialized.
type ExtractOptions struct {
	// Format is one of FormatMarkdown, FormatTxt or FormatXML.
	Format string

	// Precision favors conservative extraction over recall. When false the
	// engine runs in its recall-favoring mode instead; the two modes are a
	// single inverted switch, not independent knobs.
	Precision bool

	IncludeComments bool
	IncludeTables   bool
	IncludeImages   bool
	IncludeLinks    bool
}

// Extractor extracts main content from HTML pages, removing boilerplate
// such as navigation, ads and footers.
type Extractor interface {
	// Extract processes raw HTML and returns the content serialized in the
	// requested format. An empty result with a nil error means the engine
	// found nothing extractable. The call is CPU-bound and synchronous;
	// callers that must not block should dispatch it off their serving
	// goroutine.
	Extract(html string, opts ExtractOptions) (string, error)
}
