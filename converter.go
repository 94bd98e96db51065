package webextractor

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., the extraction engine's
	// boilerplate-free content). Returns the Markdown representation.
	Convert(html string) (string, error)
}
