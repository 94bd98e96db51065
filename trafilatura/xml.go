package trafilatura

import (
	"strings"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/beevik/etree"
	"github.com/markusmobius/go-trafilatura"
)

// formatXML serializes the extraction result as a TEI-flavored XML
// document: a doc element carrying the page title, a main element with
// one p per extracted paragraph, and an optional comments element.
func formatXML(result *trafilatura.ExtractResult, opts webextractor.ExtractOptions) (string, error) {
	paragraphs := splitParagraphs(result.ContentText)
	var comments []string
	if opts.IncludeComments {
		comments = splitParagraphs(result.CommentsText)
	}
	if len(paragraphs) == 0 && len(comments) == 0 {
		return "", nil
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("doc")
	if title := strings.TrimSpace(result.Metadata.Title); title != "" {
		root.CreateAttr("title", title)
	}

	main := root.CreateElement("main")
	for _, para := range paragraphs {
		main.CreateElement("p").SetText(para)
	}

	if len(comments) > 0 {
		el := root.CreateElement("comments")
		for _, para := range comments {
			el.CreateElement("p").SetText(para)
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// splitParagraphs breaks engine text output into its non-blank lines; the
// engine emits one line per block element.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
