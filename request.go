package webextractor

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Output formats supported by the extraction engine.
const (
	FormatMarkdown = "markdown"
	FormatTxt      = "txt"
	FormatXML      = "xml"
)

// Timeout bounds for URL fetching, in seconds. Only meaningful when the
// request source is a URL.
const (
	MinTimeoutSeconds     = 5
	MaxTimeoutSeconds     = 120
	DefaultTimeoutSeconds = 30
)

// RequestParams is the raw, untyped payload of an extract_markdown call.
// Absent fields take the defaults documented on ParseRequest.
type RequestParams struct {
	URL             *string `json:"url,omitempty"`
	HTML            *string `json:"html,omitempty"`
	Precision       *bool   `json:"precision,omitempty"`
	IncludeComments *bool   `json:"include_comments,omitempty"`
	IncludeTables   *bool   `json:"include_tables,omitempty"`
	IncludeImages   *bool   `json:"include_images,omitempty"`
	IncludeLinks    *bool   `json:"include_links,omitempty"`
	Timeout         *int    `json:"timeout,omitempty"`
	OutputFormat    *string `json:"output_format,omitempty"`
}

// Source identifies where the HTML to extract comes from: a URL to fetch
// or inline HTML. A Source is only constructable through ParseRequest, so
// downstream code never sees a both-or-neither state.
type Source struct {
	url  string
	html string
}

// URL returns the source URL and whether the source is a URL.
func (s Source) URL() (string, bool) { return s.url, s.url != "" }

// HTML returns the inline HTML, trimmed, and whether the source is inline.
func (s Source) HTML() (string, bool) { return s.html, s.html != "" }

// Request is a validated extraction request.
type Request struct {
	// Source is the URL or inline HTML to extract from.
	Source Source

	// Options are passed to the extraction engine.
	Options ExtractOptions

	// Timeout bounds the URL fetch. Ignored for inline HTML.
	Timeout time.Duration
}

// ParseRequest validates raw call parameters and returns a well-formed
// Request. Validation is pure: no I/O happens here.
//
// Defaults: precision=true, include_comments=false, include_tables=true,
// include_images=true, include_links=true, timeout=30s, output_format=
// markdown. Exactly one of url or html must be provided; blank-after-trim
// html counts as absent. A URL must have an http or https scheme and a
// host. All violations are reported together in a single EINVALID error.
func ParseRequest(params RequestParams) (*Request, error) {
	var violations []string

	rawURL := ""
	if params.URL != nil {
		rawURL = strings.TrimSpace(*params.URL)
	}
	html := ""
	if params.HTML != nil {
		html = strings.TrimSpace(*params.HTML)
	}
	hasURL := rawURL != ""
	hasHTML := html != ""

	if hasURL == hasHTML {
		violations = append(violations, "provide exactly one of 'url' or 'html'")
	}
	if hasURL {
		if msg := validateURL(rawURL); msg != "" {
			violations = append(violations, msg)
		}
	}

	timeout := DefaultTimeoutSeconds
	if params.Timeout != nil {
		timeout = *params.Timeout
	}
	if timeout < MinTimeoutSeconds || timeout > MaxTimeoutSeconds {
		violations = append(violations, fmt.Sprintf("timeout must be between %d and %d seconds, got %d",
			MinTimeoutSeconds, MaxTimeoutSeconds, timeout))
	}

	format := FormatMarkdown
	if params.OutputFormat != nil {
		format = *params.OutputFormat
	}
	switch format {
	case FormatMarkdown, FormatTxt, FormatXML:
	default:
		violations = append(violations, fmt.Sprintf("output_format must be one of %s, %s or %s, got %q",
			FormatMarkdown, FormatTxt, FormatXML, format))
	}

	if len(violations) > 0 {
		return nil, Errorf(EINVALID, "invalid parameters: %s", strings.Join(violations, "; "))
	}

	req := &Request{
		Source:  Source{url: rawURL, html: html},
		Timeout: time.Duration(timeout) * time.Second,
		Options: ExtractOptions{
			Format:          format,
			Precision:       boolValue(params.Precision, true),
			IncludeComments: boolValue(params.IncludeComments, false),
			IncludeTables:   boolValue(params.IncludeTables, true),
			IncludeImages:   boolValue(params.IncludeImages, true),
			IncludeLinks:    boolValue(params.IncludeLinks, true),
		},
	}
	return req, nil
}

// validateURL returns a description of the violation, or "" if the URL is
// acceptable for fetching.
func validateURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Sprintf("invalid url %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Sprintf("url must include scheme and host (e.g. https://example.com), got %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("url scheme must be http or https, got %q", u.Scheme)
	}
	return ""
}

func boolValue(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
