// Package webextractor exposes web-page and raw-HTML content extraction
// as a single MCP tool. It validates tool-call parameters, acquires HTML
// from a URL or from inline input, delegates boilerplate removal to an
// external extraction engine, and returns the cleaned content as markdown,
// plain text or XML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, trafilatura/, mcp/).
package webextractor
