// Package mcp exposes the extraction pipeline as a Model Context Protocol
// tool server.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/achieveai/mcp-web-extractor/extract"
)

const (
	// ServerName identifies this server to MCP clients.
	ServerName = "mcp-web-extractor"

	// ServerVersion is reported during the MCP handshake.
	ServerVersion = "0.1.0"

	// ToolName is the name of the single tool this server exposes.
	ToolName = "extract_markdown"
)

// Server serves the extract_markdown tool over an MCP transport.
type Server struct {
	pipeline *extract.Pipeline
	logger   *slog.Logger
	srv      *mcp.Server
}

// NewServer creates a new Server backed by the given pipeline.
func NewServer(pipeline *extract.Pipeline, logger *slog.Logger) *Server {
	s := &Server{
		pipeline: pipeline,
		logger:   logger,
		srv:      mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil),
	}
	s.registerExtractTool()
	return s
}

// Run serves MCP requests over the transport until ctx is canceled or the
// transport is closed.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.srv.Run(ctx, transport)
}

func (s *Server) registerExtractTool() {
	tool := &mcp.Tool{
		Name: ToolName,
		Description: "Extract the main content of a web page or raw HTML as markdown, " +
			"plain text, or XML. Provide exactly one of 'url' or 'html'.",
		InputSchema: extractToolSchema(),
	}
	s.srv.AddTool(tool, s.handleExtract)
}

// extractToolSchema describes the tool arguments. The schema mirrors the
// validation performed by webextractor.ParseRequest so that well-behaved
// clients get feedback before a call is ever dispatched.
func extractToolSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "URL of the web page to fetch and extract. Mutually exclusive with 'html'.",
			},
			"html": map[string]any{
				"type":        "string",
				"description": "Raw HTML to extract content from. Mutually exclusive with 'url'.",
			},
			"precision": map[string]any{
				"type":        "boolean",
				"description": "Favor extraction precision over recall.",
				"default":     true,
			},
			"include_comments": map[string]any{
				"type":        "boolean",
				"description": "Include reader comments in the extracted output.",
				"default":     false,
			},
			"include_tables": map[string]any{
				"type":        "boolean",
				"description": "Include tables in the extracted output.",
				"default":     true,
			},
			"include_images": map[string]any{
				"type":        "boolean",
				"description": "Include image references in the extracted output.",
				"default":     true,
			},
			"include_links": map[string]any{
				"type":        "boolean",
				"description": "Preserve hyperlinks in the extracted output.",
				"default":     true,
			},
			"timeout": map[string]any{
				"type":        "integer",
				"description": "Fetch timeout in seconds.",
				"default":     webextractor.DefaultTimeoutSeconds,
				"minimum":     webextractor.MinTimeoutSeconds,
				"maximum":     webextractor.MaxTimeoutSeconds,
			},
			"output_format": map[string]any{
				"type":        "string",
				"description": "Output format for the extracted content.",
				"enum":        []string{webextractor.FormatMarkdown, webextractor.FormatTxt, webextractor.FormatXML},
				"default":     webextractor.FormatMarkdown,
			},
		},
		"oneOf": []map[string]any{
			{"required": []string{"url"}},
			{"required": []string{"html"}},
		},
		"additionalProperties": false,
	}
}

func (s *Server) handleExtract(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
	logger := s.logger.With("tool", ToolName, "call_id", uuid.NewString())

	// A panicking handler must not take down the whole server; surface it
	// as an internal error result instead.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panic", "panic", fmt.Sprint(r))
			res = errorResult(webextractor.Errorf(webextractor.EINTERNAL, "handler panic: %v", r))
			err = nil
		}
	}()

	var params webextractor.RequestParams
	if len(req.Params.Arguments) > 0 {
		if uerr := json.Unmarshal(req.Params.Arguments, &params); uerr != nil {
			logger.Error("malformed arguments", "error", uerr)
			return errorResult(webextractor.Errorf(webextractor.EINVALID, "invalid parameters: malformed arguments: %v", uerr)), nil
		}
	}

	text, perr := s.pipeline.Run(ctx, params)
	if perr != nil {
		logger.Error("extraction call failed",
			"code", webextractor.ErrorCode(perr),
			"error", perr,
		)
		return errorResult(perr), nil
	}

	logger.Info("extraction call succeeded", "chars", len(text))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

// errorResult converts a pipeline error into a tool error result. Internal
// details are masked by ErrorMessage.
func errorResult(err error) *mcp.CallToolResult {
	res := &mcp.CallToolResult{}
	res.SetError(errors.New(webextractor.ErrorMessage(err)))
	return res
}
