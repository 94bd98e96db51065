// Command mcp-web-extractor serves the extract_markdown tool over MCP stdio.
//
// Logs go to stderr; stdout carries the MCP protocol.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/achieveai/mcp-web-extractor/extract"
	wehttp "github.com/achieveai/mcp-web-extractor/http"
	"github.com/achieveai/mcp-web-extractor/htmltomarkdown"
	wemcp "github.com/achieveai/mcp-web-extractor/mcp"
	"github.com/achieveai/mcp-web-extractor/rod"
	weslog "github.com/achieveai/mcp-web-extractor/slog"
	"github.com/achieveai/mcp-web-extractor/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher closed on shutdown. Set during Run().
	Fetcher webextractor.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the server with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mcp-web-extractor"),
		kong.Description("MCP server that extracts web page content as markdown, text, or XML."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_user_agent": wehttp.DefaultUserAgent},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel)

	fetcher, err := m.newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	m.Fetcher = fetcher
	defer m.Close()

	extractor := trafilatura.NewExtractor(htmltomarkdown.NewConverter())

	pipeline := extract.NewPipeline(
		weslog.NewFetcher(fetcher, logger),
		weslog.NewExtractor(extractor, logger),
		extract.WithMaxConcurrentExtractions(cli.Concurrency),
	)

	srv := wemcp.NewServer(pipeline, logger)

	logger.Info("serving",
		"server", wemcp.ServerName,
		"version", wemcp.ServerVersion,
		"render", cli.Render,
		"concurrency", cli.Concurrency,
	)

	if err := srv.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (webextractor.Fetcher, error) {
	if cli.Render {
		fetcher, err := rod.NewFetcher(rod.WithUserAgent(cli.UserAgent))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}

	opts := []wehttp.Option{
		wehttp.WithUserAgent(cli.UserAgent),
		wehttp.WithTimeout(cli.FetchTimeout),
	}
	if cli.RateLimit > 0 {
		opts = append(opts, wehttp.WithRateLimit(cli.RateLimit))
	}
	return wehttp.NewFetcher(opts...), nil
}

// newLogger builds a JSON logger writing to w. Logging must never touch
// stdout: that stream belongs to the MCP transport.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
