package main

import "time"

// CLI defines the command-line interface structure for Kong. The server has
// a single mode of operation (serve MCP over stdio), so everything is a flag.
type CLI struct {
	UserAgent    string        `help:"User agent sent with HTTP fetches." default:"${default_user_agent}"`
	FetchTimeout time.Duration `help:"Outer bound for HTTP fetches; per-request timeouts still apply." default:"2m"`
	Render       bool          `help:"Render pages in a headless browser instead of plain HTTP fetching. Requires Chrome or Chromium."`
	RateLimit    float64       `help:"Maximum fetches per second per host. 0 disables rate limiting." default:"0"`
	Concurrency  int64         `help:"Maximum concurrent extractions." default:"4"`
	LogLevel     string        `help:"Minimum log level." enum:"debug,info,warn,error" default:"info"`
}
