package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	webextractor "github.com/achieveai/mcp-web-extractor"
	"github.com/achieveai/mcp-web-extractor/mock"
	weslog "github.com/achieveai/mcp-web-extractor/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_LogsSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Extractor{
		ExtractFn: func(string, webextractor.ExtractOptions) (string, error) {
			return "cleaned content", nil
		},
	}
	ext := weslog.NewExtractor(next, logger)

	text, err := ext.Extract("<p>hi</p>", webextractor.ExtractOptions{Format: webextractor.FormatTxt})
	require.NoError(t, err)
	assert.Equal(t, "cleaned content", text)

	out := buf.String()
	assert.Contains(t, out, "extracted")
	assert.Contains(t, out, "format=txt")
	assert.Contains(t, out, "digest=")
}

func TestExtractor_LogsFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Extractor{
		ExtractFn: func(string, webextractor.ExtractOptions) (string, error) {
			return "", errors.New("engine fault")
		},
	}
	ext := weslog.NewExtractor(next, logger)

	_, err := ext.Extract("<p>hi</p>", webextractor.ExtractOptions{Format: webextractor.FormatTxt})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "extraction failed")
	assert.Contains(t, out, "engine fault")
}

func TestExtractor_DigestIsStable(t *testing.T) {
	t.Parallel()

	logs := func() string {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		next := &mock.Extractor{
			ExtractFn: func(string, webextractor.ExtractOptions) (string, error) {
				return "same output", nil
			},
		}
		ext := weslog.NewExtractor(next, logger)
		_, err := ext.Extract("<p>hi</p>", webextractor.ExtractOptions{})
		require.NoError(t, err)
		return buf.String()
	}

	first, second := logs(), logs()
	digest := func(s string) string {
		i := bytes.Index([]byte(s), []byte("digest="))
		require.GreaterOrEqual(t, i, 0)
		return s[i : i+24]
	}
	assert.Equal(t, digest(first), digest(second))
}
