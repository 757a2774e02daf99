package statusline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFillsDefaults(t *testing.T) {
	in, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "unknown", in.Model.DisplayName)
	assert.Equal(t, "0.0.0", in.Version)
	assert.Equal(t, DefaultContextWindowSize, in.ContextWindow.Size)
}

func TestParseAcceptsBareModelString(t *testing.T) {
	in, err := Parse(strings.NewReader(`{"model": "claude-opus-4"}`))
	require.NoError(t, err)

	assert.Equal(t, "claude-opus-4", in.Model.ID)
	assert.Equal(t, "claude-opus-4", in.Model.DisplayName)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := Parse(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestContextPercentAgainstAutocompactThreshold(t *testing.T) {
	tests := []struct {
		name    string
		usage   *TokenUsage
		size    int
		wantPct int
	}{
		{
			name:    "no usage reported",
			usage:   nil,
			size:    200000,
			wantPct: 0,
		},
		{
			// Threshold for a 200k window is 155k, so 77.5k is half.
			name:    "half of the threshold",
			usage:   &TokenUsage{InputTokens: 77500},
			size:    200000,
			wantPct: 50,
		},
		{
			name: "cache tokens count",
			usage: &TokenUsage{
				InputTokens:              50000,
				CacheCreationInputTokens: 15000,
				CacheReadInputTokens:     12500,
			},
			size:    200000,
			wantPct: 50,
		},
		{
			name:    "capped at 100",
			usage:   &TokenUsage{InputTokens: 500000},
			size:    200000,
			wantPct: 100,
		},
		{
			name:    "zero window size",
			usage:   &TokenUsage{InputTokens: 1000},
			size:    0,
			wantPct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := ContextWindow{CurrentUsage: tt.usage, Size: tt.size}
			assert.Equal(t, tt.wantPct, cw.Percent())
		})
	}
}

func TestFormatReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		resetsAt string
		want     string
	}{
		{"empty", "", ""},
		{"malformed", "soon", ""},
		{"already past", now.Add(-time.Minute).Format(time.RFC3339), ""},
		{"minutes only", now.Add(45 * time.Minute).Format(time.RFC3339), "45m"},
		{"hours and minutes", now.Add(90 * time.Minute).Format(time.RFC3339), "1h30m"},
		{"padded minutes", now.Add(125 * time.Minute).Format(time.RFC3339), "2h05m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatReset(tt.resetsAt, now))
		})
	}
}

func TestProgressBarFill(t *testing.T) {
	tests := []struct {
		pct        int
		wantFilled int
	}{
		{0, 0},
		{50, 4},
		{63, 5},
		{100, 8},
		{150, 8},
	}

	for _, tt := range tests {
		bar := progressBar(tt.pct, 8)
		assert.Equal(t, tt.wantFilled, strings.Count(bar, "▓"), "pct %d", tt.pct)
		assert.Equal(t, 8-tt.wantFilled, strings.Count(bar, "░"), "pct %d", tt.pct)
	}
}

func TestModelStyleByFamily(t *testing.T) {
	assert.Equal(t, greenStyle, modelStyle("claude-opus-4"))
	assert.Equal(t, yellowStyle, modelStyle("claude-sonnet-4"))
	assert.Equal(t, redStyle, modelStyle("claude-haiku-3"))
	assert.Equal(t, textStyle, modelStyle("something-else"))
}

func TestRenderBasicLine(t *testing.T) {
	r := &Renderer{CacheDir: t.TempDir(), Now: time.Now}

	in, err := Parse(strings.NewReader(`{
		"model": {"id": "claude-opus-4", "display_name": "Opus"},
		"version": "2.1.0",
		"context_window": {
			"current_usage": {"input_tokens": 77500},
			"context_window_size": 200000
		}
	}`))
	require.NoError(t, err)

	line := r.Render(in)
	assert.Contains(t, line, "opus")
	assert.Contains(t, line, "v2.1.0")
	assert.Contains(t, line, "context: ")
	assert.Contains(t, line, "50%")
	assert.NotContains(t, line, "session:")
	assert.NotContains(t, line, "weekly:")
}

func TestRenderIncludesFreshUsageSnapshots(t *testing.T) {
	cacheDir := t.TempDir()
	now := time.Now().Truncate(time.Second)

	SaveUsage(filepath.Join(cacheDir, SessionCacheName), Usage{
		Pct:      42,
		ResetsAt: now.Add(30 * time.Minute).Format(time.RFC3339),
	})
	SaveUsage(filepath.Join(cacheDir, WeeklyCacheName), Usage{Pct: 63})

	r := &Renderer{CacheDir: cacheDir, Now: func() time.Time { return now }}

	in, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	line := r.Render(in)
	assert.Contains(t, line, "session: ")
	assert.Contains(t, line, "42%")
	assert.Contains(t, line, "reset: ")
	assert.Contains(t, line, "30m")
	assert.Contains(t, line, "weekly: ")
	assert.Contains(t, line, "63%")
}

func TestRenderSkipsStaleSnapshots(t *testing.T) {
	cacheDir := t.TempDir()
	sessionPath := filepath.Join(cacheDir, SessionCacheName)
	SaveUsage(sessionPath, Usage{Pct: 42})

	// Age the cache past its TTL.
	old := time.Now().Add(-10 * time.Minute)
	require.NoError(t, os.Chtimes(sessionPath, old, old))

	r := &Renderer{CacheDir: cacheDir, Now: time.Now}

	in, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.NotContains(t, r.Render(in), "session:")
}

func TestRenderSkipsCorruptSnapshot(t *testing.T) {
	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, WeeklyCacheName), []byte("{"), 0644))

	r := &Renderer{CacheDir: cacheDir, Now: time.Now}

	in, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.NotContains(t, r.Render(in), "weekly:")
}
