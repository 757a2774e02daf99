// Package statusline renders the one-line session summary shown in
// the assistant's status bar. The assistant pipes a session
// description as JSON to stdin; the output is a colored line with the
// model, version, context-window usage and, when cached snapshots are
// available, session and weekly utilization bars.
package statusline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/agentlink/pkg/errors"
)

// DefaultContextWindowSize is assumed when the session document does
// not carry a window size.
const DefaultContextWindowSize = 200000

// Autocompact kicks in at 77.5% of the context window, so usage is
// reported against that threshold rather than the raw window size.
const (
	autocompactNum = 775
	autocompactDen = 1000
)

// Model identifies the model serving the session. Older session
// documents carry a bare model string instead of the object form.
type Model struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// UnmarshalJSON accepts both the object form and a bare string.
func (m *Model) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.ID = s
		m.DisplayName = s
		return nil
	}

	type plain Model
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Model(p)
	return nil
}

// TokenUsage is the current context-window consumption.
type TokenUsage struct {
	InputTokens              int `json:"input_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// ContextWindow describes the session's context window.
type ContextWindow struct {
	CurrentUsage *TokenUsage `json:"current_usage"`
	Size         int         `json:"context_window_size"`
}

// Percent returns the window utilization against the autocompact
// threshold, capped at 100.
func (cw ContextWindow) Percent() int {
	current := 0
	if u := cw.CurrentUsage; u != nil {
		current = u.InputTokens + u.CacheCreationInputTokens + u.CacheReadInputTokens
	}

	threshold := cw.Size * autocompactNum / autocompactDen
	if threshold <= 0 {
		return 0
	}

	pct := current * 100 / threshold
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Input is the session document the assistant writes to stdin.
type Input struct {
	Model         Model         `json:"model"`
	Version       string        `json:"version"`
	ContextWindow ContextWindow `json:"context_window"`
}

// Parse decodes a session document and fills in the defaults for
// absent fields.
func Parse(r io.Reader) (Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return Input{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid session document")
	}

	if in.Model.DisplayName == "" {
		in.Model.DisplayName = "unknown"
	}
	if in.Version == "" {
		in.Version = "0.0.0"
	}
	if in.ContextWindow.Size == 0 {
		in.ContextWindow.Size = DefaultContextWindowSize
	}
	return in, nil
}

// formatReset returns the time remaining until the reset instant as
// "1h05m" or "45m". Empty when the timestamp is absent, malformed or
// already past.
func formatReset(resetsAt string, now time.Time) string {
	if resetsAt == "" {
		return ""
	}
	reset, err := time.Parse(time.RFC3339, resetsAt)
	if err != nil {
		return ""
	}

	delta := reset.Sub(now)
	if delta <= 0 {
		return ""
	}

	total := int(delta.Minutes())
	if total >= 60 {
		return fmt.Sprintf("%dh%02dm", total/60, total%60)
	}
	return fmt.Sprintf("%dm", total)
}
