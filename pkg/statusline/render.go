package statusline

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha, matching the assistant's default theme.
var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

const barWidth = 8

// Renderer builds the status line. Now is injectable so tests get
// stable countdowns and cache-freshness checks.
type Renderer struct {
	CacheDir string
	Now      func() time.Time
}

// NewRenderer returns a renderer reading snapshots from the default
// cache directory.
func NewRenderer() *Renderer {
	return &Renderer{CacheDir: DefaultCacheDir(), Now: time.Now}
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Render builds the full line for one session document.
func (r *Renderer) Render(in Input) string {
	parts := []string{
		modelStyle(in.Model.ID).Render(strings.ToLower(in.Model.DisplayName)),
		textStyle.Render("v" + in.Version),
	}

	pct := in.ContextWindow.Percent()
	parts = append(parts,
		textStyle.Render("context: ")+pctStyle(pct).Render(fmt.Sprintf("%d%%", pct)))

	now := r.now()
	if u := readCachedUsage(filepath.Join(r.CacheDir, SessionCacheName), SessionCacheTTL, now); u != nil {
		parts = append(parts, r.usagePart("session", *u, now, true))
	}
	if u := readCachedUsage(filepath.Join(r.CacheDir, WeeklyCacheName), WeeklyCacheTTL, now); u != nil {
		parts = append(parts, r.usagePart("weekly", *u, now, false))
	}

	sep := " " + grayStyle.Render("│") + " "
	return strings.Join(parts, sep)
}

func (r *Renderer) usagePart(label string, u Usage, now time.Time, withReset bool) string {
	var b strings.Builder
	b.WriteString(textStyle.Render(label + ": "))
	b.WriteString(pctStyle(u.Pct).Render(fmt.Sprintf("%d%%", u.Pct)))
	b.WriteString(" " + grayStyle.Render("[") + progressBar(u.Pct, barWidth) + grayStyle.Render("]"))

	if withReset {
		if reset := formatReset(u.ResetsAt, now); reset != "" {
			b.WriteString(" " + textStyle.Render("reset: ") + greenStyle.Render(reset))
		}
	}
	return b.String()
}

// modelStyle colors the model name by family.
func modelStyle(id string) lipgloss.Style {
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "opus"):
		return greenStyle
	case strings.Contains(lower, "sonnet"):
		return yellowStyle
	case strings.Contains(lower, "haiku"):
		return redStyle
	}
	return textStyle
}

// pctStyle colors a utilization percentage: green, yellow past 60,
// red past 80.
func pctStyle(pct int) lipgloss.Style {
	switch {
	case pct > 80:
		return redStyle
	case pct > 60:
		return yellowStyle
	}
	return greenStyle
}

// progressBar renders pct as filled and empty cells.
func progressBar(pct, width int) string {
	filled := pct * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return pctStyle(pct).Render(strings.Repeat("▓", filled)) +
		grayStyle.Render(strings.Repeat("░", width-filled))
}
