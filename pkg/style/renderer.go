package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/agentlink/pkg/agents"
	"github.com/arthur-debert/agentlink/pkg/installer"
)

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderInstallResults(results []installer.Result) string
	RenderStatus(entries []installer.StatusEntry) string
	RenderAgentList(defs []agents.Definition) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderInstallResults renders the per-mapping outcome of an install or
// unlink run. No-source mappings are omitted: optional features not
// present in the checkout are not worth a line.
func (r *TerminalRenderer) RenderInstallResults(results []installer.Result) string {
	var b strings.Builder

	shown := 0
	for _, res := range results {
		if res.Status == installer.StatusNoSource {
			continue
		}
		shown++

		switch res.Status {
		case installer.StatusLinked:
			b.WriteString(fmt.Sprintf("%s %s %s %s\n",
				SuccessStyle.Render("✓"), res.Name,
				MutedStyle.Render("->"), PathStyle.Render(res.Source)))
		case installer.StatusRefreshed:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				SuccessStyle.Render("✓"), res.Name,
				MutedStyle.Render("already linked")))
		case installer.StatusBackedUp:
			b.WriteString(fmt.Sprintf("%s %s %s %s\n",
				SuccessStyle.Render("✓"), res.Name,
				MutedStyle.Render("replaced, backup at"), PathStyle.Render(res.Backup)))
		case installer.StatusSkipped:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				WarningStyle.Render("-"), res.Name,
				MutedStyle.Render("skipped")))
		case installer.StatusRemoved:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				SuccessStyle.Render("✓"), res.Name,
				MutedStyle.Render("unlinked")))
		case installer.StatusMissing:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				MutedStyle.Render("-"), res.Name,
				MutedStyle.Render("nothing to remove")))
		case installer.StatusFailed:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				ErrorStyle.Render("✗"), res.Name,
				ErrorStyle.Render(fmt.Sprintf("failed: %v", res.Err))))
		}
	}

	if shown == 0 {
		return MutedStyle.Render("Nothing to do")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderStatus renders the read-only classification of each mapping.
func (r *TerminalRenderer) RenderStatus(entries []installer.StatusEntry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("No mappings configured")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Mappings") + "\n\n")

	for _, e := range entries {
		switch e.State {
		case installer.StateLinked:
			b.WriteString(fmt.Sprintf("%s %s %s %s\n",
				pterm.Success.Prefix.Text, e.Name,
				MutedStyle.Render("->"), PathStyle.Render(e.LinkDest)))
		case installer.StateStale:
			b.WriteString(fmt.Sprintf("%s %s %s %s\n",
				pterm.Warning.Prefix.Text, e.Name,
				WarningStyle.Render("stale ->"), PathStyle.Render(e.LinkDest)))
		case installer.StateConflict:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				pterm.Warning.Prefix.Text, e.Name,
				WarningStyle.Render("exists and is not a symlink")))
		case installer.StateMissing:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				pterm.Info.Prefix.Text, e.Name,
				MutedStyle.Render("not linked")))
		case installer.StateNoSource:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				pterm.Info.Prefix.Text, e.Name,
				MutedStyle.Render("not in this checkout")))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderAgentList renders the persona documents found in the repository.
func (r *TerminalRenderer) RenderAgentList(defs []agents.Definition) string {
	if len(defs) == 0 {
		return MutedStyle.Render("No agents found")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Agents") + "\n\n")

	for _, def := range defs {
		b.WriteString(fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, TitleStyle.Render(def.Name)))
		if def.Model != "" {
			b.WriteString(MutedStyle.Render(fmt.Sprintf(" (%s)", def.Model)))
		}
		b.WriteString("\n")
		if def.Description != "" {
			b.WriteString("  " + MutedStyle.Render(def.Description) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
