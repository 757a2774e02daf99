package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/agentlink/pkg/agents"
	"github.com/arthur-debert/agentlink/pkg/style"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Short:   MsgAgentsShort,
		GroupID: "core",
	}

	cmd.AddCommand(newAgentsListCmd())
	cmd.AddCommand(newAgentsShowCmd())
	return cmd
}

func newAgentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgAgentsListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := initRun()
			if err != nil {
				return err
			}

			defs, err := agents.List(rc.Paths.RepoRoot())
			if err != nil {
				return fmt.Errorf(MsgErrAgents, err)
			}

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderAgentList(defs))
			return nil
		},
	}
}

func newAgentsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <name>",
		Short:   MsgAgentsShowShort,
		Example: MsgAgentsShowExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := initRun()
			if err != nil {
				return err
			}

			_, body, err := agents.Find(rc.Paths.RepoRoot(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(renderMarkdown(body))
			return nil
		},
	}
}

// renderMarkdown renders agent markdown for the terminal, falling back
// to the raw text when rendering is unavailable or output is piped.
func renderMarkdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style.DetectFormat(os.Stdout) == style.FormatText {
		options = append(options, glamour.WithStandardStyle("notty"))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
