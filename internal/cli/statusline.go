package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/agentlink/pkg/statusline"
)

func newStatuslineCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "statusline",
		Short:   MsgStatuslineShort,
		Long:    MsgStatuslineLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := statusline.Parse(cmd.InOrStdin())
			if err != nil {
				// A malformed session document renders nothing; the
				// status bar is no place for an error message.
				log.Debug().Err(err).Msg("Ignoring unparseable session document")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), statusline.NewRenderer().Render(in))
			return nil
		},
	}
}
