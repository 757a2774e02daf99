package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/agentlink/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GetDefaultsContent()

			if effective {
				rc, err := initRun()
				if err != nil {
					return err
				}
				marshaled, err := toml.Marshal(rc.Config)
				if err != nil {
					return fmt.Errorf("failed to marshal effective configuration: %w", err)
				}
				content = string(marshaled)
			}

			if !write {
				fmt.Print(content)
				return nil
			}

			rc, err := initRun()
			if err != nil {
				return err
			}

			target := filepath.Join(rc.Paths.RepoRoot(), "agentlink.toml")
			if _, err := os.Stat(target); err == nil {
				log.Warn().Str("path", target).Msg("Config file already exists, not overwriting")
				return fmt.Errorf("%s already exists", target)
			}

			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}

			fmt.Printf("Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the config to agentlink.toml at the repository root")
	cmd.Flags().BoolVar(&effective, "effective", false, "Show the effective configuration after all overrides")

	return cmd
}
