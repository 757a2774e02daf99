// Package cli wires the agentlink commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/agentlink/internal/version"
	"github.com/arthur-debert/agentlink/pkg/config"
	"github.com/arthur-debert/agentlink/pkg/installer"
	"github.com/arthur-debert/agentlink/pkg/logging"
	"github.com/arthur-debert/agentlink/pkg/paths"
	"github.com/arthur-debert/agentlink/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "agentlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if style.DetectFormat(os.Stdout) == style.FormatText {
				pterm.DisableStyling()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag incorrect usage.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().Bool("yes", false, MsgFlagYes)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newUnlinkCmd())
	rootCmd.AddCommand(newAgentsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newStatuslineCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runContext bundles everything a command run needs: resolved paths and
// the effective configuration.
type runContext struct {
	Paths  *paths.Paths
	Config *config.Config
}

// initRun initializes paths and configuration, warning when repository
// discovery fell back to the current directory.
func initRun() (*runContext, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.RepoRoot())
	}

	cfg, err := config.Load(p.RepoRoot())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConf, err)
	}

	return &runContext{Paths: p, Config: cfg}, nil
}

// targetDir resolves the effective target directory. The AGENTLINK_TARGET
// environment variable wins over the configured install.target.
func (rc *runContext) targetDir() string {
	if os.Getenv(paths.EnvTargetDir) != "" {
		return rc.Paths.TargetDir()
	}
	return rc.Config.Install.Target
}

// installerOptions builds installer options from the run context and
// the command's flags.
func (rc *runContext) installerOptions(cmd *cobra.Command) installer.Options {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")

	var confirm installer.Confirmer = installer.NewConsoleConfirmer()
	if yes {
		confirm = installer.AlwaysApprove()
	}

	return installer.Options{
		RepoRoot:  rc.Paths.RepoRoot(),
		TargetDir: rc.targetDir(),
		Mappings:  rc.Config.Install.Mappings,
		Confirm:   confirm,
		DryRun:    dryRun,
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
