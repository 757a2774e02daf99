package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/agentlink/pkg/errors"
	"github.com/arthur-debert/agentlink/pkg/installer"
	"github.com/arthur-debert/agentlink/pkg/logging"
	"github.com/arthur-debert/agentlink/pkg/style"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := initRun()
			if err != nil {
				return err
			}

			opts := rc.installerOptions(cmd)
			log.Info().
				Str("repo_root", opts.RepoRoot).
				Str("target_dir", opts.TargetDir).
				Bool("dry_run", opts.DryRun).
				Msg("Installing mappings")

			done := logging.LogOperationStart(logging.GetLogger("cli"), "install")
			results, err := installer.Install(opts)
			done()
			if err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}

			if opts.DryRun {
				fmt.Println(style.InfoStyle.Render(MsgDryRunNotice))
			}

			var renderer style.Renderer = style.NewTerminalRenderer()
			fmt.Println(renderer.RenderInstallResults(results))

			if installer.AnyFailed(results) {
				return errors.New(errors.ErrInstallFailed, "one or more mappings failed")
			}
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Example: MsgStatusExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := initRun()
			if err != nil {
				return err
			}

			entries, err := installer.Status(rc.installerOptions(cmd))
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderStatus(entries))
			return nil
		},
	}
}

func newUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unlink",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := initRun()
			if err != nil {
				return err
			}

			opts := rc.installerOptions(cmd)
			log.Info().
				Str("repo_root", opts.RepoRoot).
				Str("target_dir", opts.TargetDir).
				Bool("dry_run", opts.DryRun).
				Msg("Unlinking mappings")

			done := logging.LogOperationStart(logging.GetLogger("cli"), "unlink")
			results, err := installer.Unlink(opts)
			done()
			if err != nil {
				return fmt.Errorf(MsgErrUnlink, err)
			}

			if opts.DryRun {
				fmt.Println(style.InfoStyle.Render(MsgDryRunNotice))
			}

			var renderer style.Renderer = style.NewTerminalRenderer()
			fmt.Println(renderer.RenderInstallResults(results))

			if installer.AnyFailed(results) {
				return errors.New(errors.ErrInstallFailed, "one or more mappings failed")
			}
			return nil
		},
	}
}
