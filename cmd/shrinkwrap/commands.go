package shrinkwrap

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/commands/convert"
	"github.com/arthur-debert/shrinkwrap/pkg/commands/initialize"
	"github.com/arthur-debert/shrinkwrap/pkg/commands/status"
	"github.com/arthur-debert/shrinkwrap/pkg/config"
	"github.com/arthur-debert/shrinkwrap/pkg/style"
	"github.com/arthur-debert/shrinkwrap/pkg/ui/prompt"
)

func newConvertCmd(dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:     "convert",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(*dryRun)
		},
	}
}

func runConvert(dryRun bool) error {
	// With no config file on a real terminal, offer to create one rather
	// than failing validation with an opaque setup error.
	if _, ok := config.Path("."); !ok && prompt.Interactive() {
		create, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show(MsgNoConfigPrompt)
		if err == nil && create {
			if err := runInitWizard(false); err != nil {
				return err
			}
		}
	}

	result, err := convert.Run(convert.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf(MsgErrConvert, err)
	}
	fmt.Print(style.RenderConvertResult(result))
	return nil
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := status.Run(status.Options{})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}
			fmt.Print(style.RenderStatus(result))
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	var (
		force bool
		cfg   = config.Config{
			Format:          string(codec.FormatWebP),
			Quality:         string(codec.TierSmall),
			Output:          "backup",
			WorkDir:         ".",
			ManageGitignore: true,
		}
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags given explicitly win; otherwise prompt when on a TTY.
			if !cmd.Flags().Changed("input") && prompt.Interactive() {
				wizardCfg, err := prompt.ConfigWizard(cfg)
				if err != nil {
					return err
				}
				cfg = wizardCfg
			}

			result, err := initialize.Run(initialize.Options{
				Config: cfg,
				Force:  force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}
			fmt.Printf(MsgConfigCreated, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Input, "input", "", MsgFlagInput)
	cmd.Flags().StringVar(&cfg.Output, "output", cfg.Output, MsgFlagOutput)
	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, MsgFlagFormat)
	cmd.Flags().StringVar(&cfg.Quality, "quality", cfg.Quality, MsgFlagQuality)
	cmd.Flags().StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir, MsgFlagWorkDir)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func runInitWizard(force bool) error {
	cfg := config.Config{
		Format:          string(codec.FormatWebP),
		Quality:         string(codec.TierSmall),
		Output:          "backup",
		WorkDir:         ".",
		ManageGitignore: true,
	}
	wizardCfg, err := prompt.ConfigWizard(cfg)
	if err != nil {
		return err
	}
	result, err := initialize.Run(initialize.Options{Config: wizardCfg, Force: force})
	if err != nil {
		return fmt.Errorf(MsgErrInit, err)
	}
	fmt.Printf(MsgConfigCreated, result.Path)
	return nil
}
