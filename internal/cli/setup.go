package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/setup"
)

func (a *App) newSetupCmd() *cobra.Command {
	var (
		shellType string
		yes       bool
		uninstall bool
	)
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install the wd hook into your shell's rc file",
		Long: `Pick a shell, append the wd hook block to its rc file, and
write a config template if none exists. Run once after
installing the binary. --uninstall removes the block again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &setup.Runner{
				CfgPath:   a.CfgPath,
				Warpfile:  a.warpfilePath(),
				Shell:     shellType,
				Yes:       yes || a.force,
				Uninstall: uninstall,
				Forms:     a.Forms,
				Out:       a.statusWriter(cmd),
			}
			return r.Run()
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "shell to install the hook for (zsh, bash, fish)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompts")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "remove the hook block instead of installing it")
	return cmd
}
