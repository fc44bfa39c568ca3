package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/setup"
	"github.com/hbjs97/wd/internal/shell"
)

func (a *App) newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook [shell]",
		Short: "Print the shell wrapper function",
		Long: `Print the wd wrapper function for zsh, bash or fish. Meant to
be evaluated from an rc file: eval "$(wd hook zsh)". With no
argument the shell is detected from $SHELL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shellType := setup.DetectShell()
			if len(args) == 1 {
				shellType = args[0]
			}
			w := shell.Wrapper(shellType)
			if w == "" {
				return fmt.Errorf("cli.hook: unsupported shell: %s", shellType)
			}
			fmt.Fprint(cmd.OutOrStdout(), w)
			return nil
		},
	}
}
