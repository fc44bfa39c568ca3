package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/resolver"
)

func (a *App) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <name>",
		Short: "Print the absolute path of a warp point",
		Long: `Resolve the named warp point and print its target path.
Useful in scripts: cp file "$(wd path proj)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPath(cmd, args[0])
		},
	}
}

func (a *App) runPath(cmd *cobra.Command, name string) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	res, err := resolver.Resolve(a.points, name)
	if err != nil {
		return err
	}
	if res.Back > 0 {
		return fmt.Errorf("cli.path: need a warp point name, not a back-reference")
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
