package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/resolver"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [name]",
		Aliases: []string{"list"},
		Short:   "List all warp points, or the files at one",
		Long: `Without arguments, print every warp point and its target.
With a name, run ls inside that warp point's directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runListDir(cmd, args[0])
			}
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	listed, err := a.store.List()
	if err != nil {
		return err
	}
	if len(listed) == 0 {
		a.statusf(cmd, "No warp points")
		return nil
	}
	a.statusf(cmd, "All warp points:")
	width := 0
	for _, p := range listed {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}
	for _, p := range listed {
		fmt.Fprintf(cmd.OutOrStdout(), "%*s -> %s\n", width, p.Name, p.Path)
	}
	return nil
}

func (a *App) runListDir(cmd *cobra.Command, name string) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	res, err := resolver.Resolve(a.points, name)
	if err != nil {
		return err
	}
	if res.Back > 0 {
		return fmt.Errorf("cli.ls: need a warp point name, not a back-reference")
	}
	out, err := a.Commander.RunInDir(cmd.Context(), res.Path, "ls")
	if err != nil {
		return fmt.Errorf("cli.ls: %w", err)
	}
	_, _ = cmd.OutOrStdout().Write(out)
	return nil
}
