package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *App) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name]",
		Short: "Remove a warp point",
		Long: `Remove the named warp point from the warp file.
With no name, the current directory's basename is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runRm(cmd, name)
		},
	}
}

func (a *App) runRm(cmd *cobra.Command, name string) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	if name == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cli.rm: %w", err)
		}
		name = filepath.Base(cwd)
	}
	if err := a.store.Remove(name); err != nil {
		return err
	}
	a.statusf(cmd, "Warp point removed: %s", name)
	return nil
}
