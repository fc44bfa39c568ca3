package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/store"
)

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a warp point for the current directory",
		Long: `Register the current directory under the given name.
With no name, the directory's basename is used. Use "add!"
or --force to overwrite an existing point.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runAdd(cmd, name, a.force)
		},
	}
}

func (a *App) newAddForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add! [name]",
		Short: "Add a warp point, overwriting an existing one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runAdd(cmd, name, true)
		},
	}
}

func (a *App) runAdd(cmd *cobra.Command, name string, overwrite bool) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.add: %w", err)
	}
	if name == "" {
		name = filepath.Base(cwd)
	}
	if err := point.ValidateName(name); err != nil {
		return err
	}
	if err := a.store.Add(name, cwd, overwrite); err != nil {
		return err
	}
	a.statusf(cmd, "Warp point added: %s -> %s", name, store.ContractHome(cwd))
	return nil
}
