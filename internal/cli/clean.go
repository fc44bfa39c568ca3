package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/store"
)

func (a *App) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove warp points whose target no longer exists",
		Long: `Check every warp point's target directory and remove the
points that lead nowhere. Prompts before removing unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClean(cmd)
		},
	}
}

func (a *App) runClean(cmd *cobra.Command) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}

	var dead []point.Point
	for _, p := range a.points {
		info, err := os.Stat(store.ExpandHome(p.Path))
		if err != nil || !info.IsDir() {
			dead = append(dead, p)
		}
	}
	if len(dead) == 0 {
		a.statusf(cmd, "Nothing to clean")
		return nil
	}

	names := make([]string, len(dead))
	for i, p := range dead {
		names[i] = p.Name
	}

	if !a.force {
		ok, err := a.Forms.RunConfirm(fmt.Sprintf("Remove %d stale warp point(s): %s?", len(dead), strings.Join(names, ", ")))
		if err != nil {
			return fmt.Errorf("cli.clean: %w", err)
		}
		if !ok {
			a.statusf(cmd, "Clean cancelled")
			return nil
		}
	}

	for _, p := range dead {
		if err := a.store.Remove(p.Name); err != nil {
			return err
		}
	}
	a.statusf(cmd, "Removed %d warp point(s): %s", len(dead), strings.Join(names, ", "))
	return nil
}
