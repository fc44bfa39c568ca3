package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/store"
)

func (a *App) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show warp points to the current directory",
		Long: `Without arguments, list the warp points whose target is the
current directory. With a name, show where that point leads.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runShow(cmd, name)
		},
	}
}

func (a *App) runShow(cmd *cobra.Command, name string) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	listed, err := a.store.List()
	if err != nil {
		return err
	}
	if name != "" {
		for _, p := range listed {
			if p.Name == name {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", p.Name, p.Path)
				return nil
			}
		}
		return fmt.Errorf("cli.show: %w '%s'", store.ErrNotFound, name)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.show: %w", err)
	}
	// ~ 축약은 ExpandHome이 되돌리므로 표시용 뷰로 비교해도 결과는 같다.
	var match []point.Point
	for _, p := range listed {
		if filepath.Clean(store.ExpandHome(p.Path)) == cwd {
			match = append(match, p)
		}
	}
	if len(match) == 0 {
		a.statusf(cmd, "No warp points to %s", store.ContractHome(cwd))
		return nil
	}
	a.statusf(cmd, "Warp points to current directory:")
	for _, p := range match {
		fmt.Fprintln(cmd.OutOrStdout(), p.Name)
	}
	return nil
}
