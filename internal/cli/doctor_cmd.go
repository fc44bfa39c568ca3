package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/doctor"
	"github.com/hbjs97/wd/internal/setup"
	"github.com/hbjs97/wd/internal/store"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the wd environment",
		Long: `Check the warp file, point targets, config file and shell hook,
and print a fix for anything that looks wrong.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 진단은 스토어 게이트를 거치지 않는다. 워프 파일이 망가진
			// 상황에서도 돌아야 하기 때문이다.
			s := store.New(a.warpfilePath())
			shellType := setup.DetectShell()
			results := doctor.RunAll(s, a.CfgPath, shellType, setup.ShellRCPath(shellType))
			printDiagResults(cmd, results)
			return nil
		},
	}
}

func printDiagResults(cmd *cobra.Command, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "      fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
