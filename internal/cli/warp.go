package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/wd/internal/resolver"
)

// runWarp는 워프 대상을 stdout 한 줄로 내보낸다.
//
// 프로세스는 부모 셸의 작업 디렉터리를 바꿀 수 없으므로 직접 cd하지
// 않는다. 셸 wrapper가 이 출력을 받아 절대 경로면 cd, "-N" 꼴이면
// 디렉터리 스택 이동으로 처리한다.
func (a *App) runWarp(cmd *cobra.Command, name, subdir string) error {
	if err := a.initStore(cmd); err != nil {
		return err
	}
	res, err := resolver.Resolve(a.points, name)
	if err != nil {
		return err
	}
	if res.Back > 0 {
		if subdir != "" {
			return fmt.Errorf("cli: cannot append a path to a back-reference")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "-%d\n", res.Back)
		return nil
	}
	target := res.Path
	if subdir != "" {
		target = filepath.Join(target, subdir)
	}
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
