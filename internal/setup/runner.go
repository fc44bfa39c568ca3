package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/wd/internal/config"
	"github.com/hbjs97/wd/internal/store"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath   string // config.toml 경로
	Warpfile  string // 워프 파일 경로, 비어있지 않으면 생성을 보장한다
	Shell     string // 비어있지 않으면 셸 선택 UI를 건너뛴다
	Yes       bool   // true면 확인 프롬프트를 건너뛴다
	Uninstall bool   // true면 hook 블록을 설치하는 대신 제거한다
	Forms     FormRunner

	// Out은 진행 메시지를 받는다. nil이면 os.Stderr. stdout은 셸
	// wrapper의 cd 채널이므로 진행 메시지를 싣지 않는다.
	Out io.Writer
}

// Run은 setup 플로우를 실행한다: 셸 선택, hook 설치(또는 제거),
// 설정 파일 템플릿과 워프 파일 생성.
func (r *Runner) Run() error {
	shellType := r.Shell
	if shellType == "" {
		var err error
		shellType, err = r.Forms.RunShellSelect(SupportedShells(), DetectShell())
		if err != nil {
			return fmt.Errorf("setup.Run: %w", err)
		}
	}
	rcPath := ShellRCPath(shellType)
	if rcPath == "" {
		return fmt.Errorf("setup.Run: unsupported shell: %s", shellType)
	}

	if r.Uninstall {
		if err := UninstallShellHook(rcPath); err != nil {
			return err
		}
		r.printf("Hook removed from %s\n", rcPath)
		return nil
	}

	if !r.Yes {
		ok, err := r.Forms.RunConfirm(fmt.Sprintf("Install the wd hook into %s?", rcPath))
		if err != nil {
			return fmt.Errorf("setup.Run: %w", err)
		}
		if !ok {
			r.printf("Setup cancelled.\n")
			return nil
		}
	}

	if err := InstallShellHook(shellType, rcPath); err != nil {
		return err
	}
	r.printf("Hook installed: %s\n", rcPath)

	// 설정 파일 템플릿은 없을 때만 만든다
	if _, err := os.Stat(r.CfgPath); os.IsNotExist(err) {
		cfg := &config.Config{Version: 1, Warpfile: "~/.warprc"}
		if err := config.Save(r.CfgPath, cfg); err != nil {
			return err
		}
		r.printf("Config written: %s\n", r.CfgPath)
	}

	if r.Warpfile != "" {
		if _, err := store.New(r.Warpfile).Load(); err != nil {
			return fmt.Errorf("setup.Run: %w", err)
		}
	}

	r.printf("Open a new shell or run: eval \"$(wd hook %s)\"\n", shellType)
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	w := r.Out
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, args...)
}
