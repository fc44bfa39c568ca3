package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/wd/internal/shell"
)

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// SupportedShells는 wrapper를 제공하는 셸 목록이다.
func SupportedShells() []string {
	return []string{"zsh", "bash", "fish"}
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(shellType string) string {
	home, _ := os.UserHomeDir()
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "wd.fish")
	default:
		return ""
	}
}

// InstallShellHook은 셸 RC 파일에 wd hook 블록을 추가한다.
// 마커가 이미 있으면 건너뛴다.
func InstallShellHook(shellType, rcPath string) error {
	block := shell.Hook(shellType)
	if block == "" {
		return fmt.Errorf("setup.InstallShellHook: unsupported shell: %s", shellType)
	}

	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	if strings.Contains(string(existing), shell.HookStartMarker) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", block); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return nil
}

// UninstallShellHook은 RC 파일에서 wd hook 블록을 제거한다.
// 블록이 없으면 아무것도 하지 않는다. 블록만 있던 파일은 지운다.
func UninstallShellHook(rcPath string) error {
	data, err := os.ReadFile(rcPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("setup.UninstallShellHook: %w", err)
	}

	content := string(data)
	start := strings.Index(content, shell.HookStartMarker)
	end := strings.Index(content, shell.HookEndMarker)
	if start == -1 || end == -1 {
		return nil
	}

	before := content[:start]
	after := content[end+len(shell.HookEndMarker):]
	cleaned := strings.TrimSpace(before + after)

	if cleaned == "" {
		return os.Remove(rcPath)
	}
	return os.WriteFile(rcPath, []byte(cleaned+"\n"), 0600)
}
