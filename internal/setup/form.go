package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
// 파이프 등 터미널이 아닌 stdin에서는 프롬프트 대신 에러를 돌려주어
// 호출자가 --yes나 --force 안내를 할 수 있게 한다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	if err := requireTerminal(); err != nil {
		return false, err
	}
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

// RunShellSelect는 셸 선택 UI를 표시한다.
func (h *HuhFormRunner) RunShellSelect(shells []string, detected string) (string, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}
	selected := detected
	options := make([]huh.Option[string], len(shells))
	for i, s := range shells {
		options[i] = huh.NewOption(s, s)
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which shell do you use?").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunShellSelect: %w", err)
	}
	return selected, nil
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("setup: stdin is not a terminal; pass --yes or --force to skip prompts")
	}
	return nil
}
