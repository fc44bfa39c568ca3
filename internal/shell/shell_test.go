package shell_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/wd/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapper_Zsh(t *testing.T) {
	t.Parallel()
	w := shell.Wrapper("zsh")
	require.NotEmpty(t, w)
	assert.Contains(t, w, "wd() {")
	assert.Contains(t, w, `command wd "$@"`)
	assert.Contains(t, w, `builtin cd -- "$out"`)
	// 역참조 토큰은 zsh의 디렉터리 스택 이동으로 그대로 넘어간다
	assert.Contains(t, w, `-[0-9]*) builtin cd "$out"`)
}

func TestWrapper_Bash(t *testing.T) {
	t.Parallel()
	w := shell.Wrapper("bash")
	require.NotEmpty(t, w)
	assert.Contains(t, w, "wd() {")
	assert.Contains(t, w, "builtin cd - > /dev/null")
	assert.Contains(t, w, "need zsh")
}

func TestWrapper_Fish(t *testing.T) {
	t.Parallel()
	w := shell.Wrapper("fish")
	require.NotEmpty(t, w)
	assert.Contains(t, w, "function wd")
	assert.Contains(t, w, "command wd $argv")
	assert.Contains(t, w, "prevd")
	assert.Contains(t, w, "builtin cd -- $out")
}

func TestWrapper_UnsupportedShell(t *testing.T) {
	t.Parallel()
	assert.Empty(t, shell.Wrapper("powershell"))
	assert.Empty(t, shell.Wrapper(""))
}

// 모든 예약어가 세 셸의 passthrough 분기에 들어 있어야 한다.
// 하나라도 빠지면 해당 하위 명령의 stdout이 cd 대상으로 오인된다.
func TestWrapper_ReservedWordsPresent(t *testing.T) {
	t.Parallel()
	reserved := []string{
		"add", "add!", "rm", "ls", "list", "show", "path",
		"clean", "doctor", "hook", "setup", "help", "completion",
	}
	for _, sh := range []string{"zsh", "bash", "fish"} {
		w := shell.Wrapper(sh)
		for _, word := range reserved {
			assert.Contains(t, w, word, "shell %s missing %q", sh, word)
		}
	}
}

func TestHook_ContainsMarkers(t *testing.T) {
	t.Parallel()
	for _, sh := range []string{"zsh", "bash", "fish"} {
		h := shell.Hook(sh)
		require.NotEmpty(t, h, "shell %s", sh)
		assert.True(t, strings.HasPrefix(h, shell.HookStartMarker))
		assert.Contains(t, h, shell.HookEndMarker)
	}
}

func TestHook_EvalsOwnShell(t *testing.T) {
	t.Parallel()
	assert.Contains(t, shell.Hook("zsh"), "wd hook zsh")
	assert.Contains(t, shell.Hook("bash"), "wd hook bash")
	assert.Contains(t, shell.Hook("fish"), "wd hook fish | source")
}

func TestHook_UnsupportedShell(t *testing.T) {
	t.Parallel()
	assert.Empty(t, shell.Hook("tcsh"))
}
