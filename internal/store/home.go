package store

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome은 선행 ~/ 또는 단독 ~를 홈 디렉터리로 치환한다.
// 홈을 알 수 없으면 입력을 그대로 돌려준다.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}

// ContractHome은 홈 디렉터리 아래 경로를 ~/ 접두사로 축약한다.
// 표시 전용이며 저장 형태에는 쓰지 않는다.
func ContractHome(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(os.PathSeparator)) {
		return "~" + p[len(home):]
	}
	return p
}
