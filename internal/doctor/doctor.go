package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/wd/internal/config"
	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/shell"
	"github.com/hbjs97/wd/internal/store"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckWarpFile은 워프 파일의 존재, 쓰기 가능 여부, 내용 상태를 진단한다.
func CheckWarpFile(s *store.Store) []DiagResult {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return []DiagResult{{
			Name:    "warp_file",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s does not exist", s.Path),
			Fix:     "created automatically on the first wd add",
		}}
	}

	entries, malformed, err := s.Scan()
	if err != nil {
		return []DiagResult{{
			Name:    "warp_file",
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot read %s: %v", s.Path, err),
		}}
	}

	var results []DiagResult
	if !s.Writable() {
		results = append(results, DiagResult{
			Name:    "warp_file",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s is not writable", s.Path),
			Fix:     fmt.Sprintf("chmod u+w %s", s.Path),
		})
	} else {
		results = append(results, DiagResult{
			Name:    "warp_file",
			Status:  StatusOK,
			Message: fmt.Sprintf("%d warp point(s)", countUnique(entries)),
		})
	}

	if len(malformed) > 0 {
		results = append(results, DiagResult{
			Name:    "warp_file_lines",
			Status:  StatusWarn,
			Message: fmt.Sprintf("unparsable line(s): %s", joinInts(malformed)),
			Fix:     fmt.Sprintf("edit or remove those lines in %s", s.Path),
		})
	}

	if dups := duplicateNames(entries); len(dups) > 0 {
		results = append(results, DiagResult{
			Name:    "warp_file_dups",
			Status:  StatusWarn,
			Message: fmt.Sprintf("duplicate name(s): %s (last line wins)", strings.Join(dups, ", ")),
		})
	}

	return results
}

// CheckTargets는 등록된 포인트가 가리키는 디렉터리의 존재를 확인한다.
func CheckTargets(s *store.Store) []DiagResult {
	pts, err := s.Load()
	if err != nil {
		return []DiagResult{{
			Name:    "targets",
			Status:  StatusFail,
			Message: err.Error(),
		}}
	}

	var dead []string
	for _, p := range pts {
		info, err := os.Stat(store.ExpandHome(p.Path))
		if err != nil || !info.IsDir() {
			dead = append(dead, p.Name)
		}
	}
	if len(dead) > 0 {
		return []DiagResult{{
			Name:    "targets",
			Status:  StatusWarn,
			Message: fmt.Sprintf("point(s) with a missing target: %s", strings.Join(dead, ", ")),
			Fix:     "run wd clean",
		}}
	}
	return []DiagResult{{
		Name:    "targets",
		Status:  StatusOK,
		Message: "all targets exist",
	}}
}

// CheckConfig는 설정 파일 해석 가능 여부를 확인한다.
func CheckConfig(cfgPath string) DiagResult {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot parse %s", cfgPath),
			Fix:     fmt.Sprintf("fix or remove %s", cfgPath),
		}
	}
	if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: "no config file, defaults in use",
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("warpfile = %s", cfg.Warpfile),
	}
}

// CheckShellHook은 RC 파일에 hook 블록이 설치되어 있는지 확인한다.
// shellType과 rcPath는 호출자(cli)가 setup에서 얻어 넘긴다.
func CheckShellHook(shellType, rcPath string) DiagResult {
	if shellType == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: "$SHELL is not set, cannot detect the shell",
		}
	}
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("unsupported shell: %s", shellType),
		}
	}
	data, err := os.ReadFile(rcPath)
	if err != nil || !strings.Contains(string(data), shell.HookStartMarker) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("no wd hook in %s", rcPath),
			Fix:     "run wd setup",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s hook installed in %s", shellType, rcPath),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(s *store.Store, cfgPath, shellType, rcPath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckWarpFile(s)...)
	results = append(results, CheckTargets(s)...)
	results = append(results, CheckConfig(cfgPath))
	results = append(results, CheckShellHook(shellType, rcPath))
	return results
}

func countUnique(entries []point.Point) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Name] = struct{}{}
	}
	return len(seen)
}

// duplicateNames는 두 번 이상 정의된 이름을 첫 등장 순서로 반환한다.
func duplicateNames(entries []point.Point) []string {
	count := make(map[string]int, len(entries))
	for _, e := range entries {
		count[e.Name]++
	}
	var dups []string
	reported := make(map[string]bool)
	for _, e := range entries {
		if count[e.Name] > 1 && !reported[e.Name] {
			dups = append(dups, e.Name)
			reported[e.Name] = true
		}
	}
	return dups
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
