package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/store"
)

// ErrNoOp는 점 하나짜리 워프, 즉 현재 디렉터리로의 워프에 반환된다.
var ErrNoOp = errors.New("warping to current directory?")

// Result는 워프 판정 결과다. Back이 0보다 크면 경로 대신 디렉터리
// 히스토리를 Back 단계 되돌아간다. 두 필드는 동시에 쓰이지 않는다.
type Result struct {
	Path string
	Back int
}

// Resolve는 이름을 경로 또는 히스토리 역참조로 판정한다.
//
// 점만으로 된 이름: 점 N개(N>=2)는 N-1 단계 역참조, 점 하나는 ErrNoOp.
// 그 외에는 등록된 이름을 찾고, 정확히 일치하지 않으면 첫 슬래시 앞까지를
// 이름으로 보고 나머지를 하위 경로로 이어 붙인다. 저장 경로의 선행 ~는
// 판정 시점에 홈으로 확장된다.
func Resolve(points []point.Point, name string) (*Result, error) {
	if name != "" && strings.Trim(name, ".") == "" {
		back := len(name) - 1
		if back == 0 {
			return nil, fmt.Errorf("resolver.Resolve: %w", ErrNoOp)
		}
		return &Result{Back: back}, nil
	}

	if p, ok := lookup(points, name); ok {
		return &Result{Path: store.ExpandHome(p)}, nil
	}
	if head, rest, found := strings.Cut(name, "/"); found {
		if p, ok := lookup(points, head); ok {
			return &Result{Path: filepath.Join(store.ExpandHome(p), rest)}, nil
		}
	}

	if hint := closest(points, name); hint != "" {
		return nil, fmt.Errorf("resolver.Resolve: %w '%s' (did you mean '%s'?)", store.ErrNotFound, name, hint)
	}
	return nil, fmt.Errorf("resolver.Resolve: %w '%s'", store.ErrNotFound, name)
}

func lookup(points []point.Point, name string) (string, bool) {
	for _, p := range points {
		if p.Name == name {
			return p.Path, true
		}
	}
	return "", false
}

// closest는 오타 교정 후보를 찾는다. 레벤슈타인 거리 2 이하이면서
// 이름 길이보다 짧은 거리만 후보로 본다.
func closest(points []point.Point, name string) string {
	const maxDist = 2
	best := ""
	bestDist := maxDist + 1
	for _, p := range points {
		if d := levenshtein.ComputeDistance(name, p.Name); d < bestDist {
			best, bestDist = p.Name, d
		}
	}
	if bestDist <= maxDist && bestDist < utf8.RuneCountInString(name) {
		return best
	}
	return ""
}
