package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/hbjs97/wd/internal/point"
)

// ErrExists는 같은 이름의 워프 포인트가 이미 등록되어 있을 때 반환된다.
var ErrExists = errors.New("warp point already exists")

// ErrNotFound는 요청한 워프 포인트가 레지스트리에 없을 때 반환된다.
var ErrNotFound = errors.New("unknown warp point")

// ErrIO는 워프 파일 입출력이 실패할 때 반환된다. 원인 오류를 함께 감싼다.
var ErrIO = errors.New("warp file error")

const lockTimeout = 3 * time.Second

// Store는 워프 파일(플랫 텍스트 레지스트리)을 소유한다.
// 한 번의 실행 동안 파일을 읽고 쓰는 유일한 컴포넌트다.
type Store struct {
	Path   string // 워프 파일 경로
	NoLock bool   // true면 변경 시 flock을 잡지 않는다
}

// New는 주어진 경로의 Store를 생성한다. 파일 생성은 Load 시점에 일어난다.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load는 워프 파일을 파싱하여 유효 항목을 파일 순서대로 반환한다.
// 파일이 없으면 빈 파일을 만든다. 빈 줄과 망가진 줄은 매핑에서 제외하고,
// 중복 이름은 마지막 줄이 이긴다.
func (s *Store) Load() ([]point.Point, error) {
	if err := s.ensureFile(); err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}
	entries, _, err := s.Scan()
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}
	var out []point.Point
	seen := make(map[string]int)
	for _, p := range entries {
		if i, dup := seen[p.Name]; dup {
			out[i].Path = p.Path // 마지막 항목 우선
			continue
		}
		seen[p.Name] = len(out)
		out = append(out, p)
	}
	return out, nil
}

// Scan은 줄 단위의 원시 뷰를 반환한다: 파싱된 항목 전부(중복 포함)와
// 파싱 불가능한 줄의 1-기반 줄 번호. doctor가 진단에 사용한다.
func (s *Store) Scan() ([]point.Point, []int, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, nil, err
	}
	var entries []point.Point
	var malformed []int
	for i, ln := range lines {
		if blankLine(ln) {
			continue
		}
		p, ok := parseLine(ln)
		if !ok {
			malformed = append(malformed, i+1)
			continue
		}
		entries = append(entries, p)
	}
	return entries, malformed, nil
}

// List는 표시용 뷰를 반환한다. 경로의 홈 디렉터리 접두사는 ~로 축약되며
// 저장된 형태는 바뀌지 않는다.
func (s *Store) List() ([]point.Point, error) {
	pts, err := s.Load()
	if err != nil {
		return nil, err
	}
	out := make([]point.Point, len(pts))
	for i, p := range pts {
		out[i] = point.Point{Name: p.Name, Path: ContractHome(p.Path)}
	}
	return out, nil
}

// Add는 name 아래에 path를 등록한다. 이미 존재하면 overwrite가 참일 때만
// 기존 줄을 제거한 뒤 새 줄을 덧붙인다. 전체 쓰기는 임시 파일 + rename으로
// 원자적으로 이루어진다.
func (s *Store) Add(name, path string, overwrite bool) error {
	return s.withLock(func() error {
		lines, err := s.readLines()
		if err != nil {
			return fmt.Errorf("store.Add: %w", err)
		}
		exists := false
		for _, ln := range lines {
			if p, ok := parseLine(ln); ok && p.Name == name {
				exists = true
				break
			}
		}
		if exists && !overwrite {
			return fmt.Errorf("store.Add: %w: '%s' (use add! to overwrite)", ErrExists, name)
		}
		kept := filterOut(lines, name)
		kept = append(kept, formatLine(point.Point{Name: name, Path: path}))
		if err := s.writeLines(kept); err != nil {
			return fmt.Errorf("store.Add: %w", err)
		}
		return nil
	})
}

// Remove는 name 항목을 제거한다. 없으면 ErrNotFound.
func (s *Store) Remove(name string) error {
	return s.withLock(func() error {
		lines, err := s.readLines()
		if err != nil {
			return fmt.Errorf("store.Remove: %w", err)
		}
		kept := filterOut(lines, name)
		if len(kept) == len(lines) {
			return fmt.Errorf("store.Remove: %w: '%s'", ErrNotFound, name)
		}
		if err := s.writeLines(kept); err != nil {
			return fmt.Errorf("store.Remove: %w", err)
		}
		return nil
	})
}

// Writable은 파일을 append 모드로 열어 쓰기 가능 여부를 확인한다.
// 데이터는 쓰지 않는다.
func (s *Store) Writable() bool {
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}
	_ = f.Close() // 쓰기 없이 닫기만 하므로 실패해도 무방
	return true
}

// filterOut은 파싱 키가 name인 줄만 제거한다. 빈 줄과 망가진 줄은
// 어떤 이름과도 일치하지 않으므로 그대로 보존된다.
func filterOut(lines []string, name string) []string {
	kept := lines[:0:0]
	for _, ln := range lines {
		if p, ok := parseLine(ln); ok && p.Name == name {
			continue
		}
		kept = append(kept, ln)
	}
	return kept
}

func (s *Store) ensureFile() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil // 다른 실행이 먼저 만들었다
		}
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return f.Close()
}

func (s *Store) readLines() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return splitLines(string(data)), nil
}

// writeLines는 같은 디렉터리의 임시 파일에 전체 내용을 쓴 뒤 rename으로
// 원본을 교체한다. 실패 시 원본은 그대로 남고 임시 파일은 지운다.
func (s *Store) writeLines(lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpName := tmp.Name()
	for _, ln := range lines {
		if _, err := tmp.WriteString(ln + "\n"); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// withLock은 변경 작업을 flock으로 감싼다. <파일>.lock에 배타 잠금을 잡으며
// 잠금 파일은 잠금 해제 후에도 남는다.
func (s *Store) withLock(fn func() error) error {
	if s.NoLock {
		return fn()
	}
	fl := flock.New(s.Path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("store: %w: lock: %v", ErrIO, err)
	}
	if !locked {
		return fmt.Errorf("store: %w: another wd process is updating the warp file", ErrIO)
	}
	defer func() {
		_ = fl.Unlock() // 프로세스 종료로도 해제되므로 실패는 무시
	}()
	return fn()
}
