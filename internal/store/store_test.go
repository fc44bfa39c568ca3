package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), ".warprc"))
}

func TestLoad_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	s := store.New(filepath.Join(dir, "nested", ".warprc"))

	pts, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, pts)

	info, err := os.Stat(s.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAdd_ThenLoad(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("proj", "/home/u/proj", false))

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.Equal(t, point.Point{Name: "proj", Path: "/home/u/proj"}, pts[0])
}

func TestAdd_DuplicateRejected(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("proj", "/a", false))

	err := s.Add("proj", "/b", false)
	require.ErrorIs(t, err, store.ErrExists)

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.Equal(t, "/a", pts[0].Path, "실패한 add는 파일을 바꾸지 않는다")
}

func TestAdd_Overwrite(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("proj", "/a", false))
	require.NoError(t, s.Add("other", "/o", false))
	require.NoError(t, s.Add("proj", "/b", true))

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 2)
	// 덮어쓴 항목은 파일 끝으로 이동한다
	assert.Equal(t, "other", pts[0].Name)
	assert.Equal(t, point.Point{Name: "proj", Path: "/b"}, pts[1])
}

func TestRemove(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("a", "/a", false))
	require.NoError(t, s.Add("b", "/b", false))

	require.NoError(t, s.Remove("a"))

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.Equal(t, "b", pts[0].Name)
}

func TestRemove_Missing(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("a", "/a", false))

	err := s.Remove("nope")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "'nope'")
}

func TestLoad_SkipsBlankAndMalformed(t *testing.T) {
	s := newStore(t)
	content := "a:/a\n\n   \nno separator here\nb:/b\n:/missing-name\nc:\n"
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0700))
	require.NoError(t, os.WriteFile(s.Path, []byte(content), 0600))

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, "a", pts[0].Name)
	assert.Equal(t, "b", pts[1].Name)

	_, malformed, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 7}, malformed)
}

// 망가진 줄은 매핑에서만 빠질 뿐, 재작성 후에도 원문 그대로 남는다.
func TestRewrite_PreservesUnparsableLines(t *testing.T) {
	s := newStore(t)
	content := "a:/a\n# hand-written note\nb:/b\n"
	require.NoError(t, os.WriteFile(s.Path, []byte(content), 0600))

	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Add("c", "/c", false))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, "# hand-written note\nb:/b\nc:/c\n", string(data))
}

func TestLoad_DuplicateNameLastWins(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("p:/old\nq:/q\np:/new\n"), 0600))

	pts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, point.Point{Name: "p", Path: "/new"}, pts[0])
	assert.Equal(t, "q", pts[1].Name)
}

func TestRoundTrip_AwkwardPaths(t *testing.T) {
	s := newStore(t)
	entries := []point.Point{
		{Name: "v", Path: "/line\nbreak"},
		{Name: "w", Path: "/home/u/my project"},
		{Name: "x", Path: "/mnt/c:/windows/style"},
		{Name: "y", Path: `/odd/back\slash`},
		{Name: "z", Path: "/carriage\rreturn"},
		{Name: "z2", Path: "/tab\there"},
	}
	for _, e := range entries {
		require.NoError(t, s.Add(e.Name, e.Path, false))
	}

	pts, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, pts)

	// 개행이 이스케이프되지 않으면 줄 수가 항목 수를 넘어선다
	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, len(entries), strings.Count(string(data), "\n"))
}

func TestAdd_LeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Add("a", "/a", false))
	require.NoError(t, s.Add("b", "/b", false))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(s.Path), "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWritable(t *testing.T) {
	s := newStore(t)
	_, err := s.Load()
	require.NoError(t, err)
	assert.True(t, s.Writable())

	if os.Geteuid() == 0 {
		t.Skip("root는 권한 비트를 무시한다")
	}
	require.NoError(t, os.Chmod(s.Path, 0400))
	assert.False(t, s.Writable())
}

func TestWritable_MissingFile(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, s.Writable())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "proj"), store.ExpandHome("~/proj"))
	assert.Equal(t, home, store.ExpandHome("~"))
	assert.Equal(t, "/abs/path", store.ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", store.ExpandHome("~user/x"), "~user 형태는 건드리지 않는다")
}

func TestContractHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "~/proj", store.ContractHome(filepath.Join(home, "proj")))
	assert.Equal(t, "~", store.ContractHome(home))
	assert.Equal(t, "/elsewhere", store.ContractHome("/elsewhere"))
	assert.Equal(t, home+"x", store.ContractHome(home+"x"), "접두사가 경로 경계여야 축약한다")
}

func TestList_ContractsHomeForDisplayOnly(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	s := store.New(filepath.Join(home, ".warprc"))
	target := filepath.Join(home, "work", "api")
	require.NoError(t, s.Add("api", target, false))

	listed, err := s.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "~/work/api", listed[0].Path)

	// 저장 형태는 원시 절대 경로 그대로다
	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), target)
	assert.NotContains(t, string(data), "~")
}
