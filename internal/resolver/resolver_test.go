package resolver_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/wd/internal/point"
	"github.com/hbjs97/wd/internal/resolver"
	"github.com/hbjs97/wd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var points = []point.Point{
	{Name: "proj", Path: "/home/u/proj"},
	{Name: "docs", Path: "/home/u/Documents"},
	{Name: "deep/name", Path: "/srv/deep"},
}

func TestResolve_KnownName(t *testing.T) {
	t.Parallel()
	res, err := resolver.Resolve(points, "proj")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/proj", res.Path)
	assert.Zero(t, res.Back)
}

func TestResolve_ExpandsStoredTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	res, err := resolver.Resolve([]point.Point{{Name: "p", Path: "~/proj"}}, "p")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "proj"), res.Path)
}

func TestResolve_SingleDot(t *testing.T) {
	t.Parallel()
	_, err := resolver.Resolve(points, ".")
	require.ErrorIs(t, err, resolver.ErrNoOp)
}

func TestResolve_BackReferences(t *testing.T) {
	t.Parallel()
	cases := map[string]int{"..": 1, "...": 2, "....": 3}
	for name, back := range cases {
		res, err := resolver.Resolve(points, name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, back, res.Back)
		assert.Empty(t, res.Path)
	}
}

func TestResolve_Subdirectory(t *testing.T) {
	t.Parallel()
	res, err := resolver.Resolve(points, "proj/cmd/api")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/proj/cmd/api", res.Path)
}

// 슬래시가 들어간 이름이 그대로 등록돼 있으면 분해보다 정확 일치가 먼저다.
func TestResolve_ExactMatchBeatsSplit(t *testing.T) {
	t.Parallel()
	res, err := resolver.Resolve(points, "deep/name")
	require.NoError(t, err)
	assert.Equal(t, "/srv/deep", res.Path)
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()
	_, err := resolver.Resolve(points, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "'missing'")
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestResolve_SuggestsCloseName(t *testing.T) {
	t.Parallel()
	_, err := resolver.Resolve(points, "prj")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "did you mean 'proj'?")
}

func TestResolve_NoSuggestionForShortNames(t *testing.T) {
	t.Parallel()
	_, err := resolver.Resolve([]point.Point{{Name: "ab", Path: "/x"}}, "zz")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestResolve_EmptyRegistry(t *testing.T) {
	t.Parallel()
	_, err := resolver.Resolve(nil, "anything")
	require.ErrorIs(t, err, store.ErrNotFound)
}
