// Package testutil provides common test helpers for the wd project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempWarpFile creates a temporary warp file with the given content
// and returns its path.
func TempWarpFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, ".warprc")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempWarpFile: write failed: %v", err)
	}

	return path
}

// SetupTestPoints creates a warp file with a few points pre-registered,
// targeting real directories under a temp root. Returns the warp file
// path and the temp root.
func SetupTestPoints(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	for _, name := range []string{"proj", "docs"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("SetupTestPoints: mkdir failed: %v", err)
		}
	}

	content := "proj:" + filepath.Join(root, "proj") + "\n" +
		"docs:" + filepath.Join(root, "docs") + "\n"
	return TempWarpFile(t, content), root
}
