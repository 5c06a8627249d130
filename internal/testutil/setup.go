package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTheme builds t and writes it to icon-theme.cache inside a fresh
// temporary theme directory. It returns the cache path.
//
// Example:
//
//	path := testutil.WriteTheme(t, testutil.SampleTheme())
//	f, err := cache.Open(path, cache.OpenOptions{})
func WriteTheme(t *testing.T, theme Theme) string {
	t.Helper()
	b, _, err := Build(theme)
	if err != nil {
		t.Fatalf("build theme: %v", err)
	}
	return WriteCache(t, b)
}

// WriteCache writes raw cache bytes into a fresh temporary theme directory.
func WriteCache(t *testing.T, b []byte) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "hicolor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir theme: %v", err)
	}
	path := filepath.Join(dir, "icon-theme.cache")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}
	return path
}

// ResolveSamplePath finds SampleCachePath from any package directory and
// skips the test when it does not exist.
func ResolveSamplePath(t *testing.T) string {
	t.Helper()

	candidates := []string{
		SampleCachePath,
		"../" + SampleCachePath,
		"../../" + SampleCachePath,
		"../../../" + SampleCachePath,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skipf("sample cache not found at any candidate path starting from: %s", SampleCachePath)
	return ""
}
