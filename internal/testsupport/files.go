package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteDictionary writes one word per line into a fresh temp directory and
// returns the file path.
func WriteDictionary(t testing.TB, words ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words")
	return WriteFile(t, path, strings.Join(words, "\n")+"\n")
}

// WriteTree creates files under root from a map of slash-separated relative
// paths to contents. Entries ending in "/" create empty directories.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(target, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", target, err)
			}
			continue
		}
		WriteFile(t, target, content)
	}
}

// Unreadable creates a file that cannot be opened by the current user and
// skips the test when running as root, where permissions are not enforced.
func Unreadable(t testing.TB, path string) string {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permission checks are not enforced for root")
	}
	WriteFile(t, path, "secret\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(path, 0o644)
	})
	return path
}
