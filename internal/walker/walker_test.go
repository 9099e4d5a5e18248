package walker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spchk/internal/failures"
	"spchk/internal/testsupport"
	"spchk/internal/walker"
)

type recorder struct {
	visited  []string
	reported []error
}

func (r *recorder) visit(_ context.Context, path string) error {
	r.visited = append(r.visited, path)
	return nil
}

func (r *recorder) report(err error) {
	r.reported = append(r.reported, err)
}

func newWalker() *walker.Walker {
	return walker.New(walker.Options{FilePattern: walker.DefaultFilePattern, SkipHidden: true})
}

func resolve(t *testing.T, w *walker.Walker, path string) *recorder {
	t.Helper()
	rec := &recorder{}
	require.NoError(t, w.Resolve(context.Background(), path, rec.visit, rec.report))
	return rec
}

func TestResolveDirectoryVisitsMatchingFilesInOrder(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"b.txt":             "b",
		"a.txt":             "a",
		"readme.md":         "skip",
		"notes.txt.bak":     "substring match",
		".hidden.txt":       "skip",
		".git/config.txt":   "skip",
		"sub/c.txt":         "c",
		"sub/deeper/d.txt":  "d",
		"sub/deeper/e.text": "skip",
		"empty/":            "",
	})

	rec := resolve(t, newWalker(), root)

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "notes.txt.bak"),
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "deeper", "d.txt"),
	}, rec.visited)
	assert.Empty(t, rec.reported)
}

func TestResolveIncludesHiddenWhenConfigured(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{".hidden.txt": "x", ".dir/y.txt": "y"})

	rec := resolve(t, walker.New(walker.Options{FilePattern: ".txt", SkipHidden: false}), root)
	assert.Len(t, rec.visited, 2)
}

func TestResolveFileIgnoresPattern(t *testing.T) {
	path := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "essay.md"), "text")

	rec := resolve(t, newWalker(), path)
	assert.Equal(t, []string{path}, rec.visited)
}

func TestResolveMissingPathReportsOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	rec := resolve(t, newWalker(), path)
	require.Len(t, rec.reported, 1)
	assert.ErrorIs(t, rec.reported[0], failures.ErrFileOpen)
	assert.Equal(t, "Error: Failed to open "+path, failures.Message(rec.reported[0]))
	assert.Empty(t, rec.visited)
}

func TestResolveReportsBrokenEntryAndContinues(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"good.txt": "ok"})
	dangling := filepath.Join(root, "broken.txt")
	if err := os.Symlink(filepath.Join(root, "nowhere"), dangling); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	rec := resolve(t, newWalker(), root)
	assert.Equal(t, []string{filepath.Join(root, "good.txt")}, rec.visited)
	require.Len(t, rec.reported, 1)
	assert.ErrorIs(t, rec.reported[0], failures.ErrStat)
	assert.Equal(t, "Error: Failed to stat "+dangling, failures.Message(rec.reported[0]))
}

func TestResolveSkipsSymlinkCycles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"sub/a.txt": "a"})
	if err := os.Symlink(root, filepath.Join(root, "sub", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	rec := resolve(t, newWalker(), root)
	assert.Equal(t, []string{filepath.Join(root, "sub", "a.txt")}, rec.visited)
}

func TestResolveReportsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are not enforced for root")
	}
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"locked/x.txt": "x", "open.txt": "y"})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	rec := resolve(t, newWalker(), root)
	require.Len(t, rec.reported, 1)
	assert.ErrorIs(t, rec.reported[0], failures.ErrDirectoryOpen)
	assert.Equal(t, "Error: Failed to open directory "+locked, failures.Message(rec.reported[0]))
	assert.Equal(t, []string{filepath.Join(root, "open.txt")}, rec.visited)
}

func TestVisitorErrorsAreReportedUnlessFatal(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"a.txt": "a", "b.txt": "b"})

	var reported []error
	calls := 0
	err := newWalker().Resolve(context.Background(), root, func(_ context.Context, path string) error {
		calls++
		return failures.Wrap(failures.ErrFileOpen, path, os.ErrPermission)
	}, func(err error) { reported = append(reported, err) })
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, reported, 2)

	err = newWalker().Resolve(context.Background(), root, func(context.Context, string) error {
		return failures.Wrap(failures.ErrDictionaryLoad, "words", os.ErrNotExist)
	}, func(error) {})
	assert.ErrorIs(t, err, failures.ErrDictionaryLoad)

	ctx, cancel := context.WithCancel(context.Background())
	err = newWalker().Resolve(ctx, root, func(context.Context, string) error {
		cancel()
		return context.Canceled
	}, func(error) {})
	assert.ErrorIs(t, err, context.Canceled)
}
