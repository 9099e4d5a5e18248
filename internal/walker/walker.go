// Package walker resolves command-line paths into the files to check.
package walker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spchk/internal/failures"
	"spchk/internal/logging"
)

// DefaultFilePattern selects the files checked inside directories.
const DefaultFilePattern = ".txt"

// Visitor is called once for every file to check. Returning an error that
// failures.IsFatal accepts, or a context error, stops the walk; any other error
// is passed to the report function and the walk continues.
type Visitor func(ctx context.Context, path string) error

// Options configures a Walker.
type Options struct {
	// FilePattern must occur somewhere in a file's name for the file to be
	// visited during directory traversal.
	FilePattern string
	SkipHidden  bool
	Logger      *slog.Logger
}

// Walker applies the traversal rules. It is stateless between calls.
type Walker struct {
	pattern    string
	skipHidden bool
	logger     *slog.Logger
}

// New returns a Walker for opts.
func New(opts Options) *Walker {
	return &Walker{
		pattern:    opts.FilePattern,
		skipHidden: opts.SkipHidden,
		logger:     logging.NewComponentLogger(opts.Logger, "walker"),
	}
}

// Resolve processes one command-line argument. Directories are walked in
// lexical order, visiting matching regular files; anything else is visited
// directly regardless of its name. A path that
// cannot be stat'ed is reported as an open failure.
func (w *Walker) Resolve(ctx context.Context, path string, visit Visitor, report func(error)) error {
	info, err := os.Stat(path)
	if err != nil {
		report(failures.Wrap(failures.ErrFileOpen, path, err))
		return nil
	}
	if info.IsDir() {
		return w.walk(ctx, path, []os.FileInfo{info}, visit, report)
	}
	return w.call(ctx, path, visit, report)
}

// Match reports whether a file named name is checked during traversal.
func (w *Walker) Match(name string) bool {
	return strings.Contains(name, w.pattern)
}

func (w *Walker) walk(ctx context.Context, dir string, ancestors []os.FileInfo, visit Visitor, report func(error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		report(failures.Wrap(failures.ErrDirectoryOpen, dir, err))
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if w.skipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		child := filepath.Join(dir, name)

		info, err := os.Stat(child)
		if err != nil {
			report(failures.Wrap(failures.ErrStat, child, err))
			continue
		}

		switch {
		case info.IsDir():
			if loopsBack(info, ancestors) {
				logging.Warn(w.logger, "directory cycle skipped", "directory_cycle", logging.Path(child))
				continue
			}
			if err := w.walk(ctx, child, append(ancestors, info), visit, report); err != nil {
				return err
			}
		case info.Mode().IsRegular() && w.Match(name):
			if err := w.call(ctx, child, visit, report); err != nil {
				return err
			}
		default:
			w.logger.Debug("entry ignored", logging.Path(child), slog.String("mode", info.Mode().String()))
		}
	}
	return nil
}

func (w *Walker) call(ctx context.Context, path string, visit Visitor, report func(error)) error {
	err := visit(ctx, path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), failures.IsFatal(err):
		return err
	default:
		report(err)
		return nil
	}
}

func loopsBack(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}
