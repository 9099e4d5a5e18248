package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"spchk/internal/checker"
	"spchk/internal/dictionary"
	"spchk/internal/failures"
	"spchk/internal/logging"
	"spchk/internal/tokenize"
	"spchk/internal/walker"
)

// errMisspellingsFound signals exit status 2 under --fail-on-misspelling.
var errMisspellingsFound = errors.New("unmatched words found")

type scanFunc func(ctx context.Context, path string, emit func(checker.UnmatchedWord)) (checker.Result, error)

// runState carries one run's output streams and counters between the walker
// callbacks.
type runState struct {
	scan    scanFunc
	out     reporter
	summary *runSummary
	stderr  io.Writer
	logger  *slog.Logger
}

// visit scans one file. Read failures keep whatever the file produced before
// the failure, so the counts match what was already printed.
func (s *runState) visit(ctx context.Context, path string) error {
	result, err := s.scan(ctx, path, s.out.Report)
	switch {
	case err == nil:
		s.summary.add(result)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		s.summary.addFailed(result)
		s.print(err)
		return nil
	}
}

// report handles failures raised by the walker itself.
func (s *runState) report(err error) {
	var fe *failures.Error
	if errors.As(err, &fe) && errors.Is(err, failures.ErrFileOpen) {
		s.summary.addFailed(checker.Result{Path: fe.Path})
	}
	s.print(err)
}

func (s *runState) print(err error) {
	s.logger.Debug("path skipped", logging.Error(err))
	fmt.Fprintln(s.stderr, failures.Message(err))
}

func (c *commandContext) run(cmd *cobra.Command, dictPath string, paths []string) error {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return failures.Wrap(failures.ErrConfig, "", err)
	}
	logger.Debug("configuration resolved",
		slog.String("config_path", c.configPath),
		slog.Bool("config_found", c.configExists),
	)
	policy, err := tokenize.ParsePolicy(cfg.Scan.OverlongPolicy)
	if err != nil {
		return failures.Wrap(failures.ErrConfig, "", err)
	}

	started := time.Now()
	dict, err := dictionary.Load(dictPath, dictionary.Options{
		MaxWordLength: cfg.Scan.MaxWordLength,
		Policy:        policy,
		Logger:        logger,
	})
	if err != nil {
		logger.Debug("dictionary load failed", logging.Path(dictPath), logging.Error(err))
		return err
	}

	check := checker.New(dict, checker.Options{
		ChunkSize:     cfg.Scan.ChunkSize,
		MaxWordLength: cfg.Scan.MaxWordLength,
		Policy:        policy,
		Logger:        logger,
	})
	walk := walker.New(walker.Options{
		FilePattern: cfg.Scan.FilePattern,
		SkipHidden:  cfg.Scan.SkipHidden,
		Logger:      logger,
	})

	state := &runState{
		scan:    check.ScanFile,
		out:     newReporter(cfg.Output.Format, stdout, colorEnabled(cfg.Output.Color, stdout)),
		summary: newRunSummary(started),
		stderr:  stderr,
		logger:  logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, path := range paths {
		if err := walk.Resolve(ctx, path, state.visit, state.report); err != nil {
			return err
		}
		if werr := state.out.Err(); werr != nil {
			return fmt.Errorf("write report: %w", werr)
		}
	}

	summary := state.summary
	logger.Info("run complete",
		slog.Int("files", len(summary.files)),
		slog.Int("unmatched", summary.unmatched()),
		slog.Duration("duration", time.Since(started)),
	)

	if cfg.Output.Summary {
		if err := summary.render(stderr, time.Since(started), colorEnabled(cfg.Output.Color, stderr)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if cfg.Output.FailOnMisspelling && summary.unmatched() > 0 {
		return errMisspellingsFound
	}
	return nil
}
