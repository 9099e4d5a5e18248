package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"spchk/internal/failures"
	"spchk/internal/logging"
	"spchk/internal/tokenize"
)

// DefaultChunkSize is the read size used when Options.ChunkSize is unset.
const DefaultChunkSize = 8192

// Lookup answers dictionary membership queries.
type Lookup interface {
	Contains(word string) bool
}

// UnmatchedWord is a word that was not found in the dictionary.
type UnmatchedWord struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Word string `json:"word"`
}

// String renders the report line: "<file> (<line>,<col>): <word>".
func (u UnmatchedWord) String() string {
	return fmt.Sprintf("%s (%d,%d): %s", u.File, u.Line, u.Col, u.Word)
}

// Result summarizes one scanned file.
type Result struct {
	Path      string
	Bytes     int64
	Lines     int
	Words     int
	Unmatched int
	Overlong  int
}

// Found reports whether any unmatched word was emitted for the file.
func (r Result) Found() bool {
	return r.Unmatched > 0
}

// Options configures a Checker.
type Options struct {
	ChunkSize     int
	MaxWordLength int
	Policy        tokenize.OverlongPolicy
	Logger        *slog.Logger
}

// Checker matches file contents against a dictionary. It holds no per-file
// state and can be reused for any number of files.
type Checker struct {
	dict      Lookup
	chunkSize int
	maxLen    int
	policy    tokenize.OverlongPolicy
	logger    *slog.Logger
}

// New returns a Checker backed by dict.
func New(dict Lookup, opts Options) *Checker {
	chunkSize := opts.ChunkSize
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	maxLen := opts.MaxWordLength
	if maxLen < 1 {
		maxLen = tokenize.DefaultMaxWordLength
	}
	return &Checker{
		dict:      dict,
		chunkSize: chunkSize,
		maxLen:    maxLen,
		policy:    opts.Policy,
		logger:    logging.NewComponentLogger(opts.Logger, "checker"),
	}
}

// ScanFile checks the file at path. An open or read failure is tagged with
// failures.ErrFileOpen; words emitted before a read failure stay emitted.
func (c *Checker) ScanFile(ctx context.Context, path string, emit func(UnmatchedWord)) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{Path: path}, failures.Wrap(failures.ErrFileOpen, path, err)
	}
	defer file.Close()

	result, err := c.CheckReader(ctx, path, file, emit)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return result, failures.Wrap(failures.ErrFileOpen, path, err)
	}
	c.logger.Debug("file scanned",
		logging.Path(path),
		slog.Int64("bytes", result.Bytes),
		slog.Int("lines", result.Lines),
		slog.Int("words", result.Words),
		slog.Int("unmatched", result.Unmatched),
	)
	return result, err
}

// CheckReader checks everything read from r, reporting words under the name file.
func (c *Checker) CheckReader(ctx context.Context, file string, r io.Reader, emit func(UnmatchedWord)) (Result, error) {
	result := Result{Path: file}
	counting := func(u UnmatchedWord) {
		result.Unmatched++
		if emit != nil {
			emit(u)
		}
	}

	tz := tokenize.New(c.maxLen)
	buf := make([]byte, c.chunkSize)
	var tokens []tokenize.Token

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		n, err := r.Read(buf)
		if n > 0 {
			result.Bytes += int64(n)
			tokens = tz.Feed(tokens[:0], buf[:n])
			result.Words += len(tokens)
			result.Overlong += countOverlong(tokens)
			c.CheckSpelling(file, tokens, counting)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read %s: %w", file, err)
		}
	}

	tokens = tz.Flush(tokens[:0])
	result.Lines = tz.Position().Line
	result.Words += len(tokens)
	result.Overlong += countOverlong(tokens)
	c.CheckSpelling(file, tokens, counting)
	return result, nil
}

// CheckSpelling looks up each token and emits the misses. It reports whether
// at least one word was emitted.
func (c *Checker) CheckSpelling(file string, tokens []tokenize.Token, emit func(UnmatchedWord)) bool {
	found := false
	for _, tok := range tokens {
		if tok.Truncated() {
			switch c.policy {
			case tokenize.PolicySkip:
				c.logger.Debug("overlong word skipped", logging.Path(file),
					slog.Int("line", tok.Line), slog.Int("col", tok.Col), slog.Int("length", tok.Length))
				continue
			case tokenize.PolicyError:
				logging.Warn(c.logger, "overlong word reported", "word_too_long", logging.Path(file),
					slog.Int("line", tok.Line), slog.Int("col", tok.Col), slog.Int("length", tok.Length))
				found = true
				if emit != nil {
					emit(unmatched(file, tok))
				}
				continue
			}
		}
		if c.dict.Contains(tok.Value) {
			continue
		}
		found = true
		if emit != nil {
			emit(unmatched(file, tok))
		}
	}
	return found
}

func unmatched(file string, tok tokenize.Token) UnmatchedWord {
	return UnmatchedWord{File: file, Line: tok.Line, Col: tok.Col, Word: tok.Value}
}

func countOverlong(tokens []tokenize.Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.Truncated() {
			n++
		}
	}
	return n
}
