// Package dictionary holds the reference word list and answers
// case-insensitive membership queries against it.
package dictionary

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"spchk/internal/failures"
	"spchk/internal/logging"
	"spchk/internal/tokenize"
)

// Dictionary is an immutable word list sorted by Compare.
type Dictionary struct {
	words []string
}

// Options controls how a word list is read.
type Options struct {
	// MaxWordLength caps stored words in bytes. Values below 1 select
	// tokenize.DefaultMaxWordLength.
	MaxWordLength int
	Policy        tokenize.OverlongPolicy
	Logger        *slog.Logger
}

// New builds a dictionary from words. The slice is copied.
func New(words ...string) *Dictionary {
	sorted := slices.Clone(words)
	slices.SortFunc(sorted, Compare)
	return &Dictionary{words: sorted}
}

// Load reads the whitespace-separated word list at path. Any failure is
// tagged with failures.ErrDictionaryLoad.
func Load(path string, opts Options) (*Dictionary, error) {
	logger := logging.NewComponentLogger(opts.Logger, "dictionary")
	started := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, failures.Wrap(failures.ErrDictionaryLoad, path, err)
	}
	defer file.Close()

	opts.Logger = logger.With(logging.Path(path))
	dict, err := Read(file, opts)
	if err != nil {
		return nil, failures.Wrap(failures.ErrDictionaryLoad, path, err)
	}

	logger.Info("dictionary loaded",
		logging.Path(path),
		slog.Int("words", dict.Len()),
		slog.Duration("duration", time.Since(started)),
	)
	return dict, nil
}

// Read parses a word list from r. Words are separated by any run of ASCII
// whitespace and are stored as written.
func Read(r io.Reader, opts Options) (*Dictionary, error) {
	maxLen := opts.MaxWordLength
	if maxLen < 1 {
		maxLen = tokenize.DefaultMaxWordLength
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	br := bufio.NewReader(r)
	var (
		words  []string
		word   = make([]byte, 0, min(maxLen, 64))
		length int
		line   = 1
	)

	finish := func() error {
		if length == 0 {
			return nil
		}
		defer func() {
			word = word[:0]
			length = 0
		}()
		if length <= maxLen {
			words = append(words, string(word))
			return nil
		}
		switch opts.Policy {
		case tokenize.PolicyError:
			return fmt.Errorf("line %d: word of %d bytes exceeds the %d byte limit: %w", line, length, maxLen, failures.ErrWordTooLong)
		case tokenize.PolicySkip:
			logging.Warn(logger, "overlong dictionary word skipped", "dictionary_word_skipped",
				slog.Int("line", line), slog.Int("length", length), slog.Int("max_length", maxLen))
		default:
			logging.Warn(logger, "overlong dictionary word truncated", "dictionary_word_truncated",
				slog.Int("line", line), slog.Int("length", length), slog.Int("max_length", maxLen),
				slog.String("stored", string(word)))
			words = append(words, string(word))
		}
		return nil
	}

	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read dictionary: %w", err)
		}
		if isSpace(c) {
			if err := finish(); err != nil {
				return nil, err
			}
			if c == '\n' {
				line++
			}
			continue
		}
		length++
		if len(word) < maxLen {
			word = append(word, c)
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}

	slices.SortFunc(words, Compare)
	return &Dictionary{words: words}, nil
}

// Contains reports whether word is in the dictionary, ignoring ASCII case.
func (d *Dictionary) Contains(word string) bool {
	if d == nil || word == "" {
		return false
	}
	_, found := slices.BinarySearchFunc(d.words, word, Compare)
	return found
}

// Len returns the number of stored words, duplicates included.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Compare orders strings byte by byte after folding ASCII upper case to lower
// case. Sorting and lookup both use it, so case variants always compare equal.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
	}
	return cmp.Compare(len(a), len(b))
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isSpace matches the C locale's isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
