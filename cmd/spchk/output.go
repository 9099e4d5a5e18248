package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"spchk/internal/checker"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

// reporter writes unmatched words to the report stream. The first write error
// is kept and later writes are dropped.
type reporter interface {
	Report(checker.UnmatchedWord)
	Err() error
}

func newReporter(format string, w io.Writer, colorize bool) reporter {
	if format == "json" {
		return &jsonReporter{enc: json.NewEncoder(w)}
	}
	return &textReporter{w: w, colorize: colorize}
}

type textReporter struct {
	w        io.Writer
	colorize bool
	err      error
}

func (r *textReporter) Report(u checker.UnmatchedWord) {
	if r.err != nil {
		return
	}
	line := u.String()
	if r.colorize {
		line = fmt.Sprintf("%s%s (%d,%d):%s %s%s%s", ansiDim, u.File, u.Line, u.Col, ansiReset, ansiRed, u.Word, ansiReset)
	}
	_, r.err = fmt.Fprintln(r.w, line)
}

func (r *textReporter) Err() error { return r.err }

// jsonReporter emits one JSON object per line.
type jsonReporter struct {
	enc *json.Encoder
	err error
}

func (r *jsonReporter) Report(u checker.UnmatchedWord) {
	if r.err != nil {
		return
	}
	r.err = r.enc.Encode(u)
}

func (r *jsonReporter) Err() error { return r.err }

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
