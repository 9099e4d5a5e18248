package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"spchk/internal/checker"
)

const (
	fileStatusClean     = "ok"
	fileStatusUnmatched = "unmatched"
	fileStatusFailed    = "unreadable"
)

type fileSummary struct {
	result checker.Result
	status string
}

// runSummary accumulates per-file results for the --summary table.
type runSummary struct {
	started time.Time
	files   []fileSummary
}

func newRunSummary(now time.Time) *runSummary {
	return &runSummary{started: now}
}

func (s *runSummary) add(result checker.Result) {
	status := fileStatusClean
	if result.Found() {
		status = fileStatusUnmatched
	}
	s.files = append(s.files, fileSummary{result: result, status: status})
}

// addFailed records a file that could not be read to the end. Words counted
// before the failure stay in the totals.
func (s *runSummary) addFailed(result checker.Result) {
	s.files = append(s.files, fileSummary{result: result, status: fileStatusFailed})
}

func (s *runSummary) unmatched() int {
	total := 0
	for _, f := range s.files {
		total += f.result.Unmatched
	}
	return total
}

func (s *runSummary) render(w io.Writer, elapsed time.Duration, colorize bool) error {
	headers := []string{"File", "Status", "Words", "Unmatched", "Overlong", "Size"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}

	var words, overlong int
	var bytes int64
	rows := make([][]string, 0, len(s.files))
	for _, f := range s.files {
		words += f.result.Words
		overlong += f.result.Overlong
		bytes += f.result.Bytes
		rows = append(rows, []string{
			f.result.Path,
			statusText(f.status, colorize),
			strconv.Itoa(f.result.Words),
			strconv.Itoa(f.result.Unmatched),
			strconv.Itoa(f.result.Overlong),
			humanize.Bytes(uint64(f.result.Bytes)),
		})
	}
	footer := []string{
		"Total",
		"",
		strconv.Itoa(words),
		strconv.Itoa(s.unmatched()),
		strconv.Itoa(overlong),
		humanize.Bytes(uint64(bytes)),
	}

	if _, err := fmt.Fprintln(w, renderTable(headers, rows, aligns, footer)); err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "%d files checked, %d words, %d unmatched in %s\n",
		len(s.files), words, s.unmatched(), elapsed.Round(time.Millisecond))
	return err
}

func statusText(status string, colorize bool) string {
	if !colorize {
		return status
	}
	switch status {
	case fileStatusUnmatched:
		return ansiYellow + status + ansiReset
	case fileStatusFailed:
		return ansiRed + status + ansiReset
	default:
		return status
	}
}
