// Package logging assembles the slog loggers used by spchk for diagnostics.
//
// Diagnostics always go to stderr (or a file) and never to stdout, which is
// reserved for the misspelling report. A console handler renders compact
// human-readable lines and a JSON handler emits one object per record. Every
// record written during a run carries the run_id attribute.
package logging
