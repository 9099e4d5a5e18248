// Package config loads, normalizes, and validates spchk configuration.
//
// Configuration is optional. Load looks for an explicit path first, then
// ~/.config/spchk/config.toml, then ./spchk.toml in the working directory; when
// none exists the defaults are used, and they reproduce the classic behaviour:
// 100-byte words, .txt files only, hidden entries skipped, plain text output,
// and exit status 0 even when misspellings are found.
//
// Command-line flags are applied on top of the loaded values by the CLI, after
// which Validate runs again.
package config
