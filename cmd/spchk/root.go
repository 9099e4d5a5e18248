package main

import (
	"errors"

	"github.com/spf13/cobra"

	"spchk/internal/failures"
)

const usageLine = "Usage: spchk <dictionary> <file/dir> [file/dir ...]"

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "spchk <dictionary> <file/dir> [file/dir ...]",
		Short:         "Report words that are not in a dictionary",
		Long:          "spchk checks text files against a word list and prints every unknown word with its line and column.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return failures.Wrap(failures.ErrUsage, "", errors.New(usageLine))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, args[0], args[1:])
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	f.StringVar(&flags.format, "format", "", "Output format: text or json")
	f.BoolVar(&flags.summary, "summary", false, "Print a per-file summary table to stderr")
	f.StringVar(&flags.color, "color", "", "Colorize output: auto, always or never")
	f.BoolVar(&flags.failOnMisspelling, "fail-on-misspelling", false, "Exit with status 2 when unknown words are found")
	f.IntVar(&flags.maxWordLength, "max-word-length", 0, "Longest word in bytes stored without truncation")
	f.StringVar(&flags.overlongPolicy, "overlong-policy", "", "Overlong words: truncate, skip or error")
	f.IntVar(&flags.chunkSize, "chunk-size", 0, "Read size in bytes")
	f.StringVar(&flags.filePattern, "file-pattern", "", "Substring a file name must contain to be checked inside directories")
	f.StringVar(&flags.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "Diagnostic log format: console or json")
	f.StringArrayVar(&flags.logFiles, "log-file", nil, "Write diagnostic logs to this file instead of stderr (repeatable; \"stderr\" keeps stderr)")

	return rootCmd
}
