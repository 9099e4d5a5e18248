package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"spchk/internal/config"
	"spchk/internal/failures"
)

type commandFlags struct {
	configPath        string
	format            string
	summary           bool
	color             string
	failOnMisspelling bool
	maxWordLength     int
	overlongPolicy    string
	chunkSize         int
	filePattern       string
	logLevel          string
	logFormat         string
	logFiles          []string
}

type commandContext struct {
	flags *commandFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *commandFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and layers changed flags on top.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = failures.Wrap(failures.ErrConfig, "", err)
			return
		}
		c.configPath, c.configExists = resolved, exists
		c.applyFlags(cmd, cfg)
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			c.configErr = failures.Wrap(failures.ErrConfig, "", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = c.flags.format
	}
	if changed("summary") {
		cfg.Output.Summary = c.flags.summary
	}
	if changed("color") {
		cfg.Output.Color = c.flags.color
	}
	if changed("fail-on-misspelling") {
		cfg.Output.FailOnMisspelling = c.flags.failOnMisspelling
	}
	if changed("max-word-length") {
		cfg.Scan.MaxWordLength = c.flags.maxWordLength
	}
	if changed("overlong-policy") {
		cfg.Scan.OverlongPolicy = c.flags.overlongPolicy
	}
	if changed("chunk-size") {
		cfg.Scan.ChunkSize = c.flags.chunkSize
	}
	if changed("file-pattern") {
		cfg.Scan.FilePattern = c.flags.filePattern
	}
	if changed("log-level") {
		cfg.Logging.Level = c.flags.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = c.flags.logFormat
	}
	if changed("log-file") {
		cfg.Logging.OutputPaths = c.flags.logFiles
	}
}
