package config

import (
	"fmt"
	"slices"
)

var (
	overlongPolicies = []string{"truncate", "skip", "error"}
	outputFormats    = []string{"text", "json"}
	colorModes       = []string{"auto", "always", "never"}
	logFormats       = []string{"console", "json"}
	logLevels        = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.ChunkSize < 1 || c.Scan.ChunkSize > maxChunkSize {
		return fmt.Errorf("scan.chunk_size must be between 1 and %d, got %d", maxChunkSize, c.Scan.ChunkSize)
	}
	if c.Scan.MaxWordLength < 1 || c.Scan.MaxWordLength > maxWordLengthCap {
		return fmt.Errorf("scan.max_word_length must be between 1 and %d, got %d", maxWordLengthCap, c.Scan.MaxWordLength)
	}
	return oneOf("scan.overlong_policy", c.Scan.OverlongPolicy, overlongPolicies)
}

func (c *Config) validateOutput() error {
	if err := oneOf("output.format", c.Output.Format, outputFormats); err != nil {
		return err
	}
	return oneOf("output.color", c.Output.Color, colorModes)
}

func (c *Config) validateLogging() error {
	if err := oneOf("logging.format", c.Logging.Format, logFormats); err != nil {
		return err
	}
	if slices.Contains(c.Logging.OutputPaths, "stdout") {
		return fmt.Errorf("logging.output_paths: stdout is reserved for the report")
	}
	return oneOf("logging.level", c.Logging.Level, logLevels)
}

func oneOf(field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s: unsupported value %q (want one of %v)", field, value, allowed)
}
