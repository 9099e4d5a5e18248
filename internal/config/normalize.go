package config

import (
	"slices"
	"strings"
)

// Normalize trims and lowercases enumerated values and fills zero values with
// defaults. It is safe to call more than once.
func (c *Config) Normalize() {
	c.normalizeScan()
	c.normalizeOutput()
	c.normalizeLogging()
}

func (c *Config) normalizeScan() {
	if c.Scan.ChunkSize == 0 {
		c.Scan.ChunkSize = defaultChunkSize
	}
	if c.Scan.MaxWordLength == 0 {
		c.Scan.MaxWordLength = defaultMaxWordLength
	}
	c.Scan.OverlongPolicy = strings.ToLower(strings.TrimSpace(c.Scan.OverlongPolicy))
	if c.Scan.OverlongPolicy == "" {
		c.Scan.OverlongPolicy = defaultOverlongPolicy
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	paths := c.Logging.OutputPaths[:0]
	for _, p := range c.Logging.OutputPaths {
		if p = strings.TrimSpace(p); p != "" && !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	c.Logging.OutputPaths = paths
}
