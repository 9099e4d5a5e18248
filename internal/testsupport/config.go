package testsupport

import (
	"testing"

	"spchk/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a normalized default config with the options applied.
// Validation failures abort the test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return &cfg
}

// WithChunkSize sets the read chunk size.
func WithChunkSize(size int) ConfigOption {
	return func(c *config.Config) {
		c.Scan.ChunkSize = size
	}
}

// WithMaxWordLength sets the word length cap.
func WithMaxWordLength(n int) ConfigOption {
	return func(c *config.Config) {
		c.Scan.MaxWordLength = n
	}
}

// WithOverlongPolicy sets the overlong word policy by name.
func WithOverlongPolicy(policy string) ConfigOption {
	return func(c *config.Config) {
		c.Scan.OverlongPolicy = policy
	}
}
