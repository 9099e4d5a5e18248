package config

const (
	defaultChunkSize      = 8192
	defaultMaxWordLength  = 100
	defaultOverlongPolicy = "truncate"
	defaultFilePattern    = ".txt"
	defaultOutputFormat   = "text"
	defaultColorMode      = "auto"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"

	maxChunkSize     = 16 << 20
	maxWordLengthCap = 1 << 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			ChunkSize:      defaultChunkSize,
			MaxWordLength:  defaultMaxWordLength,
			OverlongPolicy: defaultOverlongPolicy,
			FilePattern:    defaultFilePattern,
			SkipHidden:     true,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
