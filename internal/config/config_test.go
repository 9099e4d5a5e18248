package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"spchk/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "spchk", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	def := config.Default()
	if cfg.Scan != def.Scan {
		t.Fatalf("unexpected scan defaults: %+v", cfg.Scan)
	}
	if cfg.Scan.MaxWordLength != 100 {
		t.Fatalf("expected max word length 100, got %d", cfg.Scan.MaxWordLength)
	}
	if cfg.Scan.FilePattern != ".txt" {
		t.Fatalf("expected .txt file pattern, got %q", cfg.Scan.FilePattern)
	}
	if !cfg.Scan.SkipHidden {
		t.Fatal("expected hidden entries to be skipped by default")
	}
	if cfg.Output.FailOnMisspelling {
		t.Fatal("expected exit status to ignore misspellings by default")
	}
	if cfg.Output.Format != "text" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
}

func TestLoadProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	content := "[scan]\nfile_pattern = \".md\"\n"
	if err := os.WriteFile(filepath.Join(dir, "spchk.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Scan.FilePattern != ".md" {
		t.Fatalf("expected .md pattern, got %q", cfg.Scan.FilePattern)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "custom.toml")

	type payload struct {
		Scan struct {
			ChunkSize      int    `toml:"chunk_size"`
			OverlongPolicy string `toml:"overlong_policy"`
			SkipHidden     bool   `toml:"skip_hidden"`
		} `toml:"scan"`
		Output struct {
			Format            string `toml:"format"`
			FailOnMisspelling bool   `toml:"fail_on_misspelling"`
		} `toml:"output"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Scan.ChunkSize = 16
	custom.Scan.OverlongPolicy = "  SKIP "
	custom.Scan.SkipHidden = false
	custom.Output.Format = "JSON"
	custom.Output.FailOnMisspelling = true
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Scan.ChunkSize != 16 {
		t.Fatalf("expected chunk size 16, got %d", cfg.Scan.ChunkSize)
	}
	if cfg.Scan.OverlongPolicy != "skip" {
		t.Fatalf("expected normalized policy skip, got %q", cfg.Scan.OverlongPolicy)
	}
	if cfg.Scan.SkipHidden {
		t.Fatal("expected skip_hidden override to be false")
	}
	if cfg.Scan.MaxWordLength != 100 {
		t.Fatalf("expected untouched max word length to keep default, got %d", cfg.Scan.MaxWordLength)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Output.Format)
	}
	if !cfg.Output.FailOnMisspelling {
		t.Fatal("expected fail_on_misspelling to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "spchk.toml")
	if err := os.WriteFile(configPath, []byte("[scan]\nchunk = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"chunk size", func(c *config.Config) { c.Scan.ChunkSize = -1 }, "scan.chunk_size"},
		{"word length", func(c *config.Config) { c.Scan.MaxWordLength = -5 }, "scan.max_word_length"},
		{"policy", func(c *config.Config) { c.Scan.OverlongPolicy = "explode" }, "scan.overlong_policy"},
		{"format", func(c *config.Config) { c.Output.Format = "xml" }, "output.format"},
		{"color", func(c *config.Config) { c.Output.Color = "sometimes" }, "output.color"},
		{"log format", func(c *config.Config) { c.Logging.Format = "logfmt" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"log stdout", func(c *config.Config) { c.Logging.OutputPaths = []string{"stderr", " stdout "} }, "logging.output_paths"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			cfg.Normalize()
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to mention %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizeLogOutputPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.OutputPaths = []string{" /tmp/spchk.log", "", "stderr", "/tmp/spchk.log"}
	cfg.Normalize()
	want := []string{"/tmp/spchk.log", "stderr"}
	if !slices.Equal(cfg.Logging.OutputPaths, want) {
		t.Fatalf("unexpected output paths: got %q want %q", cfg.Logging.OutputPaths, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/words")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(home, "words"); got != want {
		t.Fatalf("unexpected expansion: got %q want %q", got, want)
	}
}
