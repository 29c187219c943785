// Package config provides configuration data structures for sparsemat.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config represents the complete sparsemat configuration loaded from .sparsemat.yaml.
type Config struct {
	Input  InputConfig  `yaml:"input"  json:"input"  mapstructure:"input"`
	Output OutputConfig `yaml:"output" json:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log"    json:"log"    mapstructure:"log"`
}

// InputConfig configures how operand files are located and parsed.
type InputConfig struct {
	// BaseDir is the directory relative operand names resolve against (default: ".").
	BaseDir string `yaml:"base_dir" json:"base_dir" mapstructure:"base_dir"`
	// HeaderOffset is added to the rows=/cols= header values on load (default: 1).
	HeaderOffset int `yaml:"header_offset" json:"header_offset" mapstructure:"header_offset"`
}

// OutputFormat selects how matrices are printed to the terminal.
type OutputFormat string

const (
	// OutputFormatTriplets prints the on-disk "(row, col, value)" form.
	OutputFormatTriplets OutputFormat = "triplets"
	// OutputFormatTable prints a dense table.
	OutputFormatTable OutputFormat = "table"
)

// ParseOutputFormat validates s as an OutputFormat (case-insensitive).
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTriplets, OutputFormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q (want %s or %s)", s, OutputFormatTriplets, OutputFormatTable)
	}
}

// OutputConfig configures where results go and how they are shown.
type OutputConfig struct {
	// Dir is the directory result files are written to (default: ".").
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// Prefix starts every generated result file name (default: "result").
	Prefix string `yaml:"prefix" json:"prefix" mapstructure:"prefix"`
	// Format is the terminal rendering for show/--print (default: table).
	Format OutputFormat `yaml:"format" json:"format" mapstructure:"format"`
}

// LogLevel is a zap level name.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ZapLevel converts the level name for zap.
func (l LogLevel) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(string(l))
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level (default: info).
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
}

const (
	defaultBaseDir      = "."
	defaultHeaderOffset = 1
	defaultOutputDir    = "."
	defaultPrefix       = "result"
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Input: InputConfig{
			BaseDir:      defaultBaseDir,
			HeaderOffset: defaultHeaderOffset,
		},
		Output: OutputConfig{
			Dir:    defaultOutputDir,
			Prefix: defaultPrefix,
			Format: OutputFormatTable,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// ApplyDefaults fills in empty string fields. HeaderOffset is left alone
// because 0 is a meaningful value.
func (c *Config) ApplyDefaults() {
	if c.Input.BaseDir == "" {
		c.Input.BaseDir = defaultBaseDir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = defaultOutputDir
	}
	if c.Output.Prefix == "" {
		c.Output.Prefix = defaultPrefix
	}
	if c.Output.Format == "" {
		c.Output.Format = OutputFormatTable
	}
	if c.Log.Level == "" {
		c.Log.Level = LogLevelInfo
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Input.HeaderOffset < 0 {
		return fmt.Errorf("input.header_offset must be >= 0, got %d", c.Input.HeaderOffset)
	}
	if _, err := ParseOutputFormat(string(c.Output.Format)); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if strings.ContainsAny(c.Output.Prefix, `/\`) {
		return fmt.Errorf("output.prefix must not contain path separators, got %q", c.Output.Prefix)
	}
	if _, err := c.Log.Level.ZapLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
