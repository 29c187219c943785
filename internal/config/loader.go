// Package config provides configuration loading and management for sparsemat.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".sparsemat.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "SPARSEMAT"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults; keys absent from the file keep them.
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(path, cfg)
}

// LoadOrDefault behaves like LoadConfig when the file exists and otherwise
// returns defaults with environment overrides applied.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return l.finish(path, NewConfig())
	}

	return l.LoadConfig(path)
}

// finish applies env overrides and defaults, then validates.
func (l *Loader) finish(path string, cfg *Config) (*Config, error) {
	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid environment override",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "_INPUT_BASE_DIR"); v != "" {
		cfg.Input.BaseDir = v
	}
	if v := os.Getenv(EnvPrefix + "_INPUT_HEADER_OFFSET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_INPUT_HEADER_OFFSET: %w", EnvPrefix, err)
		}
		cfg.Input.HeaderOffset = n
	}

	if v := os.Getenv(EnvPrefix + "_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_OUTPUT_PREFIX"); v != "" {
		cfg.Output.Prefix = v
	}
	if v := os.Getenv(EnvPrefix + "_OUTPUT_FORMAT"); v != "" {
		f, err := ParseOutputFormat(v)
		if err != nil {
			return fmt.Errorf("%s_OUTPUT_FORMAT: %w", EnvPrefix, err)
		}
		cfg.Output.Format = f
	}

	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = LogLevel(strings.ToLower(v))
	}

	return nil
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc normalizes and validates our custom string types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(OutputFormat("")):
			return ParseOutputFormat(data.(string))
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}
