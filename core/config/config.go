// File: config.go
// Title: Shell Configuration Management
// Description: Implements loading, parsing, and validation of ion shell
//              configuration from TOML and YAML files with environment
//              variable overrides.

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ionerr "github.com/amw-zero/ion/core/error"
	"github.com/amw-zero/ion/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects format from file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "ION_"

// LogConfig holds logging-related settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// HistoryConfig holds command history settings
type HistoryConfig struct {
	File  string `toml:"file" yaml:"file"`
	Limit int    `toml:"limit" yaml:"limit"`
}

// Config holds the full ion shell configuration
type Config struct {
	Prompt             string        `toml:"prompt" yaml:"prompt"`
	ContinuationPrompt string        `toml:"continuation_prompt" yaml:"continuation_prompt"`
	NoColor            bool          `toml:"no_color" yaml:"no_color"`
	History            HistoryConfig `toml:"history" yaml:"history"`
	Log                LogConfig     `toml:"log" yaml:"log"`

	// Source records where the configuration was loaded from, empty for
	// built-in defaults.
	Source string `toml:"-" yaml:"-"`
}

// Default returns the built-in default configuration
func Default() *Config {
	return &Config{
		Prompt:             "# ",
		ContinuationPrompt: "    ",
		NoColor:            false,
		History: HistoryConfig{
			File:  defaultHistoryPath(),
			Limit: 1000,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ion_history"
	}
	return filepath.Join(home, ".ion_history")
}

// Load loads configuration from a file, auto-detecting the format
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file with an explicit format.
// Values not present in the file keep their defaults, and environment
// variables with the ION_ prefix override file values.
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, ionerr.New("config file path cannot be empty").
			WithCode(ionerr.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, ionerr.Wrap(err, "cannot read config file").
			WithCode(ionerr.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, ionerr.Wrap(err, "cannot parse TOML config").
				WithCode(ionerr.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", filePath)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, ionerr.Wrap(err, "cannot parse YAML config").
				WithCode(ionerr.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", filePath)
		}
	default:
		return nil, ionerr.Newf("unsupported config format: %s", format).
			WithCode(ionerr.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	cfg.Source = filePath
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyEnvOverrides applies ION_ prefixed environment variables
func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv(EnvPrefix + "PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CONTINUATION_PROMPT"); ok {
		c.ContinuationPrompt = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "NO_COLOR"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoColor = b
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_FILE"); ok {
		c.History.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.History.Limit = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = v
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.History.Limit < 0 {
		return ionerr.Newf("history limit must not be negative: %d", c.History.Limit).
			WithCode(ionerr.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true,
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return ionerr.Newf("invalid log level: %s", c.Log.Level).
			WithCode(ionerr.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	validFormats := map[string]bool{
		"text": true, "console": true, "json": true,
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		return ionerr.Newf("invalid log format: %s", c.Log.Format).
			WithCode(ionerr.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	return nil
}
