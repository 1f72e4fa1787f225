package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
}

// Config is the main configuration struct for fhir-skills.
type Config struct {
	// DefaultTarget is the project directory skills are installed into when
	// no --path is given. Empty means the current working directory.
	DefaultTarget string `toml:"default_target"`

	Logging LoggingConfig `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DefaultTarget: "",
		Logging: LoggingConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
	}
}

// Load loads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, ferrors.ConfigInvalid(path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, ferrors.ConfigInvalid(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, ferrors.ConfigInvalid(path, err)
	}

	return cfg, nil
}

// DefaultPath returns the standard per-user config file location,
// <user config dir>/fhir-skills/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fhir-skills", "config.toml"), nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	return nil
}

// Target returns the effective install base directory: the configured
// default target if set, otherwise the current working directory.
func (c *Config) Target() (string, error) {
	if c.DefaultTarget != "" {
		return c.DefaultTarget, nil
	}
	return os.Getwd()
}
