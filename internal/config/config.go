// Package config provides configuration loading using koanf.
// Precedence: TIME64_* environment variables, then compiled defaults.
// Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "TIME64_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all time64 configuration.
type Config struct {
	// Zone is the local time zone: an IANA name, "Local", "UTC", or a
	// fixed offset such as "+05:30".
	Zone string `koanf:"zone"`

	// FoldPast folds years before 1902 onto anchor years when the 32-bit
	// host cannot represent them. False reproduces the bare 32-bit host.
	FoldPast bool `koanf:"fold_past"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// DBPath is the conversion journal used by batch and history.
	DBPath string `koanf:"db_path"`

	// Workers is the batch worker pool size.
	Workers int `koanf:"workers"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Zone:      "Local",
		FoldPast:  true,
		LogLevel:  "warn",
		LogFormat: "text",
		DBPath:    "time64.db",
		Workers:   4,
	}
}

// Default returns the compiled defaults without reading the environment.
func Default() *Config {
	return defaults()
}

// Load loads configuration from the environment over the defaults.
//
// TIME64_FOLD_PAST=false sets fold_past, TIME64_DB_PATH sets db_path, and
// so on: the prefix is dropped and the rest lower-cased.
func Load() (*Config, error) {
	k := koanf.New(".")
	cfg := defaults()

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log_format %q (want json or text)", ErrInvalid, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if _, err := ParseZone(c.Zone); err != nil {
		return fmt.Errorf("%w: zone: %v", ErrInvalid, err)
	}
	return nil
}
