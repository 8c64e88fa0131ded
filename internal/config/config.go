// Package config provides the almanac CLI configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. ALMANAC_LOG_LEVEL.
const EnvPrefix = "ALMANAC"

// LogFormat is the log output format.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// OutputFormat is the format results are printed in.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Defaults. Struct tag defaults below must match.
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = LogFormatConsole
	DefaultOutput    = OutputText
	DefaultWorkers   = 4
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level: DEBUG, INFO, WARN, ERROR.
	// Env: ALMANAC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (console or json).
	// Env: ALMANAC_LOG_FORMAT (default: console)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"console"`

	// Output is the result format (text, json or yaml).
	// Env: ALMANAC_OUTPUT (default: text)
	Output OutputFormat `envconfig:"OUTPUT" default:"text"`

	// Workers bounds how many inputs the batch command solves at once.
	// Env: ALMANAC_WORKERS (default: 4)
	Workers int `envconfig:"WORKERS" default:"4"`

	// Coalesce merges ranges between stages.
	// Env: ALMANAC_COALESCE (default: true)
	Coalesce bool `envconfig:"COALESCE" default:"true"`
}

// LoadFromEnv reads the configuration from ALMANAC_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadConfig loads the .env file (if any), then the environment, and
// validates the result.
func LoadConfig(envPath string) (EnvConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return EnvConfig{}, fmt.Errorf("load dotenv: %w", err)
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		return EnvConfig{}, err
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize lower-cases format names and upper-cases the level.
func (c EnvConfig) Normalize() EnvConfig {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	c.LogFormat = LogFormat(strings.ToLower(strings.TrimSpace(string(c.LogFormat))))
	c.Output = OutputFormat(strings.ToLower(strings.TrimSpace(string(c.Output))))
	return c
}

// Validate checks that every field holds a supported value.
func (c EnvConfig) Validate() error {
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ValidateOutput checks that f is a supported output format.
func ValidateOutput(f OutputFormat) error {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q", f)
}
