// Package config provides YAML configuration file loading and validation.
// It handles environment variable expansion, default value application,
// and rejects values the rest of the tool cannot act on.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Wildcard string `yaml:"wildcard"` // Sentinel value that skips shape validation (e.g., "*")
	Output   Output `yaml:"output"`   // How built requests are printed
	Log      Log    `yaml:"log"`      // Diagnostic logging on stderr
}

// Output controls how built requests are rendered.
type Output struct {
	Format    string `yaml:"format"`     // "terminal" or "json"
	RequestID int    `yaml:"request_id"` // id field of the JSON-RPC envelope
}

// Log controls the stderr logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Wildcard: "*",
		Output: Output{
			Format:    FormatJSON,
			RequestID: 1,
		},
		Log: Log{
			Level:  "info",
			Format: LogConsole,
		},
	}
}

// Validate checks every field and normalizes case on the enumerated ones.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Wildcard) == "" {
		return fmt.Errorf("wildcard must not be empty")
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Format != FormatTerminal && c.Output.Format != FormatJSON {
		return fmt.Errorf("output.format %q is invalid (expected terminal or json)", c.Output.Format)
	}
	if c.Output.RequestID < 0 {
		return fmt.Errorf("output.request_id must be >= 0")
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is invalid (expected debug, info, warn or error)", c.Log.Level)
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format != LogConsole && c.Log.Format != LogJSON {
		return fmt.Errorf("log.format %q is invalid (expected console or json)", c.Log.Format)
	}

	return nil
}

// Load reads a YAML configuration file on top of Default(), expanding
// ${VAR} references from the environment, and validates the result.
// An empty path returns the defaults.
//
// Example file:
//
//	wildcard: "${ETHREQ_WILDCARD}"
//	output:
//	  format: terminal
//	  request_id: 1
//	log:
//	  level: debug
//	  format: console
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
