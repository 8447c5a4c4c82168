// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is not given.
const EnvironmentVariable = "ROBOFLEET_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for a workstation with a simulated robot.
	Development Environment = "development"
	// Staging is for a bench robot.
	Staging Environment = "staging"
	// Production is for a deployed robot.
	Production Environment = "production"
)

// Log formats.
const (
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the robofleet configuration.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// SearchPathVariable names the environment variable holding the
	// colon-separated install prefixes.
	// Default: AMENT_PREFIX_PATH
	SearchPathVariable string `yaml:"search_path_variable"`

	// Policy is the ordered list of enabled node IDs. Empty means the
	// robot's built-in policy.
	Policy []string `yaml:"policy,omitempty"`

	// PolicyFile is a JSONC policy file. When set it replaces Policy.
	PolicyFile string `yaml:"policy_file,omitempty"`

	// Log configures command logging.
	Log LogConfig `yaml:"log"`

	// Output configures rendered artifacts.
	Output OutputConfig `yaml:"output"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Policy     []string      `yaml:"policy,omitempty"`
	PolicyFile string        `yaml:"policy_file,omitempty"`
	Log        *LogConfig    `yaml:"log,omitempty"`
	Output     *OutputConfig `yaml:"output,omitempty"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is auto, text or json.
	// Default: auto (development), json (production)
	Format string `yaml:"format"`
}

// OutputConfig configures where rendered files go.
type OutputConfig struct {
	// ParamsDir is where "robofleet plan" writes params files when no
	// --params-dir flag is given. Empty means params files are not
	// written.
	ParamsDir string `yaml:"params_dir"`
}

// Default returns the default configuration. It is used as the base
// before loading a config file, and on its own when there is none.
func Default() *Config {
	return &Config{
		Environment:        Development,
		SearchPathVariable: "AMENT_PREFIX_PATH",
		Log: LogConfig{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load loads configuration from the file named by ROBOFLEET_CONFIG. It
// fails when the variable is not set; callers that can run without a
// config check the variable first.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your robofleet.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, applies the
// section for the configured environment and expands path variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// A deployed robot ships logs to a collector.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Log: &LogConfig{Format: FormatJSON},
			}
		}
	}

	if overrides == nil {
		return
	}

	if len(overrides.Policy) > 0 {
		c.Policy = append([]string(nil), overrides.Policy...)
		c.PolicyFile = ""
	}
	if overrides.PolicyFile != "" {
		c.PolicyFile = overrides.PolicyFile
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}

	if overrides.Output != nil && overrides.Output.ParamsDir != "" {
		c.Output.ParamsDir = overrides.Output.ParamsDir
	}
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.PolicyFile = expandVars(c.PolicyFile, vars)
	c.Output.ParamsDir = expandVars(c.Output.ParamsDir, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors and reports all of them.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.SearchPathVariable == "" {
		errs = append(errs, fmt.Errorf("search_path_variable is required"))
	}

	for index, id := range c.Policy {
		if id == "" {
			errs = append(errs, fmt.Errorf("policy[%d] is empty", index))
		}
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	formats := []string{FormatAuto, FormatText, FormatJSON}
	if !contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	return errors.Join(errs...)
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
