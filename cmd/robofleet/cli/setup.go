// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/robofleet/robofleet/lib/catalog"
	"github.com/robofleet/robofleet/lib/composer"
	"github.com/robofleet/robofleet/lib/config"
	"github.com/robofleet/robofleet/lib/policy"
	"github.com/robofleet/robofleet/lib/schema/fleet"
	"github.com/robofleet/robofleet/lib/searchpath"
)

// ConfigParams is embedded by commands that compose a fleet. It adds the
// flags that select configuration, policy and log level.
type ConfigParams struct {
	ConfigFile string `json:"config"    flag:"config"    desc:"robofleet.yaml path (default: $ROBOFLEET_CONFIG, else built-in defaults)"`
	PolicyFile string `json:"policy"    flag:"policy"    desc:"JSONC policy file, replacing the configured policy"`
	LogLevel   string `json:"log_level" flag:"log-level" desc:"log level override: debug, info, warn, error"`
}

// Policy sources reported by [Setup.PolicySource].
const (
	PolicySourceBuiltIn = "built-in"
	PolicySourceConfig  = "config"
)

// Setup is everything a command needs to compose: the effective
// configuration, the policy it selects, and a logger.
type Setup struct {
	Config *config.Config
	Policy policy.Policy

	// PolicySource is PolicySourceBuiltIn, PolicySourceConfig, or the
	// path of the policy file.
	PolicySource string

	Logger *slog.Logger

	// LookupEnv reads the search-path variable. os.LookupEnv unless a
	// test replaces it.
	LookupEnv searchpath.Lookup
}

// Load resolves the flags into a Setup. Configuration comes from
// --config, then $ROBOFLEET_CONFIG, then config.Default. The policy
// comes from --policy, then the config's policy_file, then its policy
// list, then the robot's built-in policy.
func (p *ConfigParams) Load() (*Setup, error) {
	return p.load(os.LookupEnv)
}

func (p *ConfigParams) load(lookup searchpath.Lookup) (*Setup, error) {
	cfg, err := p.loadConfig(lookup)
	if err != nil {
		return nil, err
	}

	if p.LogLevel != "" {
		cfg.Log.Level = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid configuration: %w", err)
	}
	level, _ := cfg.LogLevel()

	setup := &Setup{
		Config:    cfg,
		Logger:    NewCommandLogger(level, cfg.Log.Format),
		LookupEnv: lookup,
	}

	policyFile := p.PolicyFile
	if policyFile == "" {
		policyFile = cfg.PolicyFile
	}
	switch {
	case policyFile != "":
		selected, err := policy.ReadFile(policyFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, NotFound("%w", err)
			}
			return nil, Validation("%w", err)
		}
		setup.Policy = selected
		setup.PolicySource = policyFile
	case len(cfg.Policy) > 0:
		setup.Policy = policy.Policy(cfg.Policy)
		setup.PolicySource = PolicySourceConfig
	default:
		setup.Policy = policy.Default()
		setup.PolicySource = PolicySourceBuiltIn
	}

	return setup, nil
}

func (p *ConfigParams) loadConfig(lookup searchpath.Lookup) (*config.Config, error) {
	path := p.ConfigFile
	if path == "" {
		path, _ = lookup(config.EnvironmentVariable)
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound("config file %s does not exist", path)
		}
		return nil, Validation("loading config: %w", err)
	}
	return cfg, nil
}

// SearchPath returns the value of the configured search-path variable.
func (s *Setup) SearchPath() string {
	value, _ := s.LookupEnv(s.Config.SearchPathVariable)
	return value
}

// Composer returns a composer over the robot's catalog that logs to
// s.Logger.
func (s *Setup) Composer() *composer.Composer {
	fleetComposer := composer.New()
	fleetComposer.SetLogger(s.Logger)
	return fleetComposer
}

// Compose composes the effective policy against the current search path.
func (s *Setup) Compose() (composer.Result, error) {
	result, err := s.Composer().ComposeFromEnvironment(s.LookupEnv, s.Config.SearchPathVariable, s.Policy)
	if err != nil {
		return composer.Result{}, categorize(err)
	}
	return result, nil
}

// Catalog builds the robot's catalog for the current search path.
func (s *Setup) Catalog() (*catalog.Catalog, fleet.ConfigPaths, error) {
	nodes, paths, err := s.Composer().Catalog(s.SearchPath())
	if err != nil {
		return nil, paths, categorize(err)
	}
	return nodes, paths, nil
}

// categorize tags a composition error. Policy problems are the
// caller's input; catalog problems are a defect in the binary.
func categorize(err error) error {
	var configErr *fleet.ConfigurationError
	if errors.As(err, &configErr) {
		switch configErr.Kind {
		case fleet.UnknownPolicyID:
			return (&ToolError{Category: CategoryValidation, Err: err}).
				WithHint("Run 'robofleet catalog' to list the node IDs a policy may enable.")
		case fleet.DuplicatePolicyID:
			return &ToolError{Category: CategoryValidation, Err: err}
		}
	}
	return &ToolError{Category: CategoryInternal, Err: err}
}
