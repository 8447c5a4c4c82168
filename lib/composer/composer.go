// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/robofleet/robofleet/lib/catalog"
	"github.com/robofleet/robofleet/lib/policy"
	"github.com/robofleet/robofleet/lib/schema/fleet"
	"github.com/robofleet/robofleet/lib/searchpath"
	"github.com/robofleet/robofleet/lib/transportenv"
)

// Definitions produces a fresh catalog definition list for paths.
// catalog.Definitions is the robot's; tests supply smaller ones.
type Definitions func(paths fleet.ConfigPaths) []fleet.NodeDescriptor

// Result is the output of one composition.
type Result struct {
	// Paths are the directories derived from the search path.
	Paths fleet.ConfigPaths `json:"paths"`

	// Fleet is the enabled nodes in start order.
	Fleet fleet.Fleet `json:"fleet"`

	// Environment must be applied to every node's process before the
	// first one starts.
	Environment fleet.EnvironmentOverride `json:"environment"`

	// Degraded is set when the search path had no first entry.
	Degraded bool `json:"degraded,omitempty"`
}

// Handoff packages the result for the supervisor.
func (r Result) Handoff() (fleet.Handoff, error) {
	return fleet.NewHandoff(r.Fleet, r.Environment)
}

// Composer builds fleets from a fixed set of catalog definitions.
type Composer struct {
	definitions Definitions
	logger      *slog.Logger
}

// New returns a Composer over the robot's catalog.
func New() *Composer {
	return &Composer{definitions: catalog.Definitions}
}

// NewWithDefinitions returns a Composer over a caller-supplied catalog.
func NewWithDefinitions(definitions Definitions) *Composer {
	return &Composer{definitions: definitions}
}

// SetLogger sets the logger for composition diagnostics. When nil (the
// default) nothing is logged.
func (c *Composer) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Catalog builds the catalog for a search-path value without applying
// any policy.
func (c *Composer) Catalog(searchPath string) (*catalog.Catalog, fleet.ConfigPaths, error) {
	paths := searchpath.Resolve(searchPath)
	nodes, err := catalog.Build(c.definitions(paths)...)
	if err != nil {
		return nil, paths, fmt.Errorf("building catalog: %w", err)
	}
	return nodes, paths, nil
}

// Compose resolves searchPath, builds the catalog and the transport
// overrides from the resulting paths, and selects p from the catalog.
func (c *Composer) Compose(searchPath string, p policy.Policy) (Result, error) {
	prefix, _, _ := strings.Cut(searchPath, ":")
	degraded := prefix == ""

	nodes, paths, err := c.Catalog(searchPath)
	if err != nil {
		return Result{}, err
	}
	if degraded && c.logger != nil {
		c.logger.Warn("search path has no install prefix, using degenerate paths",
			"workspace_root", paths.WorkspaceRoot,
			"config_dir", paths.ConfigDir,
		)
	}

	environment := transportenv.BuildOverrides(paths.ConfigDir)

	selected, err := policy.Select(nodes, p)
	if err != nil {
		return Result{}, fmt.Errorf("selecting fleet: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("fleet composed",
			"nodes", selected.Len(),
			"catalog", nodes.Len(),
			"config_dir", paths.ConfigDir,
		)
	}

	return Result{
		Paths:       paths,
		Fleet:       selected,
		Environment: environment,
		Degraded:    degraded,
	}, nil
}

// ComposeFromEnvironment reads the search path from variable through
// lookup (os.LookupEnv in production) and composes it.
func (c *Composer) ComposeFromEnvironment(lookup searchpath.Lookup, variable string, p policy.Policy) (Result, error) {
	value, _ := lookup(variable)
	if c.logger != nil {
		c.logger.Debug("read search path", "variable", variable, "value", value)
	}
	return c.Compose(value, p)
}

// Compose composes p over the robot's catalog with no logging. It is the
// plain-value form for callers that only need the fleet and its
// environment.
func Compose(searchPath string, p policy.Policy) (fleet.Fleet, fleet.EnvironmentOverride, error) {
	result, err := New().Compose(searchPath, p)
	if err != nil {
		return fleet.Fleet{}, nil, err
	}
	return result.Fleet, result.Environment, nil
}
