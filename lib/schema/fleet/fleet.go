// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"sort"
)

// ConfigPaths are the filesystem locations derived once at the start of
// a composition from the search-path variable.
type ConfigPaths struct {
	// WorkspaceRoot is the workspace checkout, two levels above the
	// first install prefix. It keeps a trailing separator.
	WorkspaceRoot string `json:"workspace_root"`

	// ConfigDir is the shared configuration directory under
	// WorkspaceRoot. It keeps a trailing separator.
	ConfigDir string `json:"config_dir"`
}

// EnvironmentOverride maps process-wide environment variable names to
// values. The supervisor applies it before starting the first node; the
// composer only returns it.
type EnvironmentOverride map[string]string

// Names returns the variable names in sorted order.
func (e EnvironmentOverride) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Environ returns the overrides as sorted "KEY=value" strings, the form
// accepted by os/exec.Cmd.Env.
func (e EnvironmentOverride) Environ() []string {
	environ := make([]string, 0, len(e))
	for _, name := range e.Names() {
		environ = append(environ, name+"="+e[name])
	}
	return environ
}

// Apply calls setenv for every override in sorted name order and stops at
// the first error. Pass os.Setenv to mutate the current process.
func (e EnvironmentOverride) Apply(setenv func(name, value string) error) error {
	for _, name := range e.Names() {
		if err := setenv(name, e[name]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of e.
func (e EnvironmentOverride) Clone() EnvironmentOverride {
	if e == nil {
		return nil
	}
	clone := make(EnvironmentOverride, len(e))
	for name, value := range e {
		clone[name] = value
	}
	return clone
}

// Fleet is the ordered set of active nodes produced by one composition.
// Order is the start order: the supervisor submits nodes in this order,
// though they may finish initializing in any order.
type Fleet struct {
	Nodes []NodeDescriptor `json:"nodes"`
}

// Len returns the number of nodes.
func (f Fleet) Len() int { return len(f.Nodes) }

// IDs returns node IDs in start order.
func (f Fleet) IDs() []string {
	ids := make([]string, len(f.Nodes))
	for index, node := range f.Nodes {
		ids[index] = node.ID
	}
	return ids
}

// Lookup returns the node with the given ID.
func (f Fleet) Lookup(id string) (NodeDescriptor, bool) {
	for _, node := range f.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return NodeDescriptor{}, false
}

// Handoff is the complete document given to the supervisor: the ordered
// fleet, the environment it must establish before the first start, and
// a fingerprint of both.
type Handoff struct {
	Fleet       Fleet               `json:"fleet"`
	Environment EnvironmentOverride `json:"environment"`
	Fingerprint string              `json:"fingerprint"`
}

// NewHandoff assembles a Handoff and computes its fingerprint.
func NewHandoff(fleet Fleet, environment EnvironmentOverride) (Handoff, error) {
	fingerprint, err := Fingerprint(fleet, environment)
	if err != nil {
		return Handoff{}, err
	}
	return Handoff{
		Fleet:       fleet,
		Environment: environment,
		Fingerprint: fingerprint.String(),
	}, nil
}
