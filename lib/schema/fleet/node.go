// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"errors"
	"fmt"
	"strings"
)

// OutputMode selects where a node's stdout and stderr are routed by the
// supervisor. It has no effect on restart or start ordering.
type OutputMode string

const (
	// OutputScreen forwards output to the operator's console.
	OutputScreen OutputMode = "screen"
	// OutputLog captures output to the supervisor's log sink.
	OutputLog OutputMode = "log"
	// OutputBoth does both.
	OutputBoth OutputMode = "both"
)

// Valid reports whether m is a known output mode.
func (m OutputMode) Valid() bool {
	switch m {
	case OutputScreen, OutputLog, OutputBoth:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (m OutputMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid output mode %q", string(m))
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *OutputMode) UnmarshalText(text []byte) error {
	mode := OutputMode(text)
	if !mode.Valid() {
		return fmt.Errorf("invalid output mode %q (expected screen, log or both)", string(text))
	}
	*m = mode
	return nil
}

// RestartPolicy tells the supervisor what to do when a node's process
// exits for any reason, including a crash.
type RestartPolicy string

const (
	// RestartNever leaves an exited node down.
	RestartNever RestartPolicy = "never"
	// RestartAlways restarts an exited node with the same parameters,
	// environment and remaps.
	RestartAlways RestartPolicy = "always"
)

// Valid reports whether p is a known restart policy.
func (p RestartPolicy) Valid() bool {
	return p == RestartNever || p == RestartAlways
}

// MarshalText implements encoding.TextMarshaler.
func (p RestartPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid restart policy %q", string(p))
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *RestartPolicy) UnmarshalText(text []byte) error {
	policy := RestartPolicy(text)
	if !policy.Valid() {
		return fmt.Errorf("invalid restart policy %q (expected never or always)", string(text))
	}
	*p = policy
	return nil
}

// Remap aliases one of a node's named I/O topics to another name at
// start time.
type Remap struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// String returns the remap in ROS 2 "from:=to" form.
func (r Remap) String() string {
	return r.From + ":=" + r.To
}

// NodeDescriptor describes one launchable process and its configuration.
// The supervisor receives descriptors as plain data and must treat them
// as immutable; [NodeDescriptor.Clone] is how Robofleet hands out copies
// that share no maps or slices with the catalog.
type NodeDescriptor struct {
	// ID is the node name, unique across the whole catalog. It is also
	// the name the process registers under (ROS 2 __node remap).
	ID string `json:"id"`

	// Package and Executable identify the program to run. Several
	// descriptors may share a package, and in principle an executable.
	Package    string `json:"package"`
	Executable string `json:"executable"`

	// Parameters is the node's configuration input. May be empty.
	Parameters ParameterSet `json:"parameters,omitempty"`

	// Output routes the child's stdio.
	Output OutputMode `json:"output"`

	// Restart is the supervisor's policy when the process exits.
	Restart RestartPolicy `json:"restart"`

	// Remaps are applied in order. Source topics are unique.
	Remaps []Remap `json:"remaps,omitempty"`

	// ExecutionPrefix is a command placed before the executable, such as
	// a priority adjustment ("nice -n -10") or a terminal wrapper
	// ("gnome-terminal --"). Empty means none.
	ExecutionPrefix string `json:"execution_prefix,omitempty"`
}

// PrefixArgs splits ExecutionPrefix into argv tokens. Returns nil when
// there is no prefix.
func (n NodeDescriptor) PrefixArgs() []string {
	fields := strings.Fields(n.ExecutionPrefix)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Clone returns a deep copy of n.
func (n NodeDescriptor) Clone() NodeDescriptor {
	clone := n
	clone.Parameters = n.Parameters.Clone()
	if n.Remaps != nil {
		clone.Remaps = make([]Remap, len(n.Remaps))
		copy(clone.Remaps, n.Remaps)
	}
	return clone
}

// Validate checks the descriptor's own invariants and returns every
// problem found, joined. Each problem is a [*ConfigurationError] of kind
// [InvalidDescriptor] naming this descriptor's ID.
func (n NodeDescriptor) Validate() error {
	var problems []error
	invalid := func(format string, args ...any) {
		problems = append(problems, &ConfigurationError{
			Kind:   InvalidDescriptor,
			ID:     n.ID,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	if n.ID == "" {
		invalid("id is required")
	}
	if n.Package == "" {
		invalid("package is required")
	}
	if n.Executable == "" {
		invalid("executable is required")
	}
	if !n.Output.Valid() {
		invalid("output mode %q is not one of screen, log, both", n.Output)
	}
	if !n.Restart.Valid() {
		invalid("restart policy %q is not one of never, always", n.Restart)
	}

	for _, name := range n.Parameters.Names() {
		if name == "" {
			invalid("parameter name is empty")
			continue
		}
		if err := n.Parameters[name].Validate(); err != nil {
			invalid("parameter %q: %v", name, err)
		}
	}

	sources := make(map[string]bool, len(n.Remaps))
	for index, remap := range n.Remaps {
		if remap.From == "" || remap.To == "" {
			invalid("remaps[%d]: both topics are required", index)
			continue
		}
		if sources[remap.From] {
			invalid("remaps[%d]: source topic %q is remapped more than once", index, remap.From)
			continue
		}
		sources[remap.From] = true
	}

	return errors.Join(problems...)
}
