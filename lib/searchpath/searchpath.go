// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package searchpath

import (
	"strings"

	"github.com/robofleet/robofleet/lib/schema/fleet"
)

// DefaultVariable is the environment variable holding the search path.
const DefaultVariable = "AMENT_PREFIX_PATH"

const (
	// parentLevels climbs from the install prefix to the workspace root.
	parentLevels = "/../../"

	// ConfigSubpath locates the shared configuration directory relative
	// to the workspace root.
	ConfigSubpath = "src/ros2_utils/configs/"
)

// Resolve derives [fleet.ConfigPaths] from the value of the search-path
// variable. It is a pure function of value.
func Resolve(value string) fleet.ConfigPaths {
	prefix, _, _ := strings.Cut(value, ":")
	root := prefix + parentLevels
	return fleet.ConfigPaths{
		WorkspaceRoot: root,
		ConfigDir:     root + ConfigSubpath,
	}
}

// Lookup is the signature of os.LookupEnv.
type Lookup func(name string) (string, bool)

// FromEnvironment reads variable through lookup and resolves it. The
// second result reports degraded input: false when the variable is unset
// or its first entry is empty. The paths are returned either way.
func FromEnvironment(lookup Lookup, variable string) (fleet.ConfigPaths, bool) {
	value, _ := lookup(variable)
	prefix, _, _ := strings.Cut(value, ":")
	return Resolve(value), prefix != ""
}

// Join appends a relative path to base, inserting a separator only when
// base does not already end with one. Unlike filepath.Join it does not
// clean the result, keeping "../" segments visible exactly as Resolve
// produced them.
func Join(base, relative string) string {
	relative = strings.TrimPrefix(relative, "/")
	if base == "" || strings.HasSuffix(base, "/") {
		return base + relative
	}
	return base + "/" + relative
}
