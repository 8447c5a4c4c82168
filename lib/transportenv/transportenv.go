// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package transportenv builds the process-wide environment that selects
// and configures the ROS 2 middleware transport. Every node in a fleet
// must start with these variables set, so the supervisor applies them
// before the first spawn.
package transportenv

import "github.com/robofleet/robofleet/lib/schema/fleet"

const (
	// ImplementationVariable selects the RMW implementation.
	ImplementationVariable = "RMW_IMPLEMENTATION"

	// Implementation is the CycloneDDS RMW layer.
	Implementation = "rmw_cyclonedds_cpp"

	// ConfigVariable points CycloneDDS at its XML configuration.
	ConfigVariable = "CYCLONEDDS_URI"

	// ConfigFile is the CycloneDDS configuration file name inside the
	// shared configuration directory.
	ConfigFile = "cyclonedds.xml"
)

// BuildOverrides returns exactly the two transport variables for
// configDir. configDir is used verbatim and is expected to end with a
// separator, as searchpath.Resolve produces it. The file is not checked
// for existence.
func BuildOverrides(configDir string) fleet.EnvironmentOverride {
	return fleet.EnvironmentOverride{
		ImplementationVariable: Implementation,
		ConfigVariable:         ConfigURI(configDir),
	}
}

// ConfigURI returns the file:// URI of the CycloneDDS configuration in
// configDir.
func ConfigURI(configDir string) string {
	return "file://" + configDir + ConfigFile
}
