// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package composer is the entry point that turns a search-path value and
// a policy into the fleet a supervisor should start.
//
// Composition runs one forward pass:
//
//  1. searchpath.Resolve derives the workspace and config directories
//  2. transportenv.BuildOverrides and the catalog definitions both read
//     those paths, independently of each other
//  3. policy.Select picks and orders the enabled nodes
//
// The composer reads no environment itself and never mutates process
// state: the transport overrides come back as a value for the caller to
// apply. Composition is synchronous; it either returns a complete fleet
// or the first [*fleet.ConfigurationError].
//
// An empty search path is degraded input, not an error. The composer
// proceeds with the degenerate paths and, when a logger is set, logs a
// warning so an operator can tell why configs_path looks wrong.
package composer
