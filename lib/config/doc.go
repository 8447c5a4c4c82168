// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the robofleet
// command.
//
// Configuration is loaded from a single file specified by either the
// ROBOFLEET_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. Without either,
// the command runs on [Default], which reproduces the robot's built-in
// behavior.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override the policy, the
// policy file, log settings and the params directory when
// [Config].Environment matches. Production defaults to JSON logs.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- search path variable, policy selection, Log, Output
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other Robofleet packages.
package config
