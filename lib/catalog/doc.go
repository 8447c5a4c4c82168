// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the full, fixed set of node descriptors the robot
// can run. The catalog is defined in code, not discovered at runtime;
// which entries actually start is decided separately by lib/policy.
//
// [Build] turns a list of descriptors into a [Catalog], validating each
// descriptor and rejecting duplicate IDs with a
// [*fleet.ConfigurationError]. A duplicate is a definition bug, so Build
// fails immediately rather than keeping either copy.
//
// [Default] builds the robot's catalog from [Definitions], which needs
// the resolved [fleet.ConfigPaths] for the few nodes whose parameters
// point into the workspace (ui_server's UI root, io_reeman's configs
// directory). Every other value is a literal. Descriptors do not depend
// on each other, so their construction order is irrelevant.
package catalog
