// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Robofleet packages.
//
// [WriteFile] writes a fixture file (a policy, a config, a params file)
// into a test directory and returns its path.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it when a test needs node IDs or file names that
// cannot collide with any other test's fixtures.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Robofleet-internal dependencies.
package testutil
