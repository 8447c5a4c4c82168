// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy implements the "robofleet policy" command group: show
// the effective policy and validate policy files against the catalog.
package policy
