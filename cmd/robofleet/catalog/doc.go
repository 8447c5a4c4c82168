// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog implements "robofleet catalog", which lists every node
// the compiled-in catalog defines and marks the ones the effective
// policy enables.
package catalog
