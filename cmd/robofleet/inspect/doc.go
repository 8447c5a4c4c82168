// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect implements "robofleet inspect", which decodes a CBOR
// handoff written by "robofleet compose --cbor" and verifies its
// fingerprint.
package inspect
