// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package fleet defines the data handed from the composer to the process
// supervisor: node descriptors, typed parameters, the ordered fleet, and
// the process-wide environment overrides.
//
// A [NodeDescriptor] is plain value data. Its [ParameterSet] maps names to
// [ParameterValue], a tagged union over bool, integer, double, string and
// path, so heterogeneous configuration keeps its exact types through JSON
// and CBOR. [Fleet] is ordered; its order is the start order contract.
// [EnvironmentOverride] is returned, never applied implicitly.
//
// Definition defects (duplicate IDs, unknown policy IDs, malformed
// descriptors) are reported as [*ConfigurationError].
//
// [Handoff] bundles a fleet, its environment and a BLAKE3 [Fingerprint]
// for the supervisor. The fingerprint is computed over the deterministic
// CBOR encoding from lib/codec.
package fleet
