// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Robofleet's CBOR encoding configuration for the
// fleet handoff to the process supervisor.
//
// Two serialization formats are in play:
//
//   - JSON for anything a human reads: CLI --json output and policy
//     files (JSONC, see lib/policy).
//   - CBOR for the machine handoff: the composed fleet and its
//     environment overrides written by "robofleet compose --cbor" and
//     read by the supervisor before it starts the first node.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same fleet always encodes to the same bytes, so fleet fingerprints
// are stable across compositions.
//
//	data, err := codec.Marshal(handoff)
//	err = codec.Unmarshal(data, &handoff)
//
// Fleet types carry `json` struct tags only. fxamacker/cbor reads `json`
// tags when `cbor` tags are absent, so one tag set names fields in both
// formats. Never put both tags on one field.
//
// This package depends on no other Robofleet packages.
package codec
