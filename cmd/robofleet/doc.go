// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Robofleet composes the robot's ROS 2 node fleet from the compiled-in
// catalog and a policy, and hands the result to a process supervisor.
//
// Usage:
//
//	robofleet compose [--cbor FILE] [--json]
//	robofleet catalog [--no-color] [--json]
//	robofleet env [--json]
//	robofleet plan [--params-dir DIR] [--json]
//	robofleet policy show|validate
//	robofleet inspect FILE
//	robofleet version
//
// Every composing command accepts --config, --policy and --log-level.
// Run "robofleet <command> --help" for details.
package main
