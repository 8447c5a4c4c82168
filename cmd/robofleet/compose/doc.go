// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package compose implements the commands that run a composition and
// print its result: "robofleet compose" (the supervisor handoff),
// "robofleet env" (the environment override as shell exports) and
// "robofleet plan" (the ros2 command line of every node).
package compose
