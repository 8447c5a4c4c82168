// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for the robofleet binary.
// They cover the raw I/O that happens after the command tree has
// returned and the structured logger is no longer in play: reporting
// the final error to stderr and choosing the exit code.
package process
