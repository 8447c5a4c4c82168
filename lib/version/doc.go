// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports how the robofleet binary was built. [GitCommit],
// [GitDirty], [BuildTime] and [Version] are injected with -ldflags -X and
// keep their "unknown" / "0.1.0-dev" defaults in development builds and
// tests. [Current] gathers them with the Go toolchain and platform for
// "robofleet version --json"; [Info] and [Full] format them for people.
package version
