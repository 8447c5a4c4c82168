// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package searchpath derives the workspace root and the shared
// configuration directory from an AMENT_PREFIX_PATH-style search path.
//
// The first colon-separated entry is taken as the install prefix of the
// workspace (typically <workspace>/install/<package> or
// <workspace>/install). The workspace root is two directory levels above
// it, and the configuration directory sits at a fixed location inside
// the root. Paths are derived by string concatenation and are not
// cleaned, so "/a/b/install" yields the root "/a/b/install/../../".
//
// An empty or unset variable is accepted: [Resolve] returns the
// deterministic degenerate root "/../../" rather than failing. Callers
// that need the directories to exist check for themselves; this package
// never touches the filesystem.
package searchpath
