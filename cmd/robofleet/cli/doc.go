// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the robofleet CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/robofleet/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]. When a user types an unknown subcommand or flag, the
// framework computes Levenshtein edit distance against all known names
// and suggests the closest match (threshold: distance <= 3).
//
// Commands that compose a fleet embed [ConfigParams], which adds
// --config, --policy and --log-level and turns them into a [Setup]: the
// loaded configuration, the effective policy, and a logger built by
// [NewCommandLogger].
package cli
