// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/robofleet/robofleet/cmd/robofleet/cli"
)

// Command returns the "policy" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "policy",
		Summary: "Show and validate fleet policies",
		Description: `A policy is the ordered list of catalog node IDs to run. Its order is
the fleet's start order. Policy files are JSONC documents with a single
"nodes" list:

  {
    // bench test: drive base and camera only
    "nodes": ["io_reeman", "capture"],
  }`,
		Subcommands: []*cli.Command{
			showCommand(),
			validateCommand(),
		},
	}
}
