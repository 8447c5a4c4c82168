// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/robofleet/robofleet/cmd/robofleet/commands"
	"github.com/robofleet/robofleet/lib/process"
)

func main() {
	// Commands that print their own result (policy validate) return a
	// cli.ExitError; process.Exit honours its code without an "error:"
	// line.
	process.Exit(run())
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
