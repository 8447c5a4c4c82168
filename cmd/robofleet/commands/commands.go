// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete robofleet command tree.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	catalogcmd "github.com/robofleet/robofleet/cmd/robofleet/catalog"
	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	composecmd "github.com/robofleet/robofleet/cmd/robofleet/compose"
	inspectcmd "github.com/robofleet/robofleet/cmd/robofleet/inspect"
	policycmd "github.com/robofleet/robofleet/cmd/robofleet/policy"
	"github.com/robofleet/robofleet/lib/version"
)

// Root builds and returns the robofleet command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "robofleet",
		Description: `Robofleet: ROS 2 process fleet composer.

Select which of the robot's nodes run from a compiled-in catalog and a
policy, and hand the ordered fleet with its environment to a process
supervisor.`,
		Subcommands: []*cli.Command{
			composecmd.Command(),
			composecmd.EnvCommand(),
			composecmd.PlanCommand(),
			catalogcmd.Command(),
			policycmd.Command(),
			inspectcmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Compose the fleet and write the supervisor handoff",
				Command:     "robofleet compose --cbor /run/robofleet/fleet.cbor",
			},
			{
				Description: "List every node the catalog defines",
				Command:     "robofleet catalog",
			},
			{
				Description: "Check a policy file before deploying it",
				Command:     "robofleet policy validate lab.jsonc",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "robofleet version [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("version takes no arguments, got %q", args[0])
			}
			return writeVersion(os.Stdout, params.JSONOutput)
		},
	}
}

func writeVersion(w io.Writer, output cli.JSONOutput) error {
	if done, err := output.EmitJSONTo(w, version.Current()); done {
		return err
	}
	_, err := fmt.Fprintf(w, "robofleet %s\n", version.Full())
	return err
}
