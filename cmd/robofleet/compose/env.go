// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	"github.com/robofleet/robofleet/lib/launchplan"
	"github.com/robofleet/robofleet/lib/schema/fleet"
)

type envParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// EnvCommand returns the "env" command.
func EnvCommand() *cli.Command {
	var params envParams

	return &cli.Command{
		Name:    "env",
		Summary: "Print the fleet's environment override as shell exports",
		Description: `Compose the fleet and print the process-wide environment the supervisor
must establish before starting the first node, as POSIX shell export
statements. The output can be evaluated to run nodes by hand with the
same middleware selection as the fleet.`,
		Usage: "robofleet env [flags]",
		Examples: []cli.Example{
			{
				Description: "Adopt the fleet environment in the current shell",
				Command:     `eval "$(robofleet env)"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("env", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("env takes no positional arguments, got %q", args[0])
			}
			setup, err := params.Load()
			if err != nil {
				return err
			}
			result, err := setup.Compose()
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(result.Environment); done {
				return err
			}
			return writeExports(os.Stdout, result.Environment)
		},
	}
}

// writeExports writes one export statement per override in name order.
func writeExports(w io.Writer, environment fleet.EnvironmentOverride) error {
	for _, name := range environment.Names() {
		if _, err := fmt.Fprintf(w, "export %s=%s\n", name, launchplan.ShellQuote(environment[name])); err != nil {
			return err
		}
	}
	return nil
}
