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
)

type planParams struct {
	cli.ConfigParams
	cli.JSONOutput
	ParamsDir string `json:"params_dir" flag:"params-dir" desc:"write params files here and reference them by full path (default: output.params_dir from config)"`
}

// PlanCommand returns the "plan" command.
func PlanCommand() *cli.Command {
	var params planParams

	return &cli.Command{
		Name:    "plan",
		Summary: "Render the ros2 command line of every composed node",
		Description: `Compose the fleet and render, in start order, the command a supervisor
runs for each node: the execution prefix, "ros2 run <package>
<executable>", the node-name and topic remaps, and a params file holding
the node's parameters.

Without a params directory the params files are shown inline. With
--params-dir (or output.params_dir in the config file) they are written
to that directory and the commands reference them by full path.`,
		Usage: "robofleet plan [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the launch commands",
				Command:     "robofleet plan",
			},
			{
				Description: "Write params files for a hand-run fleet",
				Command:     "robofleet plan --params-dir /tmp/robofleet-params",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("plan", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("plan takes no positional arguments, got %q", args[0])
			}
			setup, err := params.Load()
			if err != nil {
				return err
			}
			result, err := setup.Compose()
			if err != nil {
				return err
			}

			plan, err := launchplan.Render(result.Fleet, result.Environment)
			if err != nil {
				return cli.Internal("rendering plan: %w", err)
			}

			directory := params.ParamsDir
			if directory == "" {
				directory = setup.Config.Output.ParamsDir
			}
			if directory != "" {
				plan, err = plan.WriteParamsFiles(directory)
				if err != nil {
					return cli.Internal("%w", err)
				}
				setup.Logger.Info("params files written", "directory", directory, "nodes", len(plan.Entries))
			}

			if done, err := params.EmitJSON(plan); done {
				return err
			}
			return writePlan(os.Stdout, plan, directory == "")
		},
	}
}

// writePlan prints the environment and one command per entry. With
// inline set, each params file follows its command.
func writePlan(w io.Writer, plan launchplan.Plan, inline bool) error {
	for _, line := range plan.Environment {
		fmt.Fprintf(w, "# env %s\n", line)
	}
	for _, entry := range plan.Entries {
		fmt.Fprintf(w, "\n# %s (restart %s, output %s)\n", entry.ID, entry.Restart, entry.Output)
		if _, err := fmt.Fprintln(w, entry.Command()); err != nil {
			return err
		}
		if inline && entry.Params != "" {
			fmt.Fprintf(w, "# --- %s\n", entry.ParamsFile)
			if _, err := io.WriteString(w, entry.Params); err != nil {
				return err
			}
		}
	}
	return nil
}
