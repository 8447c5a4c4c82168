// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	"github.com/robofleet/robofleet/lib/codec"
	"github.com/robofleet/robofleet/lib/composer"
	"github.com/robofleet/robofleet/lib/schema/fleet"
)

type composeParams struct {
	cli.ConfigParams
	cli.JSONOutput
	CBOR string `json:"cbor" flag:"cbor" desc:"write the CBOR handoff to this file (\"-\" for stdout)"`
}

// composeResult is the --json form of a composition.
type composeResult struct {
	fleet.Handoff
	Paths        fleet.ConfigPaths `json:"paths"`
	PolicySource string            `json:"policy_source"`
	Degraded     bool              `json:"degraded,omitempty"`
}

// Command returns the "compose" command.
func Command() *cli.Command {
	var params composeParams

	return &cli.Command{
		Name:    "compose",
		Summary: "Compose the fleet and print or write the supervisor handoff",
		Description: `Resolve the workspace paths from the search-path variable, build the
node catalog, select the nodes the policy enables, and print the result:
the fingerprint, the environment override and the nodes in start order.

With --cbor, the handoff (fleet, environment and fingerprint) is written
in deterministic CBOR for the supervisor. The fingerprint changes exactly
when the set, order or configuration of the nodes changes, so a
supervisor can compare it with the running fleet's to decide whether a
restart is needed.`,
		Usage: "robofleet compose [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the composed fleet",
				Command:     "robofleet compose",
			},
			{
				Description: "Write the handoff for the supervisor",
				Command:     "robofleet compose --cbor /run/robofleet/fleet.cbor",
			},
			{
				Description: "Compose a bench-test policy",
				Command:     "robofleet compose --policy bench.jsonc --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("compose", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("compose takes no positional arguments, got %q", args[0])
			}
			setup, err := params.Load()
			if err != nil {
				return err
			}
			result, err := setup.Compose()
			if err != nil {
				return err
			}
			handoff, err := result.Handoff()
			if err != nil {
				return cli.Internal("building handoff: %w", err)
			}

			if params.CBOR != "" {
				if err := writeHandoff(params.CBOR, handoff, os.Stdout); err != nil {
					return err
				}
				setup.Logger.Info("handoff written",
					"path", params.CBOR,
					"nodes", handoff.Fleet.Len(),
					"fingerprint", handoff.Fingerprint,
				)
				if params.CBOR == "-" {
					return nil
				}
			}

			if done, err := params.EmitJSON(composeResult{
				Handoff:      handoff,
				Paths:        result.Paths,
				PolicySource: setup.PolicySource,
				Degraded:     result.Degraded,
			}); done {
				return err
			}
			return writeSummary(os.Stdout, result, handoff, setup.PolicySource)
		},
	}
}

// writeHandoff encodes handoff as CBOR to path, or to stdout for "-".
// The file is written beside its final name and renamed into place so a
// supervisor never reads a partial handoff.
func writeHandoff(path string, handoff fleet.Handoff, stdout io.Writer) error {
	data, err := codec.Marshal(handoff)
	if err != nil {
		return cli.Internal("encoding handoff: %w", err)
	}
	if path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return cli.Internal("writing handoff: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cli.Internal("creating handoff directory: %w", err)
	}
	temporary := path + ".tmp"
	if err := os.WriteFile(temporary, data, 0o644); err != nil {
		return cli.Internal("writing handoff: %w", err)
	}
	if err := os.Rename(temporary, path); err != nil {
		os.Remove(temporary)
		return cli.Internal("installing handoff: %w", err)
	}
	return nil
}

// writeSummary prints a composition for an operator.
func writeSummary(w io.Writer, result composer.Result, handoff fleet.Handoff, policySource string) error {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "Fingerprint:\t%s\n", handoff.Fingerprint)
	fmt.Fprintf(writer, "Policy:\t%s\n", policySource)
	fmt.Fprintf(writer, "Workspace:\t%s\n", result.Paths.WorkspaceRoot)
	fmt.Fprintf(writer, "Config:\t%s\n", result.Paths.ConfigDir)
	if result.Degraded {
		fmt.Fprintf(writer, "Warning:\tsearch path has no install prefix\n")
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nEnvironment:\n")
	for _, line := range handoff.Environment.Environ() {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "\nNodes (%d, start order):\n", handoff.Fleet.Len())
	if handoff.Fleet.Len() == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return nil
	}
	writer = tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "  #\tID\tEXECUTABLE\tRESTART\tOUTPUT\tPARAMS\n")
	for index, node := range handoff.Fleet.Nodes {
		fmt.Fprintf(writer, "  %d\t%s\t%s/%s\t%s\t%s\t%d\n",
			index+1, node.ID, node.Package, node.Executable, node.Restart, node.Output, len(node.Parameters))
	}
	return writer.Flush()
}
