// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	libcatalog "github.com/robofleet/robofleet/lib/catalog"
)

type showParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// showResult is the --json form of "policy show".
type showResult struct {
	Source   string   `json:"source"`
	Nodes    []string `json:"nodes"`
	Disabled []string `json:"disabled"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Print the effective policy and where it came from",
		Description: `Print the policy a composition would use, in start order, followed by
the catalog nodes it leaves disabled. The source is the --policy file,
the config file's policy_file or policy list, or the robot's built-in
policy.`,
		Usage: "robofleet policy show [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("show takes no positional arguments, got %q", args[0])
			}
			setup, err := params.Load()
			if err != nil {
				return err
			}
			nodes, _, err := setup.Catalog()
			if err != nil {
				return err
			}

			result := showResult{
				Source:   setup.PolicySource,
				Nodes:    setup.Policy,
				Disabled: setup.Policy.Disabled(nodes),
			}
			if done, err := params.EmitJSON(result); done {
				return err
			}
			return writeShow(os.Stdout, result, nodes)
		},
	}
}

func writeShow(w io.Writer, result showResult, nodes *libcatalog.Catalog) error {
	fmt.Fprintf(w, "Policy: %s\n\n", result.Source)
	if len(result.Nodes) == 0 {
		fmt.Fprintf(w, "  (no nodes enabled)\n")
	}
	for index, id := range result.Nodes {
		marker := ""
		if !nodes.Has(id) {
			marker = "  (not in catalog)"
		}
		fmt.Fprintf(w, "  %2d  %s%s\n", index+1, id, marker)
	}
	if len(result.Disabled) > 0 {
		fmt.Fprintf(w, "\nDisabled:\n")
		for _, id := range result.Disabled {
			fmt.Fprintf(w, "  -   %s\n", id)
		}
	}
	return nil
}
