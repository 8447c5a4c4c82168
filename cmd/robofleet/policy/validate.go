// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	libcatalog "github.com/robofleet/robofleet/lib/catalog"
	libpolicy "github.com/robofleet/robofleet/lib/policy"
)

type validateParams struct {
	cli.ConfigParams
	cli.JSONOutput
}

// validation is the outcome of checking one policy file.
type validation struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Nodes  int      `json:"nodes"`
	Issues []string `json:"issues"`
}

func validateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check policy files against the catalog",
		Description: `Parse each policy file and check every ID against the catalog built
for the current search path. Reports every unknown or repeated ID, not
just the first, and exits with status 1 when any file has an issue.

With no file arguments, validates the effective policy (see "robofleet
policy show").`,
		Usage: "robofleet policy validate [flags] [file...]",
		Examples: []cli.Example{
			{
				Description: "Validate a policy file",
				Command:     "robofleet policy validate bench.jsonc",
			},
			{
				Description: "Validate every deployed policy in CI",
				Command:     "robofleet policy validate --json policies/*.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate", &params)
		},
		Run: func(args []string) error {
			setup, err := params.Load()
			if err != nil {
				return err
			}
			nodes, _, err := setup.Catalog()
			if err != nil {
				return err
			}

			var results []validation
			if len(args) == 0 {
				results = append(results, checkPolicy(setup.PolicySource, setup.Policy, nodes))
			}
			for _, path := range args {
				result, err := validateFile(path, nodes)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			if done, err := params.EmitJSON(results); done {
				if err != nil {
					return err
				}
				return exitStatus(results)
			}
			if err := writeValidation(os.Stdout, results); err != nil {
				return err
			}
			return exitStatus(results)
		},
	}
}

// validateFile reads and checks one policy file. A malformed file is an
// issue, not an error; only a missing or unreadable file is an error.
func validateFile(path string, nodes *libcatalog.Catalog) (validation, error) {
	parsed, err := libpolicy.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return validation{}, cli.NotFound("policy file %s does not exist", path)
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return validation{}, cli.Internal("%w", err)
		}
		return validation{File: path, Issues: []string{err.Error()}}, nil
	}
	return checkPolicy(path, parsed, nodes), nil
}

// checkPolicy lists every problem libpolicy.Check finds in p.
func checkPolicy(name string, p libpolicy.Policy, nodes *libcatalog.Catalog) validation {
	result := validation{File: name, Nodes: len(p), Issues: []string{}}
	if err := libpolicy.Check(nodes, p); err != nil {
		result.Issues = splitJoined(err)
	}
	result.Valid = len(result.Issues) == 0
	return result
}

// splitJoined returns the messages of an errors.Join result, or the
// single message of any other error.
func splitJoined(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var messages []string
	for _, inner := range joined.Unwrap() {
		messages = append(messages, inner.Error())
	}
	return messages
}

func writeValidation(w io.Writer, results []validation) error {
	for _, result := range results {
		if result.Valid {
			if _, err := fmt.Fprintf(w, "%s: valid (%d nodes)\n", result.File, result.Nodes); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(w, "%s: %d issue(s)\n", result.File, len(result.Issues))
		for _, issue := range result.Issues {
			if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
				return err
			}
		}
	}
	return nil
}

// exitStatus returns a cli.ExitError when any result is invalid. The
// issues have already been printed.
func exitStatus(results []validation) error {
	for _, result := range results {
		if !result.Valid {
			return &cli.ExitError{Code: 1}
		}
	}
	return nil
}
