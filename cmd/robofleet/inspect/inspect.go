// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	"github.com/robofleet/robofleet/lib/codec"
	"github.com/robofleet/robofleet/lib/schema/fleet"
)

type inspectParams struct {
	cli.JSONOutput
	Diag bool `json:"diag" flag:"diag" desc:"print CBOR diagnostic notation instead of a summary"`
}

// inspection is the result of checking one handoff.
type inspection struct {
	Fingerprint string                    `json:"fingerprint"`
	Recomputed  string                    `json:"recomputed"`
	Match       bool                      `json:"match"`
	Nodes       []string                  `json:"nodes"`
	Environment fleet.EnvironmentOverride `json:"environment"`
}

// Command returns the "inspect" command.
func Command() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Decode a CBOR handoff and verify its fingerprint",
		Description: `Read a handoff written by "robofleet compose --cbor", recompute the
fingerprint from its fleet and environment, and compare it with the
stored one. A mismatch means the file was edited or written by an
incompatible version, and is reported as an error.

With --diag, print the raw RFC 8949 diagnostic notation instead. This
shows the exact wire types (integer vs float, text vs byte strings).

Pass "-" to read the handoff from stdin.`,
		Usage: "robofleet inspect [flags] <file>",
		Examples: []cli.Example{
			{
				Description: "Verify the handoff the supervisor is running",
				Command:     "robofleet inspect /run/robofleet/fleet.cbor",
			},
			{
				Description: "Show the wire encoding",
				Command:     "robofleet compose --cbor - | robofleet inspect --diag -",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: robofleet inspect [flags] <file>")
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			if params.Diag {
				return writeDiagnostic(os.Stdout, data)
			}

			result, err := inspectHandoff(data)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(result); done {
				if err != nil {
					return err
				}
				return mismatchError(result)
			}
			if err := writeInspection(os.Stdout, result); err != nil {
				return err
			}
			return mismatchError(result)
		},
	}
}

func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if os.IsNotExist(err) {
		return nil, cli.NotFound("handoff file %s does not exist", path)
	}
	if err != nil {
		return nil, cli.Internal("reading handoff: %w", err)
	}
	if len(data) == 0 {
		return nil, cli.Validation("empty input: expected a CBOR handoff")
	}
	return data, nil
}

// inspectHandoff decodes data and recomputes its fingerprint.
func inspectHandoff(data []byte) (inspection, error) {
	var handoff fleet.Handoff
	if err := codec.Unmarshal(data, &handoff); err != nil {
		return inspection{}, cli.Validation("decoding handoff: %w", err)
	}

	recomputed, err := fleet.Fingerprint(handoff.Fleet, handoff.Environment)
	if err != nil {
		return inspection{}, cli.Internal("fingerprinting handoff: %w", err)
	}

	return inspection{
		Fingerprint: handoff.Fingerprint,
		Recomputed:  recomputed.String(),
		Match:       handoff.Fingerprint == recomputed.String(),
		Nodes:       handoff.Fleet.IDs(),
		Environment: handoff.Environment,
	}, nil
}

func writeDiagnostic(w io.Writer, data []byte) error {
	notation, err := codec.Diagnose(data)
	if err != nil {
		return cli.Validation("diagnosing CBOR: %w", err)
	}
	_, err = fmt.Fprintln(w, notation)
	return err
}

func writeInspection(w io.Writer, result inspection) error {
	status := "ok"
	if !result.Match {
		status = "MISMATCH (recomputed " + result.Recomputed + ")"
	}
	fmt.Fprintf(w, "Fingerprint: %s %s\n", result.Fingerprint, status)
	fmt.Fprintf(w, "Environment:\n")
	for _, line := range result.Environment.Environ() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "Nodes (%d):\n", len(result.Nodes))
	for index, id := range result.Nodes {
		if _, err := fmt.Fprintf(w, "  %2d  %s\n", index+1, id); err != nil {
			return err
		}
	}
	return nil
}

// mismatchError fails a handoff whose stored fingerprint does not match
// its content.
func mismatchError(result inspection) error {
	if result.Match {
		return nil
	}
	return cli.Validation("fingerprint mismatch: stored %s, recomputed %s", result.Fingerprint, result.Recomputed)
}
