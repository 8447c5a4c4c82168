// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/robofleet/robofleet/cmd/robofleet/cli"
	libcatalog "github.com/robofleet/robofleet/lib/catalog"
	"github.com/robofleet/robofleet/lib/policy"
	"github.com/robofleet/robofleet/lib/schema/fleet"
)

type catalogParams struct {
	cli.ConfigParams
	cli.JSONOutput
	NoColor bool `json:"-" flag:"no-color" desc:"disable colour even on a terminal"`
}

// row is one catalog entry as listed. Position is the node's 1-based
// start position under the effective policy, 0 when disabled.
type row struct {
	fleet.NodeDescriptor
	Position int `json:"position,omitempty"`
}

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 120

// Command returns the "catalog" command.
func Command() *cli.Command {
	var params catalogParams

	return &cli.Command{
		Name:    "catalog",
		Summary: "List every node the catalog defines",
		Description: `Build the node catalog for the current search path and list every
descriptor in ID order. The START column gives the node's position in
the fleet's start order under the effective policy, or "-" when the
policy leaves it disabled.

Paths in parameters are shown exactly as composed, so the catalog also
shows where the fleet will look for its configuration.`,
		Usage: "robofleet catalog [flags]",
		Examples: []cli.Example{
			{
				Description: "List the catalog against the built-in policy",
				Command:     "robofleet catalog",
			},
			{
				Description: "Show which nodes a candidate policy enables",
				Command:     "robofleet catalog --policy bench.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("catalog", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("catalog takes no positional arguments, got %q", args[0])
			}
			setup, err := params.Load()
			if err != nil {
				return err
			}
			nodes, _, err := setup.Catalog()
			if err != nil {
				return err
			}

			rows := buildRows(nodes, setup.Policy)
			if done, err := params.EmitJSON(rows); done {
				return err
			}

			isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
			profile := termenv.ANSI256
			if params.NoColor || !isTerminal {
				profile = termenv.Ascii
			}
			width := defaultWidth
			if isTerminal {
				if columns, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && columns > 0 {
					width = columns
				}
			}
			return renderTable(os.Stdout, rows, profile, width)
		},
	}
}

// buildRows lists the catalog in ID order with each node's start
// position under p. Unknown IDs in p are ignored here; composition
// reports them.
func buildRows(nodes *libcatalog.Catalog, p policy.Policy) []row {
	positions := make(map[string]int, len(p))
	for index, id := range p {
		if _, seen := positions[id]; !seen {
			positions[id] = index + 1
		}
	}

	descriptors := nodes.Descriptors()
	rows := make([]row, len(descriptors))
	for index, descriptor := range descriptors {
		rows[index] = row{NodeDescriptor: descriptor, Position: positions[descriptor.ID]}
	}
	return rows
}

// summarizeParameters renders a parameter set as "name=value" pairs in
// name order.
func summarizeParameters(parameters fleet.ParameterSet) string {
	if len(parameters) == 0 {
		return "-"
	}
	pairs := make([]string, 0, len(parameters))
	for _, name := range parameters.Names() {
		pairs = append(pairs, name+"="+parameters[name].String())
	}
	return strings.Join(pairs, " ")
}

// renderTable writes rows as an aligned table no wider than width. The
// parameter column is truncated to fit. With termenv.Ascii the output
// carries no escape sequences.
func renderTable(w io.Writer, rows []row, profile termenv.Profile, width int) error {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	headerStyle := renderer.NewStyle().Bold(true)
	enabledStyle := renderer.NewStyle().Foreground(lipgloss.Color("2"))
	disabledStyle := renderer.NewStyle().Faint(true)

	header := []string{"ID", "EXECUTABLE", "RESTART", "START", "PARAMETERS"}
	cells := make([][]string, len(rows))
	for index, entry := range rows {
		start := "-"
		if entry.Position > 0 {
			start = strconv.Itoa(entry.Position)
		}
		cells[index] = []string{
			entry.ID,
			entry.Package + "/" + entry.Executable,
			string(entry.Restart),
			start,
			summarizeParameters(entry.Parameters),
		}
	}

	const gap = 2
	widths := make([]int, len(header))
	for column := range header {
		widths[column] = ansi.StringWidth(header[column])
		for _, line := range cells {
			widths[column] = max(widths[column], ansi.StringWidth(line[column]))
		}
	}
	fixed := 0
	for column := range len(header) - 1 {
		fixed += widths[column] + gap
	}
	last := len(header) - 1
	widths[last] = min(widths[last], max(width-fixed, len(header[last])))

	format := func(line []string, style func(column int) lipgloss.Style) string {
		var builder strings.Builder
		for column, cell := range line {
			if column == last {
				builder.WriteString(style(column).Render(ansi.Truncate(cell, widths[column], "…")))
				continue
			}
			padded := cell + strings.Repeat(" ", widths[column]-ansi.StringWidth(cell)+gap)
			builder.WriteString(style(column).Render(padded))
		}
		return strings.TrimRight(builder.String(), " ")
	}

	if _, err := fmt.Fprintln(w, format(header, func(int) lipgloss.Style { return headerStyle })); err != nil {
		return err
	}
	for index, line := range cells {
		style := disabledStyle
		if rows[index].Position > 0 {
			style = enabledStyle
		}
		if _, err := fmt.Fprintln(w, format(line, func(int) lipgloss.Style { return style })); err != nil {
			return err
		}
	}
	return nil
}
