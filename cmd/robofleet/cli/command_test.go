// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "compose",
				Run: func(args []string) error {
					called = "compose"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"compose"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "compose" {
		t.Errorf("dispatched to %q, want %q", called, "compose")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{
				Name: "policy",
				Subcommands: []*Command{
					{
						Name: "validate",
						Run: func(args []string) error {
							called = "policy validate"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"policy", "validate", "robot.jsonc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "policy validate" {
		t.Errorf("dispatched to %q, want %q", called, "policy validate")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "robot.jsonc" {
		t.Errorf("args = %v, want [robot.jsonc]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var paramsDir string
	var target string

	command := &Command{
		Name: "plan",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("plan", pflag.ContinueOnError)
			flagSet.StringVar(&paramsDir, "params-dir", "", "params directory")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--params-dir", "/tmp/params", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if paramsDir != "/tmp/params" {
		t.Errorf("paramsDir = %q, want %q", paramsDir, "/tmp/params")
	}
	if target != "extra" {
		t.Errorf("target = %q, want %q", target, "extra")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "catalog",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
			flagSet.Bool("no-color", false, "disable colour")
			flagSet.Bool("json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--no-colr"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --no-color") {
		t.Errorf("error = %q, want suggestion for '--no-color'", errStr)
	}
	if !strings.Contains(errStr, "no-colr") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "catalog",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{Name: "compose"},
			{Name: "catalog"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"compse"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "compose"`) {
		t.Errorf("error = %q, want suggestion for 'compose'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{Name: "compose"},
			{Name: "catalog"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_UsageErrorsAreValidation(t *testing.T) {
	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{
				Name: "policy",
				Subcommands: []*Command{
					{
						Name: "validate",
						Flags: func() *pflag.FlagSet {
							return pflag.NewFlagSet("validate", pflag.ContinueOnError)
						},
						Run: func(args []string) error { return nil },
					},
				},
			},
		},
	}

	for _, args := range [][]string{
		{"polcy"},
		{"policy"},
		{"policy", "validate", "--strict"},
	} {
		err := root.Execute(args)
		var toolErr *ToolError
		if !errors.As(err, &toolErr) {
			t.Errorf("Execute(%v) = %v, want ToolError", args, err)
			continue
		}
		if toolErr.Category != CategoryValidation {
			t.Errorf("Execute(%v) category = %q, want %q", args, toolErr.Category, CategoryValidation)
		}
		if !strings.Contains(toolErr.Hint, "--help") {
			t.Errorf("Execute(%v) hint = %q, want pointer to --help", args, toolErr.Hint)
		}
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "robofleet",
				Summary: "ROS 2 fleet composer",
				Subcommands: []*Command{
					{Name: "compose", Summary: "Compose the fleet"},
				},
			}

			if err := root.Execute([]string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "robofleet",
		Subcommands: []*Command{
			{Name: "compose", Summary: "Compose the fleet"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "robofleet",
		Description: "Compose the robot's ROS 2 node fleet.",
		Subcommands: []*Command{
			{Name: "compose", Summary: "Compose the fleet and print it"},
			{Name: "catalog", Summary: "List every catalogued node"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Write the supervisor handoff",
				Command:     "robofleet compose --cbor fleet.cbor",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Compose the robot's ROS 2 node fleet.",
		"Usage:",
		"robofleet <command> [flags]",
		"Commands:",
		"compose",
		"List every catalogued node",
		"Examples:",
		"# Write the supervisor handoff",
		"robofleet compose --cbor fleet.cbor",
		"Run 'robofleet <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	type params struct {
		JSONOutput
		ParamsDir string `flag:"params-dir" desc:"write params files here"`
	}
	var p params

	command := &Command{
		Name:    "plan",
		Summary: "Render launch commands",
		Usage:   "robofleet plan [flags]",
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("plan", &p)
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"robofleet plan [flags]",
		"Flags:",
		"--params-dir",
		"write params files here",
		"--json",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "robofleet"}
	group := &Command{Name: "policy", parent: root}
	validate := &Command{Name: "validate", parent: group}

	if got := root.fullName(); got != "robofleet" {
		t.Errorf("root.fullName() = %q, want %q", got, "robofleet")
	}
	if got := validate.fullName(); got != "robofleet policy validate" {
		t.Errorf("validate.fullName() = %q, want %q", got, "robofleet policy validate")
	}
}
