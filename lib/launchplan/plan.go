// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package launchplan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robofleet/robofleet/lib/schema/fleet"
)

// Entry is the rendered launch of one node.
type Entry struct {
	ID      string              `json:"id"`
	Argv    []string            `json:"argv"`
	Output  fleet.OutputMode    `json:"output"`
	Restart fleet.RestartPolicy `json:"restart"`

	// ParamsFile is the params file path as it appears in Argv. Empty
	// when the node has no parameters.
	ParamsFile string `json:"params_file,omitempty"`

	// Params is the params file content.
	Params string `json:"params,omitempty"`
}

// Command returns Argv as a single shell-quoted line.
func (e Entry) Command() string {
	quoted := make([]string, len(e.Argv))
	for index, argument := range e.Argv {
		quoted[index] = ShellQuote(argument)
	}
	return strings.Join(quoted, " ")
}

// Plan is a rendered fleet: the environment to establish first, then the
// entries in start order.
type Plan struct {
	Environment []string `json:"environment"`
	Entries     []Entry  `json:"entries"`
}

// Render builds the plan for f with overrides applied process-wide.
func Render(f fleet.Fleet, overrides fleet.EnvironmentOverride) (Plan, error) {
	plan := Plan{
		Environment: overrides.Environ(),
		Entries:     make([]Entry, 0, f.Len()),
	}
	for _, node := range f.Nodes {
		entry, err := renderEntry(node)
		if err != nil {
			return Plan{}, fmt.Errorf("rendering %s: %w", node.ID, err)
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan, nil
}

func renderEntry(node fleet.NodeDescriptor) (Entry, error) {
	entry := Entry{
		ID:      node.ID,
		Output:  node.Output,
		Restart: node.Restart,
	}

	if len(node.Parameters) > 0 {
		params, err := RenderParams(node.ID, node.Parameters)
		if err != nil {
			return Entry{}, err
		}
		entry.Params = string(params)
		entry.ParamsFile = ParamsFileName(node.ID)
	}

	entry.Argv = buildArgv(node, entry.ParamsFile)
	return entry, nil
}

func buildArgv(node fleet.NodeDescriptor, paramsFile string) []string {
	argv := append([]string{}, node.PrefixArgs()...)
	argv = append(argv,
		"ros2", "run", node.Package, node.Executable,
		"--ros-args",
		"-r", "__node:="+node.ID,
	)
	for _, remap := range node.Remaps {
		argv = append(argv, "-r", remap.String())
	}
	if paramsFile != "" {
		argv = append(argv, "--params-file", paramsFile)
	}
	return argv
}

// ParamsFileName returns the params file name for a node.
func ParamsFileName(id string) string {
	return id + ".yaml"
}

// WriteParamsFiles writes every entry's params file into directory
// (created if missing, files mode 0644) and returns a copy of p whose
// argv references the written paths.
func (p Plan) WriteParamsFiles(directory string) (Plan, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return Plan{}, fmt.Errorf("creating params directory: %w", err)
	}

	written := Plan{
		Environment: append([]string{}, p.Environment...),
		Entries:     make([]Entry, len(p.Entries)),
	}
	for index, entry := range p.Entries {
		if entry.Params == "" {
			written.Entries[index] = entry
			continue
		}

		path := filepath.Join(directory, ParamsFileName(entry.ID))
		if err := os.WriteFile(path, []byte(entry.Params), 0o644); err != nil {
			return Plan{}, fmt.Errorf("writing params for %s: %w", entry.ID, err)
		}

		argv := append([]string{}, entry.Argv...)
		for position := range argv {
			if position > 0 && argv[position-1] == "--params-file" {
				argv[position] = path
			}
		}
		entry.Argv = argv
		entry.ParamsFile = path
		written.Entries[index] = entry
	}
	return written, nil
}

// ShellQuote returns s unchanged when it has no shell metacharacters,
// otherwise single-quoted with internal single quotes escaped.
func ShellQuote(s string) string {
	safe := s != ""
	for _, char := range s {
		if !isShellSafe(char) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(char rune) bool {
	switch {
	case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z', char >= '0' && char <= '9':
		return true
	}
	switch char {
	case '-', '_', '.', '/', ':', '=', '+', ',', '@':
		return true
	}
	return false
}
