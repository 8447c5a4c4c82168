// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func validDescriptor() NodeDescriptor {
	return NodeDescriptor{
		ID:         "ds4_driver",
		Package:    "ds4_driver",
		Executable: "ds4_driver_node.py",
		Output:     OutputScreen,
		Restart:    RestartAlways,
		Remaps:     []Remap{{From: "/status", To: "/ds4/status"}},
	}
}

func TestNodeDescriptorValidateAcceptsValid(t *testing.T) {
	if err := validDescriptor().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNodeDescriptorValidateProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NodeDescriptor)
		want   string
	}{
		{"missing id", func(n *NodeDescriptor) { n.ID = "" }, "id is required"},
		{"missing package", func(n *NodeDescriptor) { n.Package = "" }, "package is required"},
		{"missing executable", func(n *NodeDescriptor) { n.Executable = "" }, "executable is required"},
		{"bad output", func(n *NodeDescriptor) { n.Output = "file" }, `output mode "file"`},
		{"bad restart", func(n *NodeDescriptor) { n.Restart = "on-failure" }, `restart policy "on-failure"`},
		{"empty parameter name", func(n *NodeDescriptor) {
			n.Parameters = ParameterSet{"": Bool(true)}
		}, "parameter name is empty"},
		{"untyped parameter", func(n *NodeDescriptor) {
			n.Parameters = ParameterSet{"x": {}}
		}, `parameter "x"`},
		{"empty remap topic", func(n *NodeDescriptor) {
			n.Remaps = append(n.Remaps, Remap{From: "/joy"})
		}, "remaps[1]: both topics are required"},
		{"duplicate remap source", func(n *NodeDescriptor) {
			n.Remaps = append(n.Remaps, Remap{From: "/status", To: "/other"})
		}, `source topic "/status" is remapped more than once`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			descriptor := validDescriptor()
			test.mutate(&descriptor)

			err := descriptor.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not contain %q", err, test.want)
			}

			var configErr *ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("error %v is not a *ConfigurationError", err)
			}
			if configErr.Kind != InvalidDescriptor {
				t.Errorf("kind: got %q, want %q", configErr.Kind, InvalidDescriptor)
			}
		})
	}
}

func TestNodeDescriptorValidateReportsAllProblems(t *testing.T) {
	descriptor := NodeDescriptor{ID: "broken"}
	err := descriptor.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"package", "executable", "output mode", "restart policy"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error %q does not mention %s", err, want)
		}
	}
}

func TestNodeDescriptorCloneIsDeep(t *testing.T) {
	original := validDescriptor()
	original.Parameters = ParameterSet{"rate": Integer(30)}

	clone := original.Clone()
	clone.Remaps[0].To = "/changed"
	clone.Parameters["rate"] = Integer(60)

	if original.Remaps[0].To != "/ds4/status" {
		t.Errorf("original remap mutated: %+v", original.Remaps[0])
	}
	if rate, _ := original.Parameters["rate"].AsInteger(); rate != 30 {
		t.Errorf("original parameter mutated: rate = %d", rate)
	}
}

func TestPrefixArgs(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", nil},
		{"   ", nil},
		{"nice -n -10", []string{"nice", "-n", "-10"}},
		{"gnome-terminal --", []string{"gnome-terminal", "--"}},
	}
	for _, test := range tests {
		got := NodeDescriptor{ExecutionPrefix: test.prefix}.PrefixArgs()
		if strings.Join(got, "|") != strings.Join(test.want, "|") || (got == nil) != (test.want == nil) {
			t.Errorf("PrefixArgs(%q) = %#v, want %#v", test.prefix, got, test.want)
		}
	}
}

func TestEnumsRoundtripAsText(t *testing.T) {
	descriptor := validDescriptor()
	data, err := json.Marshal(descriptor)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"output":"screen"`) || !strings.Contains(string(data), `"restart":"always"`) {
		t.Errorf("enums not encoded as text: %s", data)
	}

	var decoded NodeDescriptor
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Output != OutputScreen || decoded.Restart != RestartAlways {
		t.Errorf("decoded enums: %q %q", decoded.Output, decoded.Restart)
	}

	if err := json.Unmarshal([]byte(`{"id":"x","output":"tty","restart":"never"}`), &decoded); err == nil {
		t.Error("unknown output mode should fail to decode")
	}
}

func TestRemapString(t *testing.T) {
	if got := (Remap{From: "/status", To: "/ds4/status"}).String(); got != "/status:=/ds4/status" {
		t.Errorf("Remap.String() = %q", got)
	}
}
