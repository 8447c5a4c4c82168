// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/robofleet/robofleet/lib/catalog"
	"github.com/robofleet/robofleet/lib/schema/fleet"
	"github.com/robofleet/robofleet/lib/searchpath"
	"github.com/robofleet/robofleet/lib/testutil"
)

func testCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	descriptors := make([]fleet.NodeDescriptor, len(ids))
	for index, id := range ids {
		descriptors[index] = fleet.NodeDescriptor{
			ID:         id,
			Package:    "pkg_" + strings.ToLower(id),
			Executable: "run",
			Parameters: fleet.ParameterSet{"rank": fleet.Integer(int64(index))},
			Output:     fleet.OutputScreen,
			Restart:    fleet.RestartAlways,
		}
	}
	nodes, err := catalog.Build(descriptors...)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return nodes
}

func TestSelectPreservesPolicyOrder(t *testing.T) {
	nodes := testCatalog(t, "A", "B", "C")

	selected, err := Select(nodes, Policy{"C", "A", "B"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got, want := selected.IDs(), []string{"C", "A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	if selected.Nodes[0].Package != "pkg_c" {
		t.Errorf("first node package = %q, want pkg_c", selected.Nodes[0].Package)
	}
}

func TestSelectErrors(t *testing.T) {
	nodes := testCatalog(t, "A", "B", "C")

	tests := []struct {
		name   string
		policy Policy
		kind   fleet.ConfigurationErrorKind
		id     string
	}{
		{"unknown id", Policy{"A", "Z", "B"}, fleet.UnknownPolicyID, "Z"},
		{"unknown id first", Policy{"Z"}, fleet.UnknownPolicyID, "Z"},
		{"duplicate id", Policy{"A", "B", "A"}, fleet.DuplicatePolicyID, "A"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			selected, err := Select(nodes, test.policy)
			if err == nil {
				t.Fatal("Select should fail")
			}
			if selected.Len() != 0 {
				t.Errorf("Select returned %d nodes alongside the error", selected.Len())
			}
			var configErr *fleet.ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("error %v is not a *fleet.ConfigurationError", err)
			}
			if configErr.Kind != test.kind || configErr.ID != test.id {
				t.Errorf("got kind %q id %q, want %q %q", configErr.Kind, configErr.ID, test.kind, test.id)
			}
		})
	}
}

func TestSelectExcludesUnlistedAndIsIdempotent(t *testing.T) {
	nodes := testCatalog(t, "A", "B", "C", "D", "E")

	selected, err := Select(nodes, Policy{"D", "B"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for _, excluded := range []string{"A", "C", "E"} {
		if _, found := selected.Lookup(excluded); found {
			t.Errorf("fleet contains excluded node %s", excluded)
		}
	}

	again, err := Select(nodes, Policy(selected.IDs()))
	if err != nil {
		t.Fatalf("re-Select: %v", err)
	}
	if !reflect.DeepEqual(again, selected) {
		t.Errorf("re-selecting changed the fleet:\n got %+v\nwant %+v", again, selected)
	}
}

func TestSelectEmptyPolicy(t *testing.T) {
	selected, err := Select(testCatalog(t, "A"), Policy{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if selected.Len() != 0 {
		t.Errorf("Len() = %d, want 0", selected.Len())
	}
}

func TestSelectReturnsCopies(t *testing.T) {
	nodes := testCatalog(t, "A")
	selected, err := Select(nodes, Policy{"A"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	selected.Nodes[0].Parameters["rank"] = fleet.Integer(99)

	descriptor, _ := nodes.Lookup("A")
	if rank, _ := descriptor.Parameters["rank"].AsInteger(); rank != 0 {
		t.Errorf("catalog mutated through selected fleet: rank = %d", rank)
	}
}

func TestCheckReportsEveryProblem(t *testing.T) {
	nodes := testCatalog(t, "A", "B")

	if err := Check(nodes, Policy{"B", "A"}); err != nil {
		t.Errorf("Check on a valid policy: %v", err)
	}

	err := Check(nodes, Policy{"X", "A", "A", "Y"})
	if err == nil {
		t.Fatal("Check should fail")
	}
	for _, fragment := range []string{`"X"`, `"Y"`, `"A" more than once`} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %s", err, fragment)
		}
	}
}

func TestDefaultPolicyAgainstDefaultCatalog(t *testing.T) {
	nodes, err := catalog.Default(searchpath.Resolve("/ws/install"))
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	selected, err := Select(nodes, Default())
	if err != nil {
		t.Fatalf("Select(Default()): %v", err)
	}
	if selected.Len() != 10 {
		t.Errorf("Len() = %d, want 10", selected.Len())
	}
	if selected.Nodes[0].ID != catalog.RosapiNode {
		t.Errorf("first node = %s, want %s", selected.Nodes[0].ID, catalog.RosapiNode)
	}

	want := []string{catalog.Detection, catalog.KeyboardInput, catalog.Master, catalog.Telemetry, catalog.WifiControl}
	if got := Default().Disabled(nodes); !reflect.DeepEqual(got, want) {
		t.Errorf("Disabled() = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Policy
		wantErr string
	}{
		{
			name:  "plain json",
			input: `{"nodes": ["capture", "io_reeman"]}`,
			want:  Policy{"capture", "io_reeman"},
		},
		{
			name: "comments and trailing commas",
			input: `{
				// vision only
				"nodes": [
					"capture", /* camera */
					"hand_track",
				],
			}`,
			want: Policy{"capture", "hand_track"},
		},
		{
			name:  "empty list",
			input: `{"nodes": []}`,
			want:  Policy{},
		},
		{
			name:    "missing nodes",
			input:   `{}`,
			wantErr: `missing "nodes"`,
		},
		{
			name:    "misspelled key",
			input:   `{"node": ["capture"]}`,
			wantErr: "unknown field",
		},
		{
			name:    "wrong type",
			input:   `{"nodes": "capture"}`,
			wantErr: "parsing policy",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.input))
			if test.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), test.wantErr) {
					t.Fatalf("Parse error = %v, want containing %q", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Parse = %v, want %v", got, test.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	directory := t.TempDir()
	path := testutil.WriteFile(t, directory, "robot.jsonc", `{"nodes": ["master"]} // enable master only`)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(got, Policy{"master"}) {
		t.Errorf("ReadFile = %v", got)
	}

	_, err = ReadFile(filepath.Join(directory, "absent.jsonc"))
	if err == nil || !strings.Contains(err.Error(), "absent.jsonc") {
		t.Errorf("ReadFile of a missing file: error = %v", err)
	}
}
