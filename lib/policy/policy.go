// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/robofleet/robofleet/lib/catalog"
	"github.com/robofleet/robofleet/lib/schema/fleet"
)

// Policy is the ordered list of enabled node IDs.
type Policy []string

// Default returns the robot's standard policy. Telemetry, master,
// keyboard_input, wifi_control and detection are catalogued but off.
func Default() Policy {
	return Policy{
		catalog.RosapiNode,
		catalog.WebVideoServer,
		catalog.UIServer,
		catalog.RosbridgeWebsocket,
		catalog.AudioController,
		catalog.Capture,
		catalog.HandTrack,
		catalog.FaceDetection,
		catalog.IOReeman,
		catalog.DS4Driver,
	}
}

// Enabled reports whether p lists id.
func (p Policy) Enabled(id string) bool {
	for _, listed := range p {
		if listed == id {
			return true
		}
	}
	return false
}

// Disabled returns the catalog IDs p leaves out, sorted.
func (p Policy) Disabled(nodes *catalog.Catalog) []string {
	var disabled []string
	for _, id := range nodes.IDs() {
		if !p.Enabled(id) {
			disabled = append(disabled, id)
		}
	}
	return disabled
}

// Select resolves p against nodes. The returned fleet holds copies of
// the catalog descriptors in exactly p's order. An ID missing from the
// catalog or listed twice aborts selection with a
// *fleet.ConfigurationError; no partial fleet is returned.
func Select(nodes *catalog.Catalog, p Policy) (fleet.Fleet, error) {
	selected := make([]fleet.NodeDescriptor, 0, len(p))
	seen := make(map[string]bool, len(p))
	for _, id := range p {
		if seen[id] {
			return fleet.Fleet{}, &fleet.ConfigurationError{Kind: fleet.DuplicatePolicyID, ID: id}
		}
		seen[id] = true

		descriptor, ok := nodes.Lookup(id)
		if !ok {
			return fleet.Fleet{}, &fleet.ConfigurationError{Kind: fleet.UnknownPolicyID, ID: id}
		}
		selected = append(selected, descriptor)
	}
	return fleet.Fleet{Nodes: selected}, nil
}

// Check reports every unknown or repeated ID in p, joined. Returns nil
// when Select would succeed.
func Check(nodes *catalog.Catalog, p Policy) error {
	var problems []error
	seen := make(map[string]bool, len(p))
	for _, id := range p {
		if seen[id] {
			problems = append(problems, &fleet.ConfigurationError{Kind: fleet.DuplicatePolicyID, ID: id})
			continue
		}
		seen[id] = true
		if !nodes.Has(id) {
			problems = append(problems, &fleet.ConfigurationError{Kind: fleet.UnknownPolicyID, ID: id})
		}
	}
	return errors.Join(problems...)
}

// file is the on-disk policy document.
type file struct {
	Nodes Policy `json:"nodes"`
}

// Parse strips JSONC comments and trailing commas from data and decodes
// a policy document. Unknown top-level fields are rejected so a
// misspelled "nodes" key does not silently produce an empty policy.
func Parse(data []byte) (Policy, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()

	var document file
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("parsing policy: %w", err)
	}
	if document.Nodes == nil {
		return nil, fmt.Errorf("parsing policy: missing \"nodes\" list")
	}
	return document.Nodes, nil
}

// ReadFile reads and parses a JSONC policy file.
func ReadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}
