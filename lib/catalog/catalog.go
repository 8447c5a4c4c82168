// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"sort"

	"github.com/robofleet/robofleet/lib/schema/fleet"
)

// Catalog maps node IDs to descriptors. It is read-only after Build and
// hands out copies, so callers cannot alter it through a returned
// descriptor.
type Catalog struct {
	nodes map[string]fleet.NodeDescriptor
}

// Build validates descriptors and indexes them by ID. It returns the
// first problem found: an invalid descriptor or a duplicate ID, both as
// *fleet.ConfigurationError. No partial catalog is returned.
func Build(descriptors ...fleet.NodeDescriptor) (*Catalog, error) {
	nodes := make(map[string]fleet.NodeDescriptor, len(descriptors))
	for index, descriptor := range descriptors {
		if err := descriptor.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", index, err)
		}
		if _, exists := nodes[descriptor.ID]; exists {
			return nil, &fleet.ConfigurationError{Kind: fleet.DuplicateCatalogID, ID: descriptor.ID}
		}
		nodes[descriptor.ID] = descriptor.Clone()
	}
	return &Catalog{nodes: nodes}, nil
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.nodes) }

// Has reports whether id is defined.
func (c *Catalog) Has(id string) bool {
	_, ok := c.nodes[id]
	return ok
}

// Lookup returns a copy of the descriptor for id.
func (c *Catalog) Lookup(id string) (fleet.NodeDescriptor, bool) {
	descriptor, ok := c.nodes[id]
	if !ok {
		return fleet.NodeDescriptor{}, false
	}
	return descriptor.Clone(), true
}

// IDs returns every defined ID in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Descriptors returns copies of every descriptor, sorted by ID.
func (c *Catalog) Descriptors() []fleet.NodeDescriptor {
	descriptors := make([]fleet.NodeDescriptor, 0, len(c.nodes))
	for _, id := range c.IDs() {
		descriptors = append(descriptors, c.nodes[id].Clone())
	}
	return descriptors
}

// Default builds the robot's catalog for paths.
func Default(paths fleet.ConfigPaths) (*Catalog, error) {
	return Build(Definitions(paths)...)
}
