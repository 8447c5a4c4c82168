// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import "fmt"

// ConfigurationErrorKind classifies a static definition defect.
type ConfigurationErrorKind string

const (
	// DuplicateCatalogID: two catalog descriptors share an ID.
	DuplicateCatalogID ConfigurationErrorKind = "duplicate-catalog-id"

	// UnknownPolicyID: a policy names an ID the catalog does not define.
	UnknownPolicyID ConfigurationErrorKind = "unknown-policy-id"

	// DuplicatePolicyID: a policy lists the same ID more than once.
	DuplicatePolicyID ConfigurationErrorKind = "duplicate-policy-id"

	// InvalidDescriptor: a descriptor violates its own invariants
	// (missing fields, unknown enum values, duplicate remap sources).
	InvalidDescriptor ConfigurationErrorKind = "invalid-descriptor"
)

// ConfigurationError reports a defect in the catalog or policy
// definitions. Composition aborts on the first one; nothing is dropped
// or substituted. Use errors.As to recover the offending ID:
//
//	var configErr *fleet.ConfigurationError
//	if errors.As(err, &configErr) {
//	    logger.Error("bad fleet definition", "kind", configErr.Kind, "id", configErr.ID)
//	}
type ConfigurationError struct {
	Kind ConfigurationErrorKind

	// ID is the offending node ID. It may be empty for an
	// InvalidDescriptor whose ID field is itself missing.
	ID string

	// Detail is a human-readable explanation, set for InvalidDescriptor.
	Detail string
}

func (e *ConfigurationError) Error() string {
	switch e.Kind {
	case DuplicateCatalogID:
		return fmt.Sprintf("catalog defines node %q more than once", e.ID)
	case UnknownPolicyID:
		return fmt.Sprintf("policy enables node %q which is not in the catalog", e.ID)
	case DuplicatePolicyID:
		return fmt.Sprintf("policy lists node %q more than once", e.ID)
	case InvalidDescriptor:
		if e.ID == "" {
			return fmt.Sprintf("invalid node descriptor: %s", e.Detail)
		}
		return fmt.Sprintf("invalid node descriptor %q: %s", e.ID, e.Detail)
	}
	return fmt.Sprintf("fleet configuration error (%s) for node %q", e.Kind, e.ID)
}
