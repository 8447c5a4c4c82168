// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy decides which catalog nodes run and in what order.
//
// A [Policy] is an ordered list of node IDs. Listing an ID enables the
// node; leaving it out disables it without touching the catalog. The
// list order is the start order handed to the supervisor.
//
// The typical flow:
//
//  1. [Default], or [Parse]/[ReadFile] for a JSONC policy file
//  2. [Select]: resolve the IDs against a catalog into a [fleet.Fleet]
//
// Select stops at the first unknown or repeated ID and returns no fleet.
// [Check] runs the same checks but reports every problem at once, which
// is what an operator editing a policy file wants to see.
//
// Policy files are JSON extended with comments and trailing commas:
//
//	{
//	    // telemetry stays off until the new bucket exists
//	    "nodes": ["rosapi_node", "capture", "io_reeman",],
//	}
package policy
