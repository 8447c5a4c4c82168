// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/robofleet/robofleet/lib/schema/fleet"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("usage: robofleet inspect <file>")
	if err.Error() != "usage: robofleet inspect <file>" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q, want %q", err.Category, CategoryValidation)
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("policy file %s does not exist", "robot.jsonc").
		WithHint("Pass --policy with an existing file.")

	want := "policy file robot.jsonc does not exist\n\nPass --policy with an existing file."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_UnwrapsToConfigurationError(t *testing.T) {
	inner := &fleet.ConfigurationError{Kind: fleet.UnknownPolicyID, ID: "lidar"}
	wrapped := fmt.Errorf("composing: %w", categorize(fmt.Errorf("selecting fleet: %w", inner)))

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As did not find ToolError")
	}
	if toolErr.Category != CategoryValidation {
		t.Errorf("Category = %q, want %q", toolErr.Category, CategoryValidation)
	}
	if toolErr.Hint == "" {
		t.Error("unknown policy ID should carry a hint")
	}

	var configErr *fleet.ConfigurationError
	if !errors.As(wrapped, &configErr) || configErr.ID != "lidar" {
		t.Errorf("ConfigurationError not reachable through ToolError: %v", wrapped)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"unknown policy id", &fleet.ConfigurationError{Kind: fleet.UnknownPolicyID, ID: "x"}, CategoryValidation},
		{"duplicate policy id", &fleet.ConfigurationError{Kind: fleet.DuplicatePolicyID, ID: "x"}, CategoryValidation},
		{"duplicate catalog id", &fleet.ConfigurationError{Kind: fleet.DuplicateCatalogID, ID: "x"}, CategoryInternal},
		{"other", errors.New("disk on fire"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var toolErr *ToolError
			if !errors.As(categorize(test.err), &toolErr) || toolErr.Category != test.want {
				t.Errorf("categorize(%v) category = %v, want %q", test.err, toolErr, test.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 2 {
		t.Errorf("ExitError does not report code 2")
	}
}
