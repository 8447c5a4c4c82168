// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robofleet/robofleet/lib/config"
	"github.com/robofleet/robofleet/lib/policy"
	"github.com/robofleet/robofleet/lib/testutil"
)

// environment returns a lookup over a fixed map.
func environment(values map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		value, ok := values[name]
		return value, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	params := ConfigParams{}
	setup, err := params.load(environment(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if setup.Config.Environment != config.Development {
		t.Errorf("Environment = %s, want development", setup.Config.Environment)
	}
	if !reflect.DeepEqual(setup.Policy, policy.Default()) {
		t.Errorf("Policy = %v, want built-in default", setup.Policy)
	}
	if setup.PolicySource != PolicySourceBuiltIn {
		t.Errorf("PolicySource = %q, want %q", setup.PolicySource, PolicySourceBuiltIn)
	}
	if setup.Logger == nil {
		t.Error("Logger is nil")
	}
}

func TestLoadPolicyPrecedence(t *testing.T) {
	directory := t.TempDir()
	configFilePolicy := testutil.WriteFile(t, directory, "config-policy.jsonc", `{"nodes": ["master"]}`)
	flagPolicy := testutil.WriteFile(t, directory, "flag-policy.jsonc", `{"nodes": ["capture", "detection"]}`)

	listConfig := testutil.WriteFile(t, directory, "list.yaml", "policy: [io_reeman]\n")
	fileConfig := testutil.WriteFile(t, directory, "file.yaml", "policy: [io_reeman]\npolicy_file: "+configFilePolicy+"\n")

	tests := []struct {
		name       string
		params     ConfigParams
		env        map[string]string
		wantPolicy policy.Policy
		wantSource string
	}{
		{
			name:       "config list",
			params:     ConfigParams{ConfigFile: listConfig},
			wantPolicy: policy.Policy{"io_reeman"},
			wantSource: PolicySourceConfig,
		},
		{
			name:       "config policy file beats list",
			params:     ConfigParams{ConfigFile: fileConfig},
			wantPolicy: policy.Policy{"master"},
			wantSource: configFilePolicy,
		},
		{
			name:       "flag beats config",
			params:     ConfigParams{ConfigFile: fileConfig, PolicyFile: flagPolicy},
			wantPolicy: policy.Policy{"capture", "detection"},
			wantSource: flagPolicy,
		},
		{
			name:       "config from environment variable",
			env:        map[string]string{config.EnvironmentVariable: listConfig},
			wantPolicy: policy.Policy{"io_reeman"},
			wantSource: PolicySourceConfig,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setup, err := test.params.load(environment(test.env))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(setup.Policy, test.wantPolicy) {
				t.Errorf("Policy = %v, want %v", setup.Policy, test.wantPolicy)
			}
			if setup.PolicySource != test.wantSource {
				t.Errorf("PolicySource = %q, want %q", setup.PolicySource, test.wantSource)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	directory := t.TempDir()
	badPolicy := testutil.WriteFile(t, directory, "bad.jsonc", `{"nodes": "capture"}`)
	badConfig := testutil.WriteFile(t, directory, "bad.yaml", "environment: lab\n")

	tests := []struct {
		name         string
		params       ConfigParams
		wantCategory ErrorCategory
	}{
		{"missing config", ConfigParams{ConfigFile: filepath.Join(directory, "absent.yaml")}, CategoryNotFound},
		{"invalid config", ConfigParams{ConfigFile: badConfig}, CategoryValidation},
		{"bad log level flag", ConfigParams{LogLevel: "loud"}, CategoryValidation},
		{"missing policy", ConfigParams{PolicyFile: filepath.Join(directory, "absent.jsonc")}, CategoryNotFound},
		{"malformed policy", ConfigParams{PolicyFile: badPolicy}, CategoryValidation},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.params.load(environment(nil))
			var toolErr *ToolError
			if !errors.As(err, &toolErr) {
				t.Fatalf("error %v is not a ToolError", err)
			}
			if toolErr.Category != test.wantCategory {
				t.Errorf("Category = %q, want %q (err: %v)", toolErr.Category, test.wantCategory, err)
			}
		})
	}
}

func TestSetupCompose(t *testing.T) {
	params := ConfigParams{}
	setup, err := params.load(environment(map[string]string{"AMENT_PREFIX_PATH": "/robot/install:/opt/ros/jazzy"}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	result, err := setup.Compose()
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if result.Paths.WorkspaceRoot != "/robot/install/../../" {
		t.Errorf("WorkspaceRoot = %q", result.Paths.WorkspaceRoot)
	}
	if result.Fleet.Len() != len(policy.Default()) {
		t.Errorf("fleet has %d nodes, want %d", result.Fleet.Len(), len(policy.Default()))
	}

	setup.Policy = policy.Policy{"lidar"}
	_, err = setup.Compose()
	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
		t.Errorf("unknown ID error = %v, want validation ToolError", err)
	}
}
