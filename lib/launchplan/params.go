// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package launchplan

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robofleet/robofleet/lib/schema/fleet"
)

// RenderParams encodes parameters as a ROS 2 params file for node id.
// Names are sorted so the output is stable.
func RenderParams(id string, parameters fleet.ParameterSet) ([]byte, error) {
	values := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range parameters.Names() {
		value, err := scalarNode(parameters[name])
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		values.Content = append(values.Content, stringNode(name), value)
	}

	document := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			stringNode(id),
			{
				Kind:    yaml.MappingNode,
				Content: []*yaml.Node{stringNode("ros__parameters"), values},
			},
		},
	}

	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}
	return buffer.Bytes(), nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// scalarNode tags every value explicitly. The encoder drops a tag the
// plain value already implies and quotes a string that would resolve to
// another type.
func scalarNode(value fleet.ParameterValue) (*yaml.Node, error) {
	switch value.Type() {
	case fleet.ParameterBool:
		boolean, _ := value.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(boolean)}, nil
	case fleet.ParameterInteger:
		integer, _ := value.AsInteger()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(integer, 10)}, nil
	case fleet.ParameterDouble:
		double, _ := value.AsDouble()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: fleet.FormatDouble(double)}, nil
	case fleet.ParameterString, fleet.ParameterPath:
		text, _ := value.AsString()
		return stringNode(text), nil
	}
	return nil, value.Validate()
}
