// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/robofleet/robofleet/lib/codec"
)

// ParameterType identifies which member of the [ParameterValue] union
// is populated.
type ParameterType string

const (
	ParameterBool    ParameterType = "bool"
	ParameterInteger ParameterType = "integer"
	ParameterDouble  ParameterType = "double"
	ParameterString  ParameterType = "string"

	// ParameterPath is a filesystem path. It is carried as text like
	// ParameterString but stays distinguishable so a supervisor can
	// check existence or rewrite prefixes without guessing which
	// strings are paths.
	ParameterPath ParameterType = "path"
)

// Valid reports whether t is one of the known parameter types.
func (t ParameterType) Valid() bool {
	switch t {
	case ParameterBool, ParameterInteger, ParameterDouble, ParameterString, ParameterPath:
		return true
	}
	return false
}

// ParameterValue is a typed scalar handed to a node as configuration.
// The zero value has no type and fails [ParameterValue.Validate].
type ParameterValue struct {
	kind    ParameterType
	boolean bool
	integer int64
	double  float64
	text    string
}

// Bool returns a boolean parameter.
func Bool(value bool) ParameterValue {
	return ParameterValue{kind: ParameterBool, boolean: value}
}

// Integer returns an integer parameter.
func Integer(value int64) ParameterValue {
	return ParameterValue{kind: ParameterInteger, integer: value}
}

// Double returns a floating-point parameter. A double stays a double
// through every encoding, even when the value is integral (2.0).
func Double(value float64) ParameterValue {
	return ParameterValue{kind: ParameterDouble, double: value}
}

// String returns a string parameter.
func String(value string) ParameterValue {
	return ParameterValue{kind: ParameterString, text: value}
}

// Path returns a filesystem path parameter.
func Path(value string) ParameterValue {
	return ParameterValue{kind: ParameterPath, text: value}
}

// Type returns which union member is populated.
func (v ParameterValue) Type() ParameterType { return v.kind }

// AsBool returns the boolean value and whether v is a bool.
func (v ParameterValue) AsBool() (bool, bool) {
	return v.boolean, v.kind == ParameterBool
}

// AsInteger returns the integer value and whether v is an integer.
func (v ParameterValue) AsInteger() (int64, bool) {
	return v.integer, v.kind == ParameterInteger
}

// AsDouble returns the floating-point value and whether v is a double.
func (v ParameterValue) AsDouble() (float64, bool) {
	return v.double, v.kind == ParameterDouble
}

// AsString returns the text and whether v is a string or a path.
func (v ParameterValue) AsString() (string, bool) {
	return v.text, v.kind == ParameterString || v.kind == ParameterPath
}

// Interface returns the value as a plain Go value (bool, int64, float64
// or string). Path values return their string.
func (v ParameterValue) Interface() any {
	switch v.kind {
	case ParameterBool:
		return v.boolean
	case ParameterInteger:
		return v.integer
	case ParameterDouble:
		return v.double
	case ParameterString, ParameterPath:
		return v.text
	}
	return nil
}

// String formats the value the way a ROS 2 command line expects it
// after "-p name:=". Doubles always carry a decimal point or exponent
// so they are not re-read as integers.
func (v ParameterValue) String() string {
	switch v.kind {
	case ParameterBool:
		return strconv.FormatBool(v.boolean)
	case ParameterInteger:
		return strconv.FormatInt(v.integer, 10)
	case ParameterDouble:
		return FormatDouble(v.double)
	case ParameterString, ParameterPath:
		return v.text
	}
	return ""
}

// FormatDouble renders f in the shortest form that still parses back as
// a floating-point literal.
func FormatDouble(f float64) string {
	if math.IsInf(f, 1) {
		return ".inf"
	}
	if math.IsInf(f, -1) {
		return "-.inf"
	}
	if math.IsNaN(f) {
		return ".nan"
	}
	formatted := strconv.FormatFloat(f, 'g', -1, 64)
	for _, r := range formatted {
		if r == '.' || r == 'e' || r == 'E' {
			return formatted
		}
	}
	return formatted + ".0"
}

// Validate reports whether v holds a known type.
func (v ParameterValue) Validate() error {
	if !v.kind.Valid() {
		return fmt.Errorf("unknown parameter type %q", v.kind)
	}
	return nil
}

// Equal reports whether two values have the same type and payload.
func (v ParameterValue) Equal(other ParameterValue) bool {
	return v == other
}

// parameterWire is the serialized form of ParameterValue for both JSON
// and CBOR. Exactly one payload field is meaningful, selected by Type.
type parameterWire struct {
	Type    ParameterType `json:"type"`
	Bool    bool          `json:"bool,omitempty"`
	Integer int64         `json:"integer,omitempty"`
	Double  float64       `json:"double,omitempty"`
	Text    string        `json:"text,omitempty"`
}

func (v ParameterValue) toWire() parameterWire {
	return parameterWire{
		Type:    v.kind,
		Bool:    v.boolean,
		Integer: v.integer,
		Double:  v.double,
		Text:    v.text,
	}
}

func (w parameterWire) toValue() (ParameterValue, error) {
	switch w.Type {
	case ParameterBool:
		return Bool(w.Bool), nil
	case ParameterInteger:
		return Integer(w.Integer), nil
	case ParameterDouble:
		return Double(w.Double), nil
	case ParameterString:
		return String(w.Text), nil
	case ParameterPath:
		return Path(w.Text), nil
	}
	return ParameterValue{}, fmt.Errorf("unknown parameter type %q", w.Type)
}

// MarshalJSON encodes v as {"type": ..., "<member>": ...}.
func (v ParameterValue) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.toWire())
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (v *ParameterValue) UnmarshalJSON(data []byte) error {
	var wire parameterWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	value, err := wire.toValue()
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalCBOR encodes v with the same field names as MarshalJSON.
func (v ParameterValue) MarshalCBOR() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return codec.Marshal(v.toWire())
}

// UnmarshalCBOR decodes the form written by MarshalCBOR.
func (v *ParameterValue) UnmarshalCBOR(data []byte) error {
	var wire parameterWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return err
	}
	value, err := wire.toValue()
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// ParameterSet maps parameter names, unique within one node, to values.
// Types may be mixed freely within one set.
type ParameterSet map[string]ParameterValue

// Names returns the parameter names in sorted order.
func (s ParameterSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of s. ParameterValue has no reference members,
// so a shallow map copy is a deep copy. Clone of nil is nil.
func (s ParameterSet) Clone() ParameterSet {
	if s == nil {
		return nil
	}
	clone := make(ParameterSet, len(s))
	for name, value := range s {
		clone[name] = value
	}
	return clone
}
