// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams builds a flag set bound to the tagged fields of params,
// a pointer to the command's parameter struct. A malformed struct is a
// programming error and panics.
//
//	var params planParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("plan", &params)
//	    },
//	    Run: func(args []string) error {
//	        // params is populated here
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag on flagSet for every field of *params that
// carries a flag tag:
//
//	flag:"params-dir"     long name
//	flag:"verbose,v"      long name and shorthand
//	desc:"..."            help text
//	default:"..."         default, parsed as the field's type
//
// Fields may be string, bool, int or []string (comma-separated
// default). Embedded structs such as [ConfigParams] and [JSONOutput]
// contribute their own flags.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	pointer := reflect.ValueOf(params)
	if pointer.Kind() != reflect.Pointer || pointer.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(pointer.Elem(), flagSet)
}

func bindStruct(value reflect.Value, flagSet *pflag.FlagSet) error {
	for index := range value.NumField() {
		field := value.Type().Field(index)
		fieldValue := value.Field(index)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		binding := flagBinding{description: field.Tag.Get("desc"), defaultValue: field.Tag.Get("default")}
		binding.name, binding.shorthand, _ = strings.Cut(tag, ",")

		if err := binding.bind(fieldValue.Addr().Interface(), flagSet); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// flagBinding is one parsed flag tag.
type flagBinding struct {
	name, shorthand, description, defaultValue string
}

func (b flagBinding) bind(target any, flagSet *pflag.FlagSet) error {
	switch target := target.(type) {
	case *string:
		flagSet.StringVarP(target, b.name, b.shorthand, b.defaultValue, b.description)
	case *bool:
		defaultValue, err := parseDefault(b, strconv.ParseBool)
		if err != nil {
			return err
		}
		flagSet.BoolVarP(target, b.name, b.shorthand, defaultValue, b.description)
	case *int:
		defaultValue, err := parseDefault(b, strconv.Atoi)
		if err != nil {
			return err
		}
		flagSet.IntVarP(target, b.name, b.shorthand, defaultValue, b.description)
	case *[]string:
		var defaultValue []string
		if b.defaultValue != "" {
			defaultValue = strings.Split(b.defaultValue, ",")
		}
		flagSet.StringSliceVarP(target, b.name, b.shorthand, defaultValue, b.description)
	default:
		return fmt.Errorf("unsupported type %s for flag --%s", reflect.TypeOf(target).Elem(), b.name)
	}
	return nil
}

// parseDefault parses the binding's default with parse, or returns the zero
// value when there is none.
func parseDefault[T any](b flagBinding, parse func(string) (T, error)) (T, error) {
	var zero T
	if b.defaultValue == "" {
		return zero, nil
	}
	value, err := parse(b.defaultValue)
	if err != nil {
		return zero, fmt.Errorf("default for --%s: %w", b.name, err)
	}
	return value, nil
}
