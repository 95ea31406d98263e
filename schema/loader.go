// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// fileSchema is the YAML document shape for [Load].
type fileSchema struct {
	Fields []fileField `yaml:"fields"`
}

type fileField struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Constraints []string `yaml:"constraints"`
}

var typeNames = map[string]Type{
	"string":      TypeString,
	"int":         TypeInt,
	"float":       TypeFloat,
	"bool":        TypeBool,
	"string_list": TypeStringList,
	"int_list":    TypeIntList,
	"float_list":  TypeFloatList,
}

// Load builds a [Schema] from a YAML document of the form:
//
//	fields:
//	  - name: words
//	    type: string_list
//	    description: distinct words found in the text
//	    constraints: [non_empty, no_numeric_prefix, max_items=10]
//
// Constraints refer to the built-ins by name; max_items and one_of take an
// argument after "=" (one_of values are separated by "|").
func Load(data []byte) (*Schema, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema document: %w", err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for _, ff := range doc.Fields {
		typ, ok := typeNames[ff.Type]
		if !ok {
			return nil, fmt.Errorf("field %q: unknown type %q", ff.Name, ff.Type)
		}

		constraints := make([]Constraint, 0, len(ff.Constraints))
		for _, name := range ff.Constraints {
			c, err := builtinConstraint(name)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", ff.Name, err)
			}
			constraints = append(constraints, c)
		}

		fields = append(fields, Field{
			Name:        ff.Name,
			Type:        typ,
			Description: ff.Description,
			Constraints: constraints,
		})
	}

	return New(fields...)
}

// LoadFile reads path and calls [Load].
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return Load(data)
}

// builtinConstraint resolves a constraint spelled in a YAML document.
func builtinConstraint(spec string) (Constraint, error) {
	name, arg, hasArg := strings.Cut(spec, "=")

	switch name {
	case "non_empty":
		return NonEmpty(), nil
	case "ends_with_period":
		return EndsWithPeriod(), nil
	case "lower_case":
		return LowerCase(), nil
	case "no_numeric_prefix":
		return NoNumericPrefix(), nil
	case "max_items":
		if !hasArg {
			return Constraint{}, fmt.Errorf("constraint max_items requires an argument, eg. max_items=5")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Constraint{}, fmt.Errorf("constraint max_items: invalid argument %q", arg)
		}
		return MaxItems(n), nil
	case "one_of":
		if !hasArg || arg == "" {
			return Constraint{}, fmt.Errorf("constraint one_of requires arguments, eg. one_of=a|b")
		}
		return OneOf(strings.Split(arg, "|")...), nil
	default:
		return Constraint{}, fmt.Errorf("unknown constraint %q", spec)
	}
}
