// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
)

// Type identifies the value type of a schema field.
//
// Fields are either scalars or flat lists of scalars. Nested objects are not
// part of the output contract this package describes.
type Type int

const (
	TypeInvalid Type = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeStringList
	TypeIntList
	TypeFloatList
)

// String returns a human-readable name for the type, as used in format
// instructions and failure details.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeStringList:
		return "list of string"
	case TypeIntList:
		return "list of int"
	case TypeFloatList:
		return "list of float"
	default:
		return "invalid"
	}
}

// IsList reports whether the type is a list of scalars.
func (t Type) IsList() bool {
	switch t {
	case TypeStringList, TypeIntList, TypeFloatList:
		return true
	default:
		return false
	}
}

// Elem returns the element type of a list type, or [TypeInvalid] for scalars.
func (t Type) Elem() Type {
	switch t {
	case TypeStringList:
		return TypeString
	case TypeIntList:
		return TypeInt
	case TypeFloatList:
		return TypeFloat
	default:
		return TypeInvalid
	}
}

// Field describes a single named field of the expected output.
type Field struct {
	// Name is the key the model must emit for this field.
	Name string

	// Type is the expected value type.
	Type Type

	// Description tells the model what belongs in the field. It is embedded
	// into the format instructions verbatim.
	Description string

	// Constraints are evaluated in declaration order after type checking.
	Constraints []Constraint
}

// Schema is an ordered, immutable description of expected model output.
//
// Build one with [New]; the zero value is not usable.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New builds a [Schema] from the given fields.
//
// Field order is preserved and significant: presence checks and constraint
// evaluation follow declaration order. Duplicate field names, invalid types,
// and malformed constraints are construction errors.
func New(fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema must declare at least one field")
	}

	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: name must be non-empty", i)
		}
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("duplicate field name %q", f.Name)
		}
		if f.Type == TypeInvalid || f.Type > TypeFloatList {
			return nil, fmt.Errorf("field %q: invalid type", f.Name)
		}
		for _, c := range f.Constraints {
			if err := c.wellFormed(); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
		}

		s.index[f.Name] = i
		s.fields = append(s.fields, copyField(f))
	}

	return s, nil
}

// Must is a helper that panics when err is non-nil. It is intended for
// schemas built from literals at startup.
func Must(s *Schema, err error) *Schema {
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Names returns the declared field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the named field descriptor and whether it is declared.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return copyField(s.fields[i]), true
}

// Fields returns a copy of the declared fields in declaration order.
// Mutating the returned slice does not affect the schema.
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	for i, f := range s.fields {
		fields[i] = copyField(f)
	}
	return fields
}

// copyField copies a field so callers cannot alias the schema's constraint
// slices. Constraint funcs themselves are shared, they are stateless.
func copyField(f Field) Field {
	out := f
	if len(f.Constraints) > 0 {
		out.Constraints = make([]Constraint, len(f.Constraints))
		copy(out.Constraints, f.Constraints)
	}
	return out
}
