// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/outparse/schema"
)

func TestNew_FieldOrder(t *testing.T) {
	s, err := schema.New(
		schema.Field{Name: "words", Type: schema.TypeStringList, Description: "distinct words"},
		schema.Field{Name: "reasons", Type: schema.TypeStringList, Description: "one reason per word"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"words", "reasons"}
	if diff := cmp.Diff(want, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestNew_DuplicateNames(t *testing.T) {
	_, err := schema.New(
		schema.Field{Name: "words", Type: schema.TypeStringList},
		schema.Field{Name: "words", Type: schema.TypeString},
	)
	if err == nil {
		t.Fatal("want error for duplicate field names")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got %q", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := map[string]struct {
		fields []schema.Field
	}{
		"no fields":    {},
		"empty name":   {fields: []schema.Field{{Type: schema.TypeString}}},
		"invalid type": {fields: []schema.Field{{Name: "x"}}},
		"constraint with both funcs": {fields: []schema.Field{{
			Name: "x",
			Type: schema.TypeString,
			Constraints: []schema.Constraint{{
				Name:  "broken",
				Check: func(any) error { return nil },
				Apply: func(v any) any { return v },
			}},
		}}},
		"constraint with no funcs": {fields: []schema.Field{{
			Name:        "x",
			Type:        schema.TypeString,
			Constraints: []schema.Constraint{{Name: "empty"}},
		}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := schema.New(tt.fields...); err == nil {
				t.Error("want construction error")
			}
		})
	}
}

func TestSchema_Immutable(t *testing.T) {
	s := schema.Must(schema.New(
		schema.Field{Name: "words", Type: schema.TypeStringList, Constraints: []schema.Constraint{schema.NonEmpty()}},
	))

	fields := s.Fields()
	fields[0].Name = "mutated"
	fields[0].Constraints[0] = schema.Constraint{}

	got, ok := s.Field("words")
	if !ok {
		t.Fatal("field words disappeared after mutating the returned copy")
	}
	if got.Name != "words" {
		t.Errorf("Field name = %q, want words", got.Name)
	}
	if len(got.Constraints) != 1 || got.Constraints[0].Check == nil {
		t.Error("constraints were mutated through the returned copy")
	}
}

func TestSchema_FieldLookup(t *testing.T) {
	s := schema.Must(schema.New(
		schema.Field{Name: "answer", Type: schema.TypeString},
	))

	if _, ok := s.Field("answer"); !ok {
		t.Error("Field(answer) not found")
	}
	if _, ok := s.Field("missing"); ok {
		t.Error("Field(missing) unexpectedly found")
	}
}
