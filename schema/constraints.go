// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Built-in constraints. String-oriented constraints apply to a string value
// directly and to every element of a string list; values of other types pass
// through unchanged.

// NonEmpty returns a validating constraint that rejects empty strings and
// empty lists.
func NonEmpty() Constraint {
	return Constraint{
		Name: "non_empty",
		Check: func(v any) error {
			switch val := v.(type) {
			case string:
				if val == "" {
					return fmt.Errorf("value is empty")
				}
			case []string:
				if len(val) == 0 {
					return fmt.Errorf("list is empty")
				}
				for i, s := range val {
					if s == "" {
						return fmt.Errorf("item %d is empty", i)
					}
				}
			case []int:
				if len(val) == 0 {
					return fmt.Errorf("list is empty")
				}
			case []float64:
				if len(val) == 0 {
					return fmt.Errorf("list is empty")
				}
			}
			return nil
		},
	}
}

// EndsWithPeriod returns a normalizing constraint that appends a trailing
// period to strings that lack one. Applying it twice is a no-op.
func EndsWithPeriod() Constraint {
	return Constraint{
		Name:  "ends_with_period",
		Apply: mapStrings(ensurePeriod),
	}
}

func ensurePeriod(s string) string {
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// LowerCase returns a normalizing constraint that lowercases string values.
func LowerCase() Constraint {
	return Constraint{
		Name:  "lower_case",
		Apply: mapStrings(strings.ToLower),
	}
}

// NoNumericPrefix returns a validating constraint that rejects strings whose
// first character is a digit. On a list, the failure names the first
// offending item.
func NoNumericPrefix() Constraint {
	return Constraint{
		Name: "no_numeric_prefix",
		Check: func(v any) error {
			switch val := v.(type) {
			case string:
				if startsWithDigit(val) {
					return fmt.Errorf("value %q starts with a numeral", val)
				}
			case []string:
				for i, s := range val {
					if startsWithDigit(s) {
						return fmt.Errorf("item %d (%q) starts with a numeral", i, s)
					}
				}
			}
			return nil
		},
	}
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

// MaxItems returns a validating constraint that rejects lists longer than n.
func MaxItems(n int) Constraint {
	return Constraint{
		Name: fmt.Sprintf("max_items=%d", n),
		Check: func(v any) error {
			length := -1
			switch val := v.(type) {
			case []string:
				length = len(val)
			case []int:
				length = len(val)
			case []float64:
				length = len(val)
			}
			if length > n {
				return fmt.Errorf("list has %d items, at most %d allowed", length, n)
			}
			return nil
		},
	}
}

// OneOf returns a validating constraint that rejects string values outside
// the allowed set. On a list, every element must be allowed.
func OneOf(allowed ...string) Constraint {
	return Constraint{
		Name: "one_of=" + strings.Join(allowed, "|"),
		Check: func(v any) error {
			switch val := v.(type) {
			case string:
				if !slices.Contains(allowed, val) {
					return fmt.Errorf("value %q is not one of %v", val, allowed)
				}
			case []string:
				for i, s := range val {
					if !slices.Contains(allowed, s) {
						return fmt.Errorf("item %d (%q) is not one of %v", i, s, allowed)
					}
				}
			}
			return nil
		},
	}
}

// mapStrings lifts a string rewrite to a constraint Apply func that covers
// both scalar strings and string lists.
func mapStrings(fn func(string) string) func(any) any {
	return func(v any) any {
		switch val := v.(type) {
		case string:
			return fn(val)
		case []string:
			out := make([]string, len(val))
			for i, s := range val {
				out[i] = fn(s)
			}
			return out
		default:
			return v
		}
	}
}
