// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/go-a2a/outparse/schema"
)

// Parse decodes raw model text against the schema under the given mode.
//
// It has no side effects: the same (text, schema, mode) triple always yields
// the same [Result].
func Parse(text string, s *schema.Schema, mode schema.Mode) Result {
	switch mode {
	case schema.ModeJSON:
		return parseJSON(text, s)
	case schema.ModeList:
		return parseList(text, s)
	default:
		return failed(MalformedSyntax, "", fmt.Sprintf("unsupported parse mode %d", mode), text)
	}
}

// fenceRe matches a Markdown code fence with an optional language tag.
// Models wrap JSON answers in fences constantly, so the payload inside the
// first fence wins over the surrounding prose.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSON returns the JSON payload within text, stripping a Markdown
// code fence when present.
func extractJSON(text string) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

func parseJSON(text string, s *schema.Schema) Result {
	payload := extractJSON(text)

	var raw map[string]any
	if err := sonic.ConfigFastest.Unmarshal([]byte(payload), &raw); err != nil {
		return failed(MalformedSyntax, "", fmt.Sprintf("decode JSON object: %v", err), text)
	}

	// Undeclared keys in raw are dropped: the success value carries exactly
	// the declared fields.
	out := make(map[string]any, s.Len())
	for _, f := range s.Fields() {
		v, ok := raw[f.Name]
		if !ok {
			return failed(MissingField, f.Name, fmt.Sprintf("required field %q is missing", f.Name), text)
		}

		typed, err := convert(f.Type, v)
		if err != nil {
			return failed(WrongType, f.Name, err.Error(), text)
		}

		typed, fail := runConstraints(f, typed, text)
		if fail != nil {
			return Result{failure: fail}
		}

		out[f.Name] = typed
	}

	return success(out)
}

func parseList(text string, s *schema.Schema) Result {
	fields := s.Fields()
	if len(fields) != 1 || !fields[0].Type.IsList() {
		return failed(MalformedSyntax, "", "list mode requires a schema with exactly one list-typed field", text)
	}
	f := fields[0]

	items := splitItems(text)

	var typed any
	switch f.Type.Elem() {
	case schema.TypeInt:
		ints := make([]int, len(items))
		for i, item := range items {
			n, err := strconv.Atoi(item)
			if err != nil {
				return failed(WrongType, f.Name, fmt.Sprintf("item %d (%q) is not an int", i, item), text)
			}
			ints[i] = n
		}
		typed = ints

	case schema.TypeFloat:
		floats := make([]float64, len(items))
		for i, item := range items {
			n, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return failed(WrongType, f.Name, fmt.Sprintf("item %d (%q) is not a float", i, item), text)
			}
			floats[i] = n
		}
		typed = floats

	default:
		typed = items
	}

	typed, fail := runConstraints(f, typed, text)
	if fail != nil {
		return Result{failure: fail}
	}

	return success(map[string]any{f.Name: typed})
}

// splitItems splits flat list output on commas and newlines, trimming
// whitespace and dropping empty entries. Covers both "a, b, c" and numbered
// line-per-item shapes.
func splitItems(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// runConstraints evaluates a field's constraints in declaration order.
// Normalizing constraints rewrite the value in place; the first violated
// validating constraint fails the parse.
func runConstraints(f schema.Field, v any, raw string) (any, *Failure) {
	for _, c := range f.Constraints {
		switch {
		case c.Normalizing():
			v = c.Apply(v)

		case c.Validating():
			if err := c.Check(v); err != nil {
				return nil, &Failure{
					Kind:    ConstraintViolation,
					Field:   f.Name,
					Detail:  fmt.Sprintf("constraint %s: %v", c.Name, err),
					RawText: raw,
				}
			}
		}
	}
	return v, nil
}

// convert checks type conformance of a decoded JSON value and converts it to
// the schema type's canonical Go representation.
func convert(t schema.Type, v any) (any, error) {
	switch t {
	case schema.TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil

	case schema.TypeInt:
		return convertInt(v)

	case schema.TypeFloat:
		return convertFloat(v)

	case schema.TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil

	case schema.TypeStringList, schema.TypeIntList, schema.TypeFloatList:
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected %s, got %T", t, v)
		}
		return convertList(t.Elem(), list)

	default:
		return nil, fmt.Errorf("invalid schema type")
	}
}

func convertList(elem schema.Type, list []any) (any, error) {
	switch elem {
	case schema.TypeString:
		out := make([]string, len(list))
		for i, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: expected string, got %T", i, v)
			}
			out[i] = s
		}
		return out, nil

	case schema.TypeInt:
		out := make([]int, len(list))
		for i, v := range list {
			n, err := convertInt(v)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = n
		}
		return out, nil

	default:
		out := make([]float64, len(list))
		for i, v := range list {
			n, err := convertFloat(v)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	}
}

// convertInt accepts the integer representations JSON decoders produce.
// Floats satisfy int only when whole.
func convertInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("expected int, got float %v", n)
		}
		return int(n), nil
	case int64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("expected int, got %T", v)
	}
}

func convertFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected float, got %T", v)
	}
}
