// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"maps"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// FailureKind classifies why a parse failed.
type FailureKind int

const (
	// MalformedSyntax means the text could not be structurally decoded
	// under the configured mode.
	MalformedSyntax FailureKind = iota + 1

	// MissingField means a declared field is absent from the decoded value.
	MissingField

	// WrongType means a field is present but its value has the wrong type.
	WrongType

	// ConstraintViolation means a validating constraint rejected a value.
	ConstraintViolation
)

// String returns the kind name as used in failure messages.
func (k FailureKind) String() string {
	switch k {
	case MalformedSyntax:
		return "malformed syntax"
	case MissingField:
		return "missing field"
	case WrongType:
		return "wrong type"
	case ConstraintViolation:
		return "constraint violation"
	default:
		return "unknown"
	}
}

// Failure describes a diagnosable parse failure.
//
// Failures are structured values, not errors: callers pattern-match on Kind
// to decide whether a repair strategy applies.
type Failure struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Field names the offending field where known. Empty for syntax errors.
	Field string

	// Detail is a human-readable description, precise enough to feed back
	// to the model as a corrective instruction.
	Detail string

	// RawText is the text that failed to parse.
	RawText string
}

// Message renders the failure for humans and for corrective prompts.
func (f *Failure) Message() string {
	if f.Field != "" {
		return fmt.Sprintf("%s (field %q): %s", f.Kind, f.Field, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Result is the outcome of a parse: either a success value or a failure,
// never both.
type Result struct {
	value   map[string]any
	failure *Failure
}

// Ok reports whether the parse succeeded.
func (r Result) Ok() bool {
	return r.failure == nil && r.value != nil
}

// Value returns a copy of the parsed field values, keyed by field name, with
// exactly the schema's declared fields. It returns nil for failed parses.
func (r Result) Value() map[string]any {
	if !r.Ok() {
		return nil
	}

	out := make(map[string]any, len(r.value))
	if err := deepcopy.Copy(&out, r.value); err != nil {
		// Parsed values only hold JSON scalar shapes; a copy failure would
		// mean a bug in Parse. Shallow copy is still safe for scalars.
		return maps.Clone(r.value)
	}
	return out
}

// Failure returns a copy of the failure, or nil for successful parses.
func (r Result) Failure() *Failure {
	if r.failure == nil {
		return nil
	}
	f := *r.failure
	return &f
}

func success(value map[string]any) Result {
	return Result{value: value}
}

func failed(kind FailureKind, field, detail, raw string) Result {
	return Result{failure: &Failure{
		Kind:    kind,
		Field:   field,
		Detail:  detail,
		RawText: raw,
	}}
}
