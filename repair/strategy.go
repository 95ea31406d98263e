// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package repair

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/go-a2a/outparse/parser"
	"github.com/go-a2a/outparse/schema"
)

// Request carries everything a strategy may use to repair a failed parse.
type Request struct {
	// RawText is the model output that failed to parse.
	RawText string

	// Failure is the parse failure being repaired.
	Failure *parser.Failure

	// Schema is the expected output shape.
	Schema *schema.Schema

	// Mode is the structural encoding the parser expects.
	Mode schema.Mode

	// Prompt is the original filled prompt. Only [PromptStrategy] uses it.
	Prompt string
}

// validate checks the fields every strategy needs.
func (r Request) validate() error {
	if r.Failure == nil {
		return errors.New("repair: request needs a parse failure")
	}
	if r.Schema == nil {
		return errors.New("repair: request needs a schema")
	}
	return nil
}

// Attempt records a single repair round. It is transient diagnostic data,
// not persisted anywhere.
type Attempt struct {
	// ID identifies the attempt in logs.
	ID uuid.UUID

	// OriginalText is the output that failed to parse.
	OriginalText string

	// FailureDetail is the failure message the model was shown.
	FailureDetail string

	// CorrectedText is the model's corrective answer.
	CorrectedText string

	// Succeeded reports whether the corrective answer parsed.
	Succeeded bool
}

// Strategy is a single-shot corrective re-invocation of the model.
//
// Implementations issue exactly one model call and one re-parse, returning
// the re-parse result unconditionally: a repair answer that still fails to
// parse is surfaced to the caller as that failure, never retried internally.
// A [model.ServiceError] aborts the attempt with an error and no result.
type Strategy interface {
	Repair(ctx context.Context, req Request) (parser.Result, *Attempt, error)
}
