// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"

	"github.com/go-a2a/outparse/model"
	"github.com/go-a2a/outparse/parser"
	"github.com/go-a2a/outparse/pkg/logging"
)

// schemaFixPrompt is the corrective instruction built from the schema's
// format instructions alone.
var schemaFixPrompt = heredoc.Doc(`
	The output below does not conform to the required format.

	Required format:
	%s

	Erroneous output:
	%s

	Error:
	%s

	Re-emit the output so it conforms to the required format. Respond with
	the corrected output only, no commentary.
`)

// SchemaStrategy repairs a failed parse from the schema description alone.
//
// It cannot see the original prompt, so it cannot infer cross-field
// cardinality: when a missing list field must hold one entry per item of
// another list, the repaired output may legitimately parse into a
// shorter-than-expected list. That is documented behavior; use
// [PromptStrategy] when cardinality fidelity matters.
type SchemaStrategy struct {
	gen model.Generator
}

var _ Strategy = (*SchemaStrategy)(nil)

// NewSchemaStrategy returns a [SchemaStrategy] backed by gen.
func NewSchemaStrategy(gen model.Generator) *SchemaStrategy {
	return &SchemaStrategy{gen: gen}
}

// Repair implements [Strategy].
func (s *SchemaStrategy) Repair(ctx context.Context, req Request) (parser.Result, *Attempt, error) {
	if err := req.validate(); err != nil {
		return parser.Result{}, nil, err
	}

	correctivePrompt := fmt.Sprintf(schemaFixPrompt,
		req.Schema.FormatInstructions(req.Mode),
		req.RawText,
		req.Failure.Message(),
	)

	return runAttempt(ctx, s.gen, correctivePrompt, req)
}

// runAttempt issues the single corrective call and re-parse shared by both
// strategies.
func runAttempt(ctx context.Context, gen model.Generator, correctivePrompt string, req Request) (parser.Result, *Attempt, error) {
	corrected, err := gen.Generate(ctx, correctivePrompt)
	if err != nil {
		return parser.Result{}, nil, fmt.Errorf("repair call failed: %w", err)
	}

	result := parser.Parse(corrected, req.Schema, req.Mode)

	attempt := &Attempt{
		ID:            uuid.New(),
		OriginalText:  req.RawText,
		FailureDetail: req.Failure.Message(),
		CorrectedText: corrected,
		Succeeded:     result.Ok(),
	}
	logging.FromContext(ctx).DebugContext(ctx, "repair attempt",
		slog.String("id", attempt.ID.String()),
		slog.Bool("succeeded", attempt.Succeeded),
	)

	return result, attempt, nil
}
