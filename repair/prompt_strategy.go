// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package repair

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/outparse/model"
	"github.com/go-a2a/outparse/parser"
)

// promptFixPrompt is the corrective instruction that includes the original
// filled prompt alongside the format instructions.
var promptFixPrompt = heredoc.Doc(`
	The output below does not satisfy the original request.

	Original request:
	%s

	Required format:
	%s

	Erroneous output:
	%s

	Error:
	%s

	Answer the original request again so the output conforms to the required
	format. Respond with the corrected output only, no commentary.
`)

// PromptStrategy repairs a failed parse with the original prompt as
// additional context.
//
// Strictly more context than [SchemaStrategy]: seeing the original request
// lets the model honor relationships between fields that the schema text
// cannot express, e.g. "one reason per word".
type PromptStrategy struct {
	gen model.Generator
}

var _ Strategy = (*PromptStrategy)(nil)

// NewPromptStrategy returns a [PromptStrategy] backed by gen.
func NewPromptStrategy(gen model.Generator) *PromptStrategy {
	return &PromptStrategy{gen: gen}
}

// Repair implements [Strategy].
func (s *PromptStrategy) Repair(ctx context.Context, req Request) (parser.Result, *Attempt, error) {
	if err := req.validate(); err != nil {
		return parser.Result{}, nil, err
	}
	if req.Prompt == "" {
		return parser.Result{}, nil, errors.New("repair: prompt strategy needs the original prompt")
	}

	correctivePrompt := fmt.Sprintf(promptFixPrompt,
		req.Prompt,
		req.Schema.FormatInstructions(req.Mode),
		req.RawText,
		req.Failure.Message(),
	)

	return runAttempt(ctx, s.gen, correctivePrompt, req)
}
