// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-a2a/outparse/parser"
	"github.com/go-a2a/outparse/pkg/logging"
	"github.com/go-a2a/outparse/repair"
	"github.com/go-a2a/outparse/schema"
)

// State is a pipeline run state.
type State int

const (
	StateParsing State = iota
	StateNeedsRepair
	StateRepairing
	StateSuccess
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateParsing:
		return "parsing"
	case StateNeedsRepair:
		return "needs_repair"
	case StateRepairing:
		return "repairing"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a pipeline run.
type Outcome struct {
	// State is [StateSuccess] or [StateFailed].
	State State

	// Result is the final parse result: the successful one, or the last
	// failure when the run failed.
	Result parser.Result

	// Attempts records the repair rounds taken, at most one.
	Attempts []*repair.Attempt
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithStrategy sets the repair strategy used when the initial parse fails.
// Without one, a failed parse fails the run immediately.
func WithStrategy(strategy repair.Strategy) Option {
	return func(p *Pipeline) {
		p.strategy = strategy
	}
}

// WithLogger sets the logger. Without one, the pipeline logs with the
// logger carried by the run context, falling back to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline parses model output against a schema and repairs failures with
// at most one corrective round.
type Pipeline struct {
	schema   *schema.Schema
	mode     schema.Mode
	strategy repair.Strategy
	logger   *slog.Logger
}

// New creates a [Pipeline] for the given schema and mode.
func New(s *schema.Schema, mode schema.Mode, opts ...Option) (*Pipeline, error) {
	if s == nil {
		return nil, errors.New("pipeline: schema must be non-nil")
	}

	p := &Pipeline{
		schema: s,
		mode:   mode,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run parses rawText and, when the parse fails and a strategy is configured,
// performs a single repair round.
//
// promptText is the original filled prompt that produced rawText; it is
// forwarded to the strategy so prompt-aware strategies can use it. Parse
// failures are reported in the [Outcome], not as errors; the returned error
// is non-nil only for service failures and misuse.
func (p *Pipeline) Run(ctx context.Context, promptText, rawText string) (*Outcome, error) {
	runID := uuid.New()

	state := StateParsing
	p.logState(ctx, runID, state)

	result := parser.Parse(rawText, p.schema, p.mode)
	if result.Ok() {
		state = StateSuccess
		p.logState(ctx, runID, state)
		return &Outcome{State: state, Result: result}, nil
	}

	state = StateNeedsRepair
	p.logState(ctx, runID, state)

	if p.strategy == nil {
		state = StateFailed
		p.logState(ctx, runID, state)
		return &Outcome{State: state, Result: result}, nil
	}

	state = StateRepairing
	p.logState(ctx, runID, state)

	repaired, attempt, err := p.strategy.Repair(ctx, repair.Request{
		RawText: rawText,
		Failure: result.Failure(),
		Schema:  p.schema,
		Mode:    p.mode,
		Prompt:  promptText,
	})
	if err != nil {
		state = StateFailed
		p.logState(ctx, runID, state)
		return &Outcome{State: state, Result: result}, fmt.Errorf("pipeline run %s: %w", runID, err)
	}

	outcome := &Outcome{
		Result:   repaired,
		Attempts: []*repair.Attempt{attempt},
	}
	if repaired.Ok() {
		outcome.State = StateSuccess
	} else {
		outcome.State = StateFailed
	}
	p.logState(ctx, runID, outcome.State)

	return outcome, nil
}

func (p *Pipeline) logState(ctx context.Context, runID uuid.UUID, state State) {
	logger := p.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger.DebugContext(ctx, "pipeline state",
		slog.String("run", runID.String()),
		slog.String("state", state.String()),
	)
}
