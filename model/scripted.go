// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
)

// Scripted is a [Generator] that replays canned responses in order and
// records the prompts it received. It stands in for a hosted model in tests.
type Scripted struct {
	// Responses are returned one per Generate call, in order.
	Responses []string

	// Err, when set, is returned by every Generate call wrapped in a
	// [*ServiceError].
	Err error

	// Prompts records every prompt passed to Generate.
	Prompts []string

	calls int
}

var _ Generator = (*Scripted)(nil)

// Name implements [Generator].
func (g *Scripted) Name() string {
	return "scripted"
}

// Generate implements [Generator].
func (g *Scripted) Generate(ctx context.Context, promptText string) (string, error) {
	g.Prompts = append(g.Prompts, promptText)

	if g.Err != nil {
		return "", &ServiceError{Provider: "scripted", Err: g.Err}
	}
	if g.calls >= len(g.Responses) {
		return "", &ServiceError{Provider: "scripted", Err: fmt.Errorf("no scripted response for call %d", g.calls+1)}
	}

	resp := g.Responses[g.calls]
	g.calls++
	return resp, nil
}

// Calls returns how many times Generate was invoked.
func (g *Scripted) Calls() int {
	return len(g.Prompts)
}
