// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
)

// Generator is a single blocking prompt-to-response model call.
type Generator interface {
	// Name returns the model name, e.g. gemini-2.0-flash.
	Name() string

	// Generate sends promptText to the model and blocks until the response
	// text or an error is returned. Transport and auth failures are wrapped
	// in [*ServiceError].
	Generate(ctx context.Context, promptText string) (string, error)
}

// ServiceError wraps an external model call failure.
//
// Service errors are not recoverable by a repair strategy: they terminate
// the current operation and are never retried internally.
type ServiceError struct {
	// Provider names the backend, e.g. "gemini" or "anthropic".
	Provider string

	// Err is the underlying transport or auth error.
	Err error
}

// Error implements error.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
