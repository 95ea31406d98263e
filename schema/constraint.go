// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
)

// Constraint is a named per-field rule.
//
// Exactly one of Check and Apply must be set. A constraint with Check is
// validating: it rejects non-conforming values and the parse fails. A
// constraint with Apply is normalizing: it rewrites the value in place so it
// conforms. Apply must be idempotent.
type Constraint struct {
	// Name identifies the constraint in failure details and YAML documents.
	Name string

	// Check rejects non-conforming values.
	Check func(v any) error

	// Apply rewrites a value so it conforms.
	Apply func(v any) any
}

// Validating reports whether the constraint rejects values instead of
// rewriting them.
func (c Constraint) Validating() bool {
	return c.Check != nil
}

// Normalizing reports whether the constraint rewrites values.
func (c Constraint) Normalizing() bool {
	return c.Apply != nil
}

// wellFormed checks the exactly-one-of-Check-and-Apply invariant.
func (c Constraint) wellFormed() error {
	if c.Name == "" {
		return errors.New("constraint name must be non-empty")
	}
	if (c.Check == nil) == (c.Apply == nil) {
		return fmt.Errorf("constraint %q: exactly one of Check and Apply must be set", c.Name)
	}
	return nil
}
