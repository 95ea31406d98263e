// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline runs the parse-then-repair state machine.
//
// A run moves Parsing -> Success, or Parsing -> NeedsRepair -> Repairing ->
// {Success, Failed}. The pipeline performs at most one repair round per run:
// looping corrective calls against a paid hosted model is the anti-pattern
// this bound exists to prevent. Callers who want more rounds must loop
// themselves and bound the loop.
package pipeline
