// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package parser turns raw model text into a structured result.
//
// [Parse] is a pure function of (text, schema, mode). It either returns a
// [Result] carrying exactly the declared fields with correctly-typed,
// constraint-conforming values, or a typed [Failure] that a repair strategy
// can act on. A failed parse never exposes a partially-populated value.
package parser
