// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema declares the expected shape of structured model output.
//
// A [Schema] is an immutable, ordered list of typed fields. Each field can
// carry an ordered list of [Constraint] entries, evaluated in declaration
// order: validating constraints reject non-conforming values, normalizing
// constraints rewrite values so they conform. Schemas also render the
// format-instruction block that tells the model how to answer, and can be
// loaded from YAML so prompt and schema live side by side.
package schema
