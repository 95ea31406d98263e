// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package repair turns failed parses into corrected ones with a single
// corrective model call.
//
// A [Strategy] issues exactly one repair call and re-parses the answer; the
// second result is returned unconditionally, looping is the caller's
// responsibility and must be bounded. Two strategies exist: [SchemaStrategy]
// corrects from the format instructions and the failure alone, and
// [PromptStrategy] additionally supplies the original filled prompt so the
// model can infer cross-field relationships, such as one-entry-per-item
// cardinality, that the schema text cannot express.
package repair
