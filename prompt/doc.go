// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt fills prompt templates and attaches retrieved context.
//
// Templates use {name} placeholders, with {name?} marking a variable that
// may be absent. Text between braces that is not a valid identifier is left
// untouched, so JSON examples and format-instruction blocks survive the fill
// unchanged.
package prompt
