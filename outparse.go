// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package outparse is a parse-validate-repair toolkit for structured LLM output.
//
// Model output is parsed against a declarative [schema.Schema] into a typed
// result or a diagnosable failure, and failed parses can be repaired with a
// single corrective model call through a [repair.Strategy].
package outparse

// Version is the version of the outparse toolkit.
var Version = "v0.0.0"
