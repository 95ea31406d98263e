// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package model provides the text-in/text-out model invocation the repair
// stage depends on.
//
// The [Generator] interface is deliberately narrow: one blocking prompt to
// response round trip. Provider backends exist for Google Gemini
// (google.golang.org/genai) and Anthropic Claude (anthropic-sdk-go), resolved
// by name through a regex-pattern registry. Transport and auth failures are
// wrapped in [*ServiceError] and surfaced immediately, never retried.
package model
