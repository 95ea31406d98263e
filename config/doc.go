// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads provider credentials from the environment.
//
// [Load] merges a .env file, discovered by walking up from the working
// directory, into the process environment without overriding variables that
// are already set. [Require] reports every missing key at once so a run
// fails before the first model call rather than midway through.
package config
