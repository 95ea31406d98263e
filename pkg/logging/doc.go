// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// The logging package implements a context-based logging pattern that allows loggers to be stored
// in and retrieved from context.Context values. This enables consistent logging throughout the
// parse and repair stack with automatic logger propagation.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
//		Level: slog.LevelInfo,
//	}))
//
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("run completed", "state", outcome.State)
//
// # Default Behavior
//
// When no logger is found in the context, FromContext returns [slog.Default].
// This ensures logging always works even when no explicit logger is
// configured.
package logging
