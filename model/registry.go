// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
)

// init registers the built-in generator types.
func init() {
	// Register Claude models
	RegisterGeneratorType(
		[]string{
			`claude-.*`, // General pattern for Claude models
		},
		func(ctx context.Context, apiKey, modelName string) (Generator, error) {
			return NewClaude(ctx, apiKey, modelName)
		},
	)

	// Register Google/Gemini models
	RegisterGeneratorType(
		[]string{
			`gemini-.*`,
			`projects\/.*\/locations\/.*\/publishers\/google\/models\/gemini-.*`,
		},
		func(ctx context.Context, apiKey, modelName string) (Generator, error) {
			return NewGemini(ctx, apiKey, modelName)
		},
	)
}

// GeneratorCreatorFunc is a function type that creates a generator instance.
type GeneratorCreatorFunc func(ctx context.Context, apiKey, modelName string) (Generator, error)

// registryEntry pairs a model-name regex pattern with a creator function.
type registryEntry struct {
	pattern *regexp.Regexp
	creator GeneratorCreatorFunc
}

// Registry resolves generator implementations from model names using regex
// pattern matching.
type Registry struct {
	mu      sync.RWMutex
	entries []registryEntry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// GetRegistry returns the singleton registry instance.
func GetRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// Register registers a model-name pattern with a creator function.
// If the pattern is already registered, its creator is replaced.
func (r *Registry) Register(modelPattern string, creator GeneratorCreatorFunc) {
	regex, err := regexp.Compile(modelPattern)
	if err != nil {
		slog.Default().Warn("skip registering generator pattern", slog.String("pattern", modelPattern), slog.Any("err", err))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, entry := range r.entries {
		if entry.pattern.String() == modelPattern {
			r.entries[i].creator = creator
			return
		}
	}
	r.entries = append(r.entries, registryEntry{
		pattern: regex,
		creator: creator,
	})
}

// Resolve finds the creator function for the given model name.
func (r *Registry) Resolve(modelName string) (GeneratorCreatorFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.pattern.MatchString(modelName) {
			return entry.creator, nil
		}
	}
	return nil, fmt.Errorf("no generator registered for model %q", modelName)
}

// NewGenerator creates a generator instance for the given model name.
func (r *Registry) NewGenerator(ctx context.Context, apiKey, modelName string) (Generator, error) {
	creator, err := r.Resolve(modelName)
	if err != nil {
		return nil, err
	}
	return creator(ctx, apiKey, modelName)
}

// RegisterGenerator is a convenience function to register a model pattern on
// the singleton registry.
func RegisterGenerator(modelPattern string, creator GeneratorCreatorFunc) {
	GetRegistry().Register(modelPattern, creator)
}

// RegisterGeneratorType registers multiple patterns for a single creator.
func RegisterGeneratorType(patterns []string, creator GeneratorCreatorFunc) {
	registry := GetRegistry()
	for _, pattern := range patterns {
		registry.Register(pattern, creator)
	}
}

// NewGenerator is a convenience function to create a generator instance from
// the singleton registry.
func NewGenerator(ctx context.Context, apiKey, modelName string) (Generator, error) {
	return GetRegistry().NewGenerator(ctx, apiKey, modelName)
}
