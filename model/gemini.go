// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"

	"github.com/go-a2a/outparse/pkg/logging"
)

const (
	// GeminiDefaultModel is the default model name for [Gemini].
	GeminiDefaultModel = "gemini-2.0-flash"

	// EnvGoogleAPIKey is the environment variable name for the Google AI API key.
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Gemini is a [Generator] backed by a Google Gemini model.
type Gemini struct {
	name        string
	genAIClient *genai.Client
}

var _ Generator = (*Gemini)(nil)

// NewGemini creates a new [Gemini] instance.
//
// If apiKey is empty, the [EnvGoogleAPIKey] environment variable is used;
// the constructor fails when neither is set.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	// Use default model if none provided
	if modelName == "" {
		modelName = GeminiDefaultModel
	}

	// Check API key and use [EnvGoogleAPIKey] environment variable if not provided
	if apiKey == "" {
		envAPIKey := os.Getenv(EnvGoogleAPIKey)
		if envAPIKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q environment variable must be set", EnvGoogleAPIKey)
		}
		apiKey = envAPIKey
	}

	genAIClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		name:        modelName,
		genAIClient: genAIClient,
	}, nil
}

// SupportedModels returns a list of supported Gemini models.
//
// See https://ai.google.dev/gemini-api/docs/models.
func (m *Gemini) SupportedModels() []string {
	return []string{
		"gemini-2.5-flash-preview-04-17",
		"gemini-2.5-pro-preview-03-25",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
		"gemini-1.5-pro",
	}
}

// Name implements [Generator].
func (m *Gemini) Name() string {
	return m.name
}

// Generate implements [Generator].
func (m *Gemini) Generate(ctx context.Context, promptText string) (string, error) {
	response, err := m.genAIClient.Models.GenerateContent(ctx, m.name, genai.Text(promptText), nil)
	if err != nil {
		return "", &ServiceError{Provider: "gemini", Err: err}
	}
	logging.FromContext(ctx).DebugContext(ctx, "gemini response", slog.String("text", response.Text()))

	return response.Text(), nil
}
