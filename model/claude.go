// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"os"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// ClaudeDefaultModel is the default model name for [Claude].
	ClaudeDefaultModel = anthropic.ModelClaude3_5SonnetLatest

	// EnvAnthropicAPIKey is the environment variable name for the Anthropic API key.
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"

	// claudeMaxTokens bounds a single corrective response.
	claudeMaxTokens = 4096
)

// Claude is a [Generator] backed by an Anthropic Claude model.
type Claude struct {
	name            string
	anthropicClient anthropic.Client
}

var _ Generator = (*Claude)(nil)

// NewClaude creates a new [Claude] instance.
//
// If apiKey is empty, the [EnvAnthropicAPIKey] environment variable is used;
// the constructor fails when neither is set.
func NewClaude(ctx context.Context, apiKey, modelName string) (*Claude, error) {
	// Check API key and use [EnvAnthropicAPIKey] environment variable if not provided
	if apiKey == "" {
		envAPIKey := os.Getenv(EnvAnthropicAPIKey)
		if envAPIKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q environment variable must be set", EnvAnthropicAPIKey)
		}
		apiKey = envAPIKey
	}

	// Use default model if none provided
	if modelName == "" {
		modelName = string(ClaudeDefaultModel)
	}

	return &Claude{
		name:            modelName,
		anthropicClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// SupportedModels returns a list of supported Claude models.
func (m *Claude) SupportedModels() []string {
	return []string{
		string(anthropic.ModelClaude3_7SonnetLatest),
		string(anthropic.ModelClaude3_7Sonnet20250219),
		string(anthropic.ModelClaude3_5HaikuLatest),
		string(anthropic.ModelClaude3_5Haiku20241022),
		string(anthropic.ModelClaude3_5SonnetLatest),
		string(anthropic.ModelClaude3_5Sonnet20241022),
		string(anthropic.ModelClaude_3_5_Sonnet_20240620),
		string(anthropic.ModelClaude3OpusLatest),
		string(anthropic.ModelClaude_3_Opus_20240229),
	}
}

// Name implements [Generator].
func (m *Claude) Name() string {
	return m.name
}

// Generate implements [Generator].
func (m *Claude) Generate(ctx context.Context, promptText string) (string, error) {
	message, err := m.anthropicClient.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(m.name),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(promptText)),
		},
	})
	if err != nil {
		return "", &ServiceError{Provider: "anthropic", Err: err}
	}

	text := ""
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
