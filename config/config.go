// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Provider API key environment variables.
const (
	EnvGoogleAPIKey     = "GOOGLE_API_KEY"
	EnvAnthropicAPIKey  = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey     = "OPENAI_API_KEY"
	EnvCohereAPIKey     = "COHERE_API_KEY"
	EnvElevenAPIKey     = "ELEVEN_API_KEY"
	EnvActiveLoopToken  = "ACTIVELOOP_TOKEN"
	EnvHuggingFaceToken = "HUGGINGFACEHUB_API_TOKEN"
)

var loadOnce sync.Once

// Load merges the nearest .env file into the process environment. The file
// is searched for in the working directory and each parent in turn; the
// first hit wins. Variables already present in the environment are never
// overridden.
//
// Load runs at most once per process; later calls are no-ops. A missing
// .env file is not an error.
func Load() error {
	var err error
	loadOnce.Do(func() {
		path, found := findDotenv()
		if !found {
			return
		}
		if loadErr := godotenv.Load(path); loadErr != nil {
			err = fmt.Errorf("load %s: %w", path, loadErr)
		}
	})
	return err
}

// findDotenv walks from the working directory toward the filesystem root
// looking for a .env file.
func findDotenv() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ".env")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// GoogleAPIKey returns the Google AI API key from the environment.
func GoogleAPIKey() string { return os.Getenv(EnvGoogleAPIKey) }

// AnthropicAPIKey returns the Anthropic API key from the environment.
func AnthropicAPIKey() string { return os.Getenv(EnvAnthropicAPIKey) }

// OpenAIAPIKey returns the OpenAI API key from the environment.
func OpenAIAPIKey() string { return os.Getenv(EnvOpenAIAPIKey) }

// CohereAPIKey returns the Cohere API key from the environment.
func CohereAPIKey() string { return os.Getenv(EnvCohereAPIKey) }

// ElevenAPIKey returns the ElevenLabs API key from the environment.
func ElevenAPIKey() string { return os.Getenv(EnvElevenAPIKey) }

// ActiveLoopToken returns the ActiveLoop Deep Lake token from the environment.
func ActiveLoopToken() string { return os.Getenv(EnvActiveLoopToken) }

// Require verifies that every named environment variable is set and
// non-empty. All missing names are reported in a single error so the caller
// can fix them in one pass.
func Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
