// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"

	"github.com/go-a2a/outparse/internal/pool"
)

// Chunk is a ranked piece of retrieved text to ground a prompt with.
type Chunk struct {
	// Text is the chunk content.
	Text string

	// Metadata carries provenance such as source or title.
	Metadata map[string]string
}

// Retriever supplies ranked context chunks for a query. Implementations are
// external collaborators (vector stores and the like); this package only
// consumes their results.
type Retriever interface {
	// Query returns up to k chunks ranked by relevance to the query.
	Query(ctx context.Context, query string, k int) ([]Chunk, error)
}

// WithContext appends retrieved chunks to a filled prompt as an additional
// context block. With no chunks the prompt is returned unchanged.
func WithContext(promptText string, chunks []Chunk) string {
	if len(chunks) == 0 {
		return promptText
	}

	b := pool.String.Get()
	b.Reset()
	defer pool.String.Put(b)

	b.WriteString(promptText)
	b.WriteString("\n\nUse the following context to answer:\n")
	for _, chunk := range chunks {
		b.WriteString("\n- ")
		b.WriteString(chunk.Text)
	}

	return b.String()
}
