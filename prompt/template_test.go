// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/outparse/prompt"
)

func TestTemplate_Fill(t *testing.T) {
	tmpl := prompt.New("List {count} words that rhyme with {word}.")

	got, err := tmpl.Fill(map[string]any{"count": 3, "word": "go"})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if want := "List 3 words that rhyme with go."; got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}
}

func TestTemplate_MissingVariable(t *testing.T) {
	tmpl := prompt.New("Summarize {document}.")

	if _, err := tmpl.Fill(map[string]any{}); err == nil {
		t.Fatal("want error for missing required variable")
	}
}

func TestTemplate_OptionalVariable(t *testing.T) {
	tmpl := prompt.New("Answer the question.{hint?}")

	got, err := tmpl.Fill(map[string]any{})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got != "Answer the question." {
		t.Errorf("Fill = %q, optional variable should vanish", got)
	}

	got, err = tmpl.Fill(map[string]any{"hint": " Be brief."})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !strings.Contains(got, "Be brief.") {
		t.Errorf("Fill = %q, optional variable should substitute when present", got)
	}
}

func TestTemplate_JSONBracesSurvive(t *testing.T) {
	// Format instructions embed JSON examples; their braces must not be
	// treated as placeholders.
	tmpl := prompt.New(heredoc.Doc(`
		Respond with:
		{
			"words": <list of string>
		}
		for the text {text}.
	`))

	got, err := tmpl.Fill(map[string]any{"text": "hello"})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !strings.Contains(got, `"words": <list of string>`) {
		t.Errorf("JSON example was mangled:\n%s", got)
	}
	if !strings.Contains(got, "for the text hello.") {
		t.Errorf("placeholder was not filled:\n%s", got)
	}
}

func TestWithContext(t *testing.T) {
	base := "Answer the question."

	if got := prompt.WithContext(base, nil); got != base {
		t.Errorf("WithContext with no chunks should be a no-op, got %q", got)
	}

	chunks := []prompt.Chunk{
		{Text: "first chunk", Metadata: map[string]string{"source": "doc1"}},
		{Text: "second chunk"},
	}
	got := prompt.WithContext(base, chunks)

	if !strings.HasPrefix(got, base) {
		t.Error("prompt text should come first")
	}
	for _, want := range []string{"first chunk", "second chunk"} {
		if !strings.Contains(got, want) {
			t.Errorf("context block missing %q:\n%s", want, got)
		}
	}
}

// fixedRetriever returns the same chunks for every query.
type fixedRetriever struct {
	chunks []prompt.Chunk
}

var _ prompt.Retriever = (*fixedRetriever)(nil)

func (r *fixedRetriever) Query(ctx context.Context, query string, k int) ([]prompt.Chunk, error) {
	if k < len(r.chunks) {
		return r.chunks[:k], nil
	}
	return r.chunks, nil
}

func TestRetriever_AugmentsPrompt(t *testing.T) {
	retriever := &fixedRetriever{chunks: []prompt.Chunk{
		{Text: "Napoleon was born in 1769."},
		{Text: "He was crowned emperor in 1804."},
	}}

	chunks, err := retriever.Query(t.Context(), "When was Napoleon born?", 1)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("Query returned %d chunks, want 1", len(chunks))
	}

	got := prompt.WithContext("When was Napoleon born?", chunks)
	if !strings.Contains(got, "Napoleon was born in 1769.") {
		t.Errorf("retrieved chunk missing from prompt:\n%s", got)
	}
}
