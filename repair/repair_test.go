// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package repair_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-a2a/outparse/model"
	"github.com/go-a2a/outparse/parser"
	"github.com/go-a2a/outparse/repair"
	"github.com/go-a2a/outparse/schema"
)

func wordsReasonsSchema(t *testing.T) *schema.Schema {
	t.Helper()
	return schema.Must(schema.New(
		schema.Field{Name: "words", Type: schema.TypeStringList, Description: "distinct words"},
		schema.Field{Name: "reasons", Type: schema.TypeStringList, Description: "one reason per word"},
	))
}

// failedRequest parses raw against the schema and returns a repair request
// for the resulting failure.
func failedRequest(t *testing.T, s *schema.Schema, raw, promptText string) repair.Request {
	t.Helper()

	res := parser.Parse(raw, s, schema.ModeJSON)
	if res.Ok() {
		t.Fatalf("input unexpectedly parsed: %s", raw)
	}
	return repair.Request{
		RawText: raw,
		Failure: res.Failure(),
		Schema:  s,
		Mode:    schema.ModeJSON,
		Prompt:  promptText,
	}
}

func TestSchemaStrategy_RepairsMissingField(t *testing.T) {
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{Responses: []string{
		`{"words": ["a", "b"], "reasons": ["starts a sentence", "follows a"]}`,
	}}

	res, attempt, err := repair.NewSchemaStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": ["a", "b"]}`, ""))
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if !res.Ok() {
		t.Fatalf("repair result failed: %s", res.Failure().Message())
	}
	if !attempt.Succeeded {
		t.Error("attempt should be marked succeeded")
	}
	if gen.Calls() != 1 {
		t.Errorf("Generate calls = %d, want exactly 1", gen.Calls())
	}
}

func TestSchemaStrategy_CorrectivePromptContents(t *testing.T) {
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{Responses: []string{
		`{"words": ["a"], "reasons": ["b"]}`,
	}}

	raw := `{"words": ["a", "b"]}`
	if _, _, err := repair.NewSchemaStrategy(gen).Repair(t.Context(), failedRequest(t, s, raw, "secret original prompt")); err != nil {
		t.Fatalf("Repair: %v", err)
	}

	sent := gen.Prompts[0]
	for _, want := range []string{`"words"`, `"reasons"`, raw, "missing field", "one reason per word"} {
		if !strings.Contains(sent, want) {
			t.Errorf("corrective prompt missing %q:\n%s", want, sent)
		}
	}
	// Description-only repair must not see the original prompt.
	if strings.Contains(sent, "secret original prompt") {
		t.Error("schema strategy leaked the original prompt into the corrective call")
	}
}

func TestSchemaStrategy_CardinalityLimitation(t *testing.T) {
	// Without the original prompt the model cannot know that reasons must
	// hold one entry per word. A shorter-than-expected list still parses;
	// this is documented behavior, not a bug.
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{Responses: []string{
		`{"words": ["conduct", "manner"], "reasons": ["it is a verb"]}`,
	}}

	res, _, err := repair.NewSchemaStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": ["conduct", "manner"]}`, ""))
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if !res.Ok() {
		t.Fatalf("repair result failed: %s", res.Failure().Message())
	}

	value := res.Value()
	words := value["words"].([]string)
	reasons := value["reasons"].([]string)
	if len(reasons) > len(words) {
		t.Errorf("reasons (%d) must never outnumber words (%d)", len(reasons), len(words))
	}
}

func TestPromptStrategy_RestoresCardinality(t *testing.T) {
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{Responses: []string{
		`{"words": ["conduct", "manner"], "reasons": ["it is a verb", "it is a noun"]}`,
	}}

	originalPrompt := "List interesting words and give one reason per word."
	res, attempt, err := repair.NewPromptStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": ["conduct", "manner"]}`, originalPrompt))
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if !res.Ok() {
		t.Fatalf("repair result failed: %s", res.Failure().Message())
	}

	value := res.Value()
	if len(value["reasons"].([]string)) != len(value["words"].([]string)) {
		t.Error("with the original prompt the repaired lists should match in length")
	}
	if !attempt.Succeeded {
		t.Error("attempt should be marked succeeded")
	}
	if !strings.Contains(gen.Prompts[0], originalPrompt) {
		t.Error("prompt strategy should include the original prompt in the corrective call")
	}
}

func TestPromptStrategy_RequiresPrompt(t *testing.T) {
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{}

	_, _, err := repair.NewPromptStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": []}`, ""))
	if err == nil {
		t.Fatal("want error when the original prompt is absent")
	}
	if gen.Calls() != 0 {
		t.Error("no model call should be made without the original prompt")
	}
}

func TestStrategy_SingleAttemptOnly(t *testing.T) {
	// A corrective answer that still fails to parse is surfaced as-is:
	// exactly one model call, no internal looping.
	s := wordsReasonsSchema(t)
	gen := &model.Scripted{Responses: []string{
		`still not json`,
		`{"words": ["a"], "reasons": ["b"]}`, // must never be requested
	}}

	res, attempt, err := repair.NewSchemaStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": ["a"]}`, ""))
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if res.Ok() {
		t.Fatal("want the second failure surfaced")
	}
	if res.Failure().Kind != parser.MalformedSyntax {
		t.Errorf("Kind = %v, want MalformedSyntax from the repair answer", res.Failure().Kind)
	}
	if attempt.Succeeded {
		t.Error("attempt should be marked failed")
	}
	if gen.Calls() != 1 {
		t.Errorf("Generate calls = %d, want exactly 1", gen.Calls())
	}
}

func TestStrategy_ServiceErrorAborts(t *testing.T) {
	s := wordsReasonsSchema(t)
	cause := errors.New("quota exceeded")
	gen := &model.Scripted{Err: cause}

	res, attempt, err := repair.NewSchemaStrategy(gen).Repair(t.Context(),
		failedRequest(t, s, `{"words": ["a"]}`, ""))
	if err == nil {
		t.Fatal("want error on service failure")
	}

	var serr *model.ServiceError
	if !errors.As(err, &serr) {
		t.Errorf("want *ServiceError in the chain, got %v", err)
	}
	if attempt != nil {
		t.Error("no attempt should be recorded on service failure")
	}
	if res.Ok() {
		t.Error("no result on service failure")
	}
}

func TestStrategy_ValidatesRequest(t *testing.T) {
	gen := &model.Scripted{}

	if _, _, err := repair.NewSchemaStrategy(gen).Repair(t.Context(), repair.Request{}); err == nil {
		t.Error("want error for empty request")
	}
	if gen.Calls() != 0 {
		t.Error("no model call for an invalid request")
	}
}
