// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/outparse/internal/pool"
)

// Mode selects the structural encoding the model is asked for and the parser
// decodes.
type Mode int

const (
	// ModeJSON expects a single JSON object with one key per declared field.
	ModeJSON Mode = iota

	// ModeList expects a flat list of values separated by commas or
	// newlines. Only schemas with exactly one list-typed field support it.
	ModeList
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

var jsonInstructionsHeader = heredoc.Doc(`
	Respond with a JSON object, optionally wrapped in a markdown code fence,
	that contains exactly the following keys:
`)

var jsonInstructionsFooter = heredoc.Doc(`
	Do not emit keys that are not listed above, and do not rename keys.
`)

var listInstructionsHeader = heredoc.Doc(`
	Your response should be a list of values separated by commas or newlines,
	eg: ` + "`foo, bar, baz`" + `
`)

// FormatInstructions renders the instruction block that tells the model how
// to shape its answer for this schema, suitable for embedding into a prompt.
func (s *Schema) FormatInstructions(mode Mode) string {
	b := pool.String.Get()
	b.Reset()
	defer pool.String.Put(b)

	switch mode {
	case ModeList:
		b.WriteString(listInstructionsHeader)
		for _, f := range s.fields {
			if f.Description != "" {
				b.WriteString("\nThe list holds: ")
				b.WriteString(f.Description)
				b.WriteString("\n")
			}
		}

	default:
		b.WriteString(jsonInstructionsHeader)
		b.WriteString("\n{\n")
		for i, f := range s.fields {
			fmt.Fprintf(b, "\t%q: <%s>", f.Name, f.Type)
			if f.Description != "" {
				fmt.Fprintf(b, "  // %s", f.Description)
			}
			if i < len(s.fields)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n\n")
		b.WriteString(jsonInstructionsFooter)
	}

	return b.String()
}
