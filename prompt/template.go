// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// placeholderRe matches a {name} placeholder run.
var placeholderRe = regexp.MustCompile(`{+[^{}]*}+`)

// Template is a prompt text with {name} placeholders.
type Template struct {
	text string
}

// New returns a [Template] for the given text.
func New(text string) *Template {
	return &Template{text: text}
}

// Text returns the raw template text.
func (t *Template) Text() string {
	return t.text
}

// Fill substitutes every {name} placeholder with vars[name].
//
// A placeholder written {name?} is optional and becomes the empty string
// when the variable is absent. A missing required variable fails the whole
// fill; there are no partial fills. Brace runs that do not contain a valid
// identifier are kept as-is.
func (t *Template) Fill(vars map[string]any) (string, error) {
	var fillErr error

	filled := placeholderRe.ReplaceAllStringFunc(t.text, func(match string) string {
		name := strings.TrimSpace(strings.Trim(match, "{}"))

		optional := false
		if strings.HasSuffix(name, "?") {
			optional = true
			name = strings.TrimSuffix(name, "?")
		}

		if !isIdentifier(name) {
			return match
		}

		if val, ok := vars[name]; ok {
			return fmt.Sprintf("%v", val)
		}
		if optional {
			return ""
		}
		if fillErr == nil {
			fillErr = fmt.Errorf("prompt variable not found: %s", name)
		}
		return match
	})

	if fillErr != nil {
		return "", fillErr
	}
	return filled, nil
}

// isIdentifier checks if the variable name is a valid identifier.
func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	first := rune(s[0])
	if !unicode.IsLetter(first) && first != '_' {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
