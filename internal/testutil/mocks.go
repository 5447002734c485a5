// Package testutil provides mocks and fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
)

// MockTranslator mocks the translation service. Unless a canned
// translation or error is registered for a text, it returns the text
// wrapped in square brackets so tests can tell translated runs apart
// from untouched ones.
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate records the call and returns the canned response.
func (m *MockTranslator) Translate(_ context.Context, text, fromLang, toLang string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s (%s->%s)", text, fromLang, toLang))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return "[" + text + "]", nil
}
