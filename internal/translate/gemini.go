package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// GeminiTranslator implements Translator using the Gemini API.
type GeminiTranslator struct {
	apiKey string
}

// NewGeminiTranslator creates a Gemini-backed translator.
func NewGeminiTranslator(apiKey string) *GeminiTranslator {
	return &GeminiTranslator{apiKey: apiKey}
}

// Translate translates text from fromLang to toLang.
func (t *GeminiTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if t.apiKey == "" {
		return "", ErrMissingKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  t.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		fromLang, toLang, text)

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}
