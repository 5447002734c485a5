package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAITranslator implements Translator using an OpenAI chat model.
type OpenAITranslator struct {
	apiKey string
	client *openai.Client
}

// NewOpenAITranslator creates an OpenAI-backed translator.
func NewOpenAITranslator(apiKey string) *OpenAITranslator {
	return &OpenAITranslator{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Translate translates text from fromLang to toLang.
func (t *OpenAITranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if t.apiKey == "" {
		return "", ErrMissingKey
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
					fromLang, toLang, text),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
