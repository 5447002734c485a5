package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	deeplAPIURL     = "https://api.deepl.com/v2/translate"
	deeplFreeAPIURL = "https://api-free.deepl.com/v2/translate"
	deeplTimeout    = 30 * time.Second
)

// DeepLTranslator implements Translator using the DeepL REST API.
type DeepLTranslator struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
}

type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewDeepLTranslator creates a DeepL client. Free-tier keys (":fx"
// suffix) are routed to the free API host.
func NewDeepLTranslator(apiKey string) *DeepLTranslator {
	apiURL := deeplAPIURL
	if strings.HasSuffix(apiKey, ":fx") {
		apiURL = deeplFreeAPIURL
	}

	return &DeepLTranslator{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: deeplTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name: "deepl",
		}),
	}
}

// SetAPIURL overrides the API endpoint, for tests.
func (d *DeepLTranslator) SetAPIURL(apiURL string) {
	d.apiURL = apiURL
}

// Translate translates text from fromLang to toLang. The call goes
// through a circuit breaker so a failing DeepL endpoint trips to
// fail-fast instead of timing out on every remaining run.
func (d *DeepLTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if d.apiKey == "" {
		return "", ErrMissingKey
	}

	return d.breaker.Execute(func() (string, error) {
		return d.translate(ctx, text, fromLang, toLang)
	})
}

func (d *DeepLTranslator) translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	body, err := json.Marshal(deeplRequest{
		Text:       []string{text},
		SourceLang: fromLang,
		TargetLang: toLang,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("DeepL API error %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var deeplResp deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&deeplResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(deeplResp.Translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return deeplResp.Translations[0].Text, nil
}
