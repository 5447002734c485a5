package translate

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingKey is returned by providers constructed without an API key.
var ErrMissingKey = errors.New("translation API key not found")

// Translator translates text from one language code to another.
type Translator interface {
	Translate(ctx context.Context, text, fromLang, toLang string) (string, error)
}

// TranslationCache stores completed translations for the duration of one
// run, keyed by text and language pair.
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates an empty translation cache.
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add records a translation.
func (tc *TranslationCache) Add(text, fromLang, toLang, translation string) {
	tc.translations[cacheKey(text, fromLang, toLang)] = translation
}

// Get retrieves a previously recorded translation.
func (tc *TranslationCache) Get(text, fromLang, toLang string) (string, bool) {
	translation, ok := tc.translations[cacheKey(text, fromLang, toLang)]
	return translation, ok
}

// Len returns the number of cached translations.
func (tc *TranslationCache) Len() int {
	return len(tc.translations)
}

func cacheKey(text, fromLang, toLang string) string {
	return fmt.Sprintf("%s\x00%s\x00%s", fromLang, toLang, text)
}

// CachedTranslator wraps a Translator with a TranslationCache so the same
// text is only sent to the backend once per run.
type CachedTranslator struct {
	inner Translator
	cache *TranslationCache
}

// NewCachedTranslator wraps inner with a fresh cache.
func NewCachedTranslator(inner Translator) *CachedTranslator {
	return &CachedTranslator{
		inner: inner,
		cache: NewTranslationCache(),
	}
}

// Translate returns the cached translation when available, otherwise
// delegates to the wrapped translator and records the result.
func (ct *CachedTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if translation, ok := ct.cache.Get(text, fromLang, toLang); ok {
		return translation, nil
	}

	translation, err := ct.inner.Translate(ctx, text, fromLang, toLang)
	if err != nil {
		return "", err
	}
	ct.cache.Add(text, fromLang, toLang, translation)
	return translation, nil
}
