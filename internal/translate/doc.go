// Package translate provides text translation between two language codes.
// DeepL is the default backend; OpenAI and Gemini backends can be selected
// instead. A per-run in-memory cache avoids re-translating identical text.
package translate
