package repositories

import (
	"context"

	genai_std "google.golang.org/genai"
)

// GenAI Client Pool Service
// Shared client pool for the Veo and Gemini services. The pool caches one
// client per API key and rebuilds it when the key changes.
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context, geminiApiKey string) (*genai_std.Client, error)

	Close() error
}
