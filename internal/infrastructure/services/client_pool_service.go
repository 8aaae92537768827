package services

import (
	"context"
	"fmt"
	"sync"

	genai_std "google.golang.org/genai"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

// GenAI Client Pool
type genAIClientPool struct {
	mutex  sync.RWMutex
	apiKey string
	client *genai_std.Client
}

func NewGenAIClientPool() repositories.GenAIClientPool {
	return &genAIClientPool{}
}

func (p *genAIClientPool) GetGenAIClient(
	ctx context.Context,
	geminiApiKey string,
) (*genai_std.Client, error) {
	p.mutex.RLock()
	if p.client != nil && p.apiKey == geminiApiKey {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Double-checked locking; the key may also have changed since the RLock.
	if p.client != nil && p.apiKey == geminiApiKey {
		return p.client, nil
	}

	client, err := genai_std.NewClient(ctx, &genai_std.ClientConfig{
		APIKey:  geminiApiKey,
		Backend: genai_std.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client
	p.apiKey = geminiApiKey

	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		// The GenAI client needs no resource cleanup.
		p.client = nil
		p.apiKey = ""
	}
	return nil
}
