package repositories

import (
	"context"
	"sync"

	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

// MemoryCredentialStore holds the key in process memory. Used when Redis is
// not configured; the key then lives only for the server's lifetime.
type MemoryCredentialStore struct {
	mu     sync.RWMutex
	apiKey string
}

func NewMemoryCredentialStore() domainrepos.CredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.apiKey, nil
}

func (s *MemoryCredentialStore) Save(ctx context.Context, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apiKey = apiKey
	return nil
}
