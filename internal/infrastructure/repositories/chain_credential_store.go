package repositories

import (
	"context"
	"fmt"

	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

// ChainCredentialStore resolves the key from an ordered list of stores.
// The persisted store comes first, the environment fallback last; saves go
// to the first store in the chain.
type ChainCredentialStore struct {
	stores []domainrepos.CredentialStore
}

func NewChainCredentialStore(stores ...domainrepos.CredentialStore) domainrepos.CredentialStore {
	return &ChainCredentialStore{stores: stores}
}

func (s *ChainCredentialStore) Load(ctx context.Context) (string, error) {
	for _, store := range s.stores {
		value, err := store.Load(ctx)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
	return "", nil
}

func (s *ChainCredentialStore) Save(ctx context.Context, apiKey string) error {
	if len(s.stores) == 0 {
		return fmt.Errorf("no credential store configured")
	}
	return s.stores[0].Save(ctx, apiKey)
}
