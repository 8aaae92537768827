package repositories

import (
	"context"
	"fmt"
	"os"

	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

// EnvCredentialStore reads the API key from the process environment,
// checking GEMINI_API_KEY first and GOOGLE_API_KEY as a fallback.
type EnvCredentialStore struct {
	vars []string
}

func NewEnvCredentialStore() domainrepos.CredentialStore {
	return &EnvCredentialStore{
		vars: []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	}
}

func (s *EnvCredentialStore) Load(ctx context.Context) (string, error) {
	for _, name := range s.vars {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}
	return "", nil
}

func (s *EnvCredentialStore) Save(ctx context.Context, apiKey string) error {
	return fmt.Errorf("environment credentials are read-only")
}
