package repositories

import "context"

// CredentialStore persists the Gemini API key under a fixed name.
// Load returns an empty string without error when no key is stored.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)

	Save(ctx context.Context, apiKey string) error
}
