package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	domainrepos "github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/repositories"
)

// Fixed name the credential is stored under.
const credentialKey = "veo:gemini_api_key"

type RedisCredentialStore struct {
	client *redis.Client
}

func NewRedisCredentialStore(client *redis.Client) domainrepos.CredentialStore {
	return &RedisCredentialStore{client: client}
}

// ConnectRedis creates and pings a Redis client, returning nil when the
// server is unreachable so the caller can fall back to the memory store.
func ConnectRedis(addr, password string) *redis.Client {
	log.Printf("[boot] Connecting to Redis: %s", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[boot] Redis ping failed: %v", err)
		return nil
	}

	return client
}

func (s *RedisCredentialStore) Load(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, credentialKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return value, nil
}

func (s *RedisCredentialStore) Save(ctx context.Context, apiKey string) error {
	if err := s.client.Set(ctx, credentialKey, apiKey, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}
