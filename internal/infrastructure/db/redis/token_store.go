package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks revoked session tokens in Redis. Keys expire with the
// token they shadow, so the store never outgrows the live token set.
// Key format: revoked:<sha256(token)>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke marks the token unusable for ttl, the remainder of its lifetime.
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been signed out.
func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *TokenStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
