package ports

import (
	"context"
	"time"
)

// TokenStore tracks revoked session tokens. Entries expire together with
// the token they shadow, so the store never grows past the live token set.
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
