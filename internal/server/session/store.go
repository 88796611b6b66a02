// Package session implements the authentication session lifecycle: opaque
// tokens with an absolute TTL, validated on every protected request.
// Sessions are never persisted to durable storage: a server restart (or, for
// the redis store, a flush) invalidates all of them, which is acceptable at a
// 300-second lifetime.
package session

import (
	"context"
	"time"
)

// Store maps opaque tokens to user identities with an absolute expiry.
//
// Get returns common.ErrorNoSession for unknown tokens and, where the backend
// can tell the difference, common.ErrorSessionExpired for tokens that existed
// but ran out. Callers treat both the same; the distinction is for logs.
type Store interface {
	Save(ctx context.Context, token string, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
