package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
)

const revokedKeyPrefix = "session:revoked:"

// SessionRevocationRepository remembers revoked session token ids in Redis
// until the tokens would have expired anyway.
type SessionRevocationRepository struct {
	client *redis.Client
}

func NewSessionRevocationRepository(client *redis.Client) *SessionRevocationRepository {
	return &SessionRevocationRepository{client: client}
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl is a no-op
// since the token is already expired.
func (r *SessionRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedKeyPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("cache command",
		"op", "set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

func (r *SessionRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedKeyPrefix + tokenID
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("cache command",
		"op", "exists",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
