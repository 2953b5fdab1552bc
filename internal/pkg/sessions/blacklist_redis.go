package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "token:blacklist:"

// TokenBlacklist stores revoked token ids in redis until they would have
// expired anyway. A nil client degrades to "nothing is revoked" so the API
// stays usable without redis in development.
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func (b *TokenBlacklist) Revoke(tokenId string, ttl time.Duration) error {
	if b.client == nil || tokenId == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(context.Background(), blacklistPrefix+tokenId, "revoked", ttl).Err()
}

func (b *TokenBlacklist) IsRevoked(tokenId string) bool {
	if b.client == nil || tokenId == "" {
		return false
	}
	n, err := b.client.Exists(context.Background(), blacklistPrefix+tokenId).Result()
	if err != nil {
		// Fail open: an unreachable redis must not lock every user out.
		return false
	}
	return n > 0
}
