package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

const deniedAccessTokenPrefix = "denied_access_token:"

// Store is the subset of redis commands the denylist needs.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type accessTokenDenylistImpl struct {
	store Store
}

// NewAccessTokenDenylist keeps logged-out access tokens in redis until they expire.
func NewAccessTokenDenylist(store Store) auth.AccessTokenDenylist {
	return &accessTokenDenylistImpl{store: store}
}

func deniedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return deniedAccessTokenPrefix + hex.EncodeToString(sum[:])
}

// Deny implements auth.AccessTokenDenylist. Tokens with no remaining lifetime are skipped.
func (d *accessTokenDenylistImpl) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.store.Set(ctx, deniedKey(token), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to deny access token: %w", err)
	}
	return nil
}

// IsDenied implements auth.AccessTokenDenylist.
func (d *accessTokenDenylistImpl) IsDenied(ctx context.Context, token string) (bool, error) {
	n, err := d.store.Exists(ctx, deniedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check access token: %w", err)
	}
	return n > 0, nil
}
