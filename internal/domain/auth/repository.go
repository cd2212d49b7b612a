package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists refresh tokens by hash.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	// IsRefreshTokenRevoked returns the owner of token and whether it is revoked or expired.
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (deleted int64, err error)
}

// AccessTokenDenylist remembers logged-out access tokens until they expire.
type AccessTokenDenylist interface {
	Deny(ctx context.Context, token string, ttl time.Duration) error
	IsDenied(ctx context.Context, token string) (bool, error)
}
