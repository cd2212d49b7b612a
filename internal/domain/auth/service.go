package auth

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, session SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, req LogoutRequest) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error)
}
