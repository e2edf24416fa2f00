package auth

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (user.UserResponse, error)
	UpdateProfile(ctx context.Context, actor user.Actor, req user.UpdateUserRequest) (user.UserResponse, error)
}
