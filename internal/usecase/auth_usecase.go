// Package usecase defines the application-facing interfaces and DTOs.
package usecase

import (
	"context"

	"romaneio/internal/domain/entity"
)

// LoginInput carries the credentials of a login attempt.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginOutput carries the token pair and the authenticated user.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"usuario"`
}

// RefreshTokenInput carries a refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthUsecase defines authentication operations.
type AuthUsecase interface {
	// Login verifies credentials and issues a token pair.
	// Inactive users are rejected.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*LoginOutput, error)
}
