package service

import (
	"time"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the validated content of an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Type   string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token string and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
