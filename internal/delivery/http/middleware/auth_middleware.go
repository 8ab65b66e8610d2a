// Package middleware contains the HTTP middleware of the dashboard API.
package middleware

import (
	"strings"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/domain/entity"
	"romaneio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has one of the
// allowed roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !entity.Roles(allowed).Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role '"+role.String()+"'")
			}

			return next(c)
		}
	}
}

// UserIDFromContext reads the authenticated user ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextUserID).(uuid.UUID)

	return userID, ok
}
