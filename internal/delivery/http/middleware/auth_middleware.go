// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyClaims = "identityClaims"
)

// AuthMiddleware validates the bearer token issued by the identity provider
// and exposes the resolved claims to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token. The error
// middleware renders the rejection as a 401 envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// UserID extracts the authenticated user's identifier from the context. It
// must be called behind Authenticate.
func UserID(c echo.Context) (string, error) {
	userID, ok := c.Get(ContextKeyUserID).(string)
	if !ok || userID == "" {
		return "", domainerrors.ErrUnauthorized.WithDetails("User ID missing from session")
	}

	return userID, nil
}
