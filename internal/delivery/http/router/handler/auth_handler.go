// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/delivery/http/response"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/service"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accountUC usecase.AccountUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

type createSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateSession validates a token freshly issued by the identity provider
// and merges its claims into the local user record. The frontend calls this
// once after the login callback.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var input createSessionRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	claims, err := h.tokenSvc.ValidateToken(input.Token)
	if err != nil {
		return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
	}

	user, err := h.accountUC.SyncIdentity(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Session established")
}

// GetCurrentUser returns the account behind the authenticated session.
func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
