package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/delivery/http/response"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicationHandler holds dependencies for policy application handlers.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(applicationUC usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: applicationUC,
		logger:        logger,
	}
}

// CreateApplication validates and persists a new policy application for the
// authenticated user.
func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var input usecase.ApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	application, err := h.applicationUC.SubmitApplication(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toApplicationView(application), "Application submitted successfully")
}

// ListUserApplications returns the caller's applications, most recent first.
func (h *ApplicationHandler) ListUserApplications(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationUC.GetUserApplications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationViews(applications), "Applications retrieved successfully")
}
