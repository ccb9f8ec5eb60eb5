package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/response"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for the public contact form handler.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(contactUC usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
		logger:    logger,
	}
}

// CreateInquiry validates and persists a contact inquiry.
func (h *ContactHandler) CreateInquiry(c echo.Context) error {
	var input usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	inquiry, err := h.contactUC.SubmitInquiry(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toInquiryView(inquiry), "Contact inquiry submitted successfully")
}
