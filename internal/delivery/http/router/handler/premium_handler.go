package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/response"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PremiumHandler holds dependencies for the premium calculator handler.
type PremiumHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewPremiumHandler is the constructor for PremiumHandler, injected by Fx.
func NewPremiumHandler(quoteUC usecase.QuoteUsecase, logger *slog.Logger) *PremiumHandler {
	return &PremiumHandler{
		quoteUC: quoteUC,
		logger:  logger,
	}
}

// CalculatePremium computes a quote from the coverage parameters and the
// state's weather-risk data.
func (h *PremiumHandler) CalculatePremium(c echo.Context) error {
	var input usecase.QuoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid premium input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	quote, err := h.quoteUC.CalculatePremium(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Premium calculated successfully")
}
