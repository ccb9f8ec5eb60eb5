package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/response"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeatherRiskHandler holds dependencies for weather-risk handlers.
type WeatherRiskHandler struct {
	riskUC usecase.WeatherRiskUsecase
	logger *slog.Logger
}

// NewWeatherRiskHandler is the constructor for WeatherRiskHandler, injected by Fx.
func NewWeatherRiskHandler(riskUC usecase.WeatherRiskUsecase, logger *slog.Logger) *WeatherRiskHandler {
	return &WeatherRiskHandler{
		riskUC: riskUC,
		logger: logger,
	}
}

// ListWeatherRisks returns risk records, filtered by the optional state
// query parameter.
func (h *WeatherRiskHandler) ListWeatherRisks(c echo.Context) error {
	risks, err := h.riskUC.ListWeatherRisks(c.Request().Context(), c.QueryParam("state"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWeatherRiskViews(risks), "Weather risks retrieved successfully")
}
