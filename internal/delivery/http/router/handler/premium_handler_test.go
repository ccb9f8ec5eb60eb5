package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/delivery/http/validator"
	"monsoon/internal/domain/entity"
	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newPremiumTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockWeatherRiskRepository) {
	logger := testLogger()
	riskRepo := mockRepo.NewMockWeatherRiskRepository(t)
	h := NewPremiumHandler(impl.NewQuoteService(riskRepo, logger), logger)

	e := newTestEcho(logger)
	e.POST("/api/calculate-premium", h.CalculatePremium)

	return e, riskRepo
}

func TestPremiumHandler_CalculatePremium_Success(t *testing.T) {
	e, riskRepo := newPremiumTestServer(t)

	riskRepo.EXPECT().
		FindByState(mock.Anything, "Rajasthan").
		Return([]*entity.WeatherRisk{
			{RiskLevel: entity.RiskLevelMedium},
			{RiskLevel: entity.RiskLevelLow},
		}, nil)

	rec := postJSON(e, "/api/calculate-premium",
		`{"coverageAmount":500000,"state":"Rajasthan","coverageType":"crop"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			CalculatedPremium int64  `json:"calculatedPremium"`
			BasePremiumRate   string `json:"basePremiumRate"`
			RiskLevel         string `json:"riskLevel"`
			Breakdown         struct {
				BaseRate       string `json:"baseRate"`
				TypeAdjustment string `json:"typeAdjustment"`
				RiskAdjustment string `json:"riskAdjustment"`
			} `json:"breakdown"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(15750), body.Data.CalculatedPremium)
	assert.Equal(t, "3.15", body.Data.BasePremiumRate)
	assert.Equal(t, "low", body.Data.RiskLevel)
	assert.Equal(t, "3.00%", body.Data.Breakdown.BaseRate)
	assert.Equal(t, "120%", body.Data.Breakdown.TypeAdjustment)
	assert.Equal(t, "88%", body.Data.Breakdown.RiskAdjustment)
}

func TestPremiumHandler_CalculatePremium_MissingRequiredFields(t *testing.T) {
	e, _ := newPremiumTestServer(t)

	rec := postJSON(e, "/api/calculate-premium", `{"coverageAmount":500000}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code   string `json:"code"`
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	fields := make([]string, 0, len(body.Error.Fields))
	for _, field := range body.Error.Fields {
		fields = append(fields, field.Field)
	}
	assert.ElementsMatch(t, []string{"state", "coverageType"}, fields)
}
