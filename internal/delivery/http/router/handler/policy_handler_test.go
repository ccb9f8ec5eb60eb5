package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPolicyTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockPolicyRepository) {
	logger := testLogger()
	policyRepo := mockRepo.NewMockPolicyRepository(t)
	h := NewPolicyHandler(impl.NewPolicyService(policyRepo, logger), logger)

	e := newTestEcho(logger)
	e.GET("/api/policies", h.ListPolicies)
	e.GET("/api/policies/:id", h.GetPolicy)

	return e, policyRepo
}

func TestPolicyHandler_ListPolicies_Success(t *testing.T) {
	e, policyRepo := newPolicyTestServer(t)

	policyRepo.EXPECT().FindAllActive(mock.Anything).Return([]*entity.Policy{
		{
			ID:             "policy-1",
			Name:           "Parametric Monsoon Protection Plus",
			CoverageAmount: decimal.NewFromInt(500000),
			BasePremium:    decimal.NewFromInt(15000),
			CoverageType:   entity.CoverageTypeCrop,
			IsActive:       true,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/policies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID             string `json:"id"`
			CoverageAmount string `json:"coverageAmount"`
			CoverageType   string `json:"coverageType"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "policy-1", body.Data[0].ID)
	assert.Equal(t, "500000.00", body.Data[0].CoverageAmount)
	assert.Equal(t, "crop", body.Data[0].CoverageType)
}

func TestPolicyHandler_GetPolicy_UnknownIDReturnsNotFound(t *testing.T) {
	e, policyRepo := newPolicyTestServer(t)

	policyRepo.EXPECT().FindByID(mock.Anything, "missing-policy").Return(nil, repository.ErrPolicyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/missing-policy", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "POLICY_NOT_FOUND", body.Error.Code)
}
