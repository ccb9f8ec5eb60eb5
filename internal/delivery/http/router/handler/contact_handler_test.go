package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockContactInquiryRepository) {
	logger := testLogger()
	inquiryRepo := mockRepo.NewMockContactInquiryRepository(t)
	h := NewContactHandler(impl.NewContactService(inquiryRepo, logger), logger)

	e := newTestEcho(logger)
	e.POST("/api/contact", h.CreateInquiry)

	return e, inquiryRepo
}

func TestContactHandler_CreateInquiry_Success(t *testing.T) {
	e, inquiryRepo := newContactTestServer(t)

	inquiryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rec := postJSON(e, "/api/contact",
		`{"name":"Ravi Kumar","email":"ravi@example.com","subject":"Coverage question","message":"What does the crop plan cover?"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID      string `json:"id"`
			Status  string `json:"status"`
			Subject string `json:"subject"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.ID)
	assert.Equal(t, "new", body.Data.Status)
	assert.Equal(t, "Coverage question", body.Data.Subject)
}

func TestContactHandler_CreateInquiry_ShortMessageRejected(t *testing.T) {
	e, _ := newContactTestServer(t)

	// Message of length 9 fails the 10-character minimum; nothing persisted.
	rec := postJSON(e, "/api/contact",
		`{"name":"Ravi Kumar","email":"ravi@example.com","subject":"Coverage question","message":"123456789"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Error   struct {
			Code   string `json:"code"`
			Fields []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid form data", body.Message)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	require.Len(t, body.Error.Fields, 1)
	assert.Equal(t, "message", body.Error.Fields[0].Field)
	assert.Equal(t, "Message must be at least 10 characters", body.Error.Fields[0].Message)
}
