package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	"monsoon/internal/domain/service"
	mockRepo "monsoon/internal/mocks/repository"
	mockSvc "monsoon/internal/mocks/service"
	"monsoon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockUserRepository, *mockSvc.MockTokenService) {
	logger := testLogger()
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	h := NewAuthHandler(impl.NewAccountService(userRepo, logger), tokenSvc, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho(logger)
	e.POST("/api/auth/session", h.CreateSession)
	e.GET("/api/auth/user", h.GetCurrentUser, authMiddleware.Authenticate)

	return e, userRepo, tokenSvc
}

func TestAuthHandler_CreateSession_Success(t *testing.T) {
	e, userRepo, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().ValidateToken("fresh-token").Return(&service.IdentityClaims{
		UserID:    "user-1",
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Nair",
	}, nil)
	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(&entity.User{
		ID:        "user-1",
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Nair",
	}, nil)

	rec := postJSON(e, "/api/auth/session", `{"token": "fresh-token"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Session established", body.Message)
	assert.Equal(t, "user-1", body.Data.ID)
	assert.Equal(t, "asha@example.com", body.Data.Email)
}

func TestAuthHandler_CreateSession_InvalidToken(t *testing.T) {
	e, _, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().ValidateToken("stale-token").Return(nil, errors.New("token is expired"))

	rec := postJSON(e, "/api/auth/session", `{"token": "stale-token"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestAuthHandler_GetCurrentUser_Success(t *testing.T) {
	e, userRepo, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.IdentityClaims{UserID: "user-1"}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, "user-1").Return(&entity.User{
		ID:    "user-1",
		Email: "asha@example.com",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "asha@example.com", body.Data.Email)
}

func TestAuthHandler_GetCurrentUser_UnprovisionedUser(t *testing.T) {
	e, userRepo, tokenSvc := newAuthTestServer(t)

	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.IdentityClaims{UserID: "ghost"}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}
