package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/domain/service"
	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(t *testing.T) (usecase.AccountUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewAccountService(userRepo, logger), userRepo
}

func TestAccountService_GetUser_Success(t *testing.T) {
	svc, userRepo := createTestAccountService(t)
	ctx := context.Background()

	expected := &entity.User{ID: "user-1", Email: "asha@example.com"}
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(expected, nil)

	user, err := svc.GetUser(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	svc, userRepo := createTestAccountService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestAccountService_GetUser_RepositoryFailure(t *testing.T) {
	svc, userRepo := createTestAccountService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, "user-1").Return(nil, errors.New("connection refused"))

	user, err := svc.GetUser(ctx, "user-1")

	require.Error(t, err)
	assert.Nil(t, user)
}

func TestAccountService_SyncIdentity_Success(t *testing.T) {
	svc, userRepo := createTestAccountService(t)
	ctx := context.Background()

	claims := &service.IdentityClaims{
		UserID:          "user-1",
		Email:           "asha@example.com",
		FirstName:       "Asha",
		LastName:        "Nair",
		ProfileImageURL: "https://example.com/asha.png",
	}

	stored := &entity.User{ID: "user-1", Email: "asha@example.com", PhoneNumber: "9876543210"}
	userRepo.EXPECT().
		Upsert(ctx, &entity.User{
			ID:              "user-1",
			Email:           "asha@example.com",
			FirstName:       "Asha",
			LastName:        "Nair",
			ProfileImageURL: "https://example.com/asha.png",
		}).
		Return(stored, nil)

	user, err := svc.SyncIdentity(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAccountService_SyncIdentity_MissingClaims(t *testing.T) {
	svc, _ := createTestAccountService(t)

	user, err := svc.SyncIdentity(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, user)
}

func TestAccountService_SyncIdentity_UpsertFailure(t *testing.T) {
	svc, userRepo := createTestAccountService(t)
	ctx := context.Background()

	claims := &service.IdentityClaims{UserID: "user-1", Email: "asha@example.com"}
	userRepo.EXPECT().
		Upsert(ctx, &entity.User{ID: "user-1", Email: "asha@example.com"}).
		Return(nil, errors.New("insert failed"))

	user, err := svc.SyncIdentity(ctx, claims)

	require.Error(t, err)
	assert.Nil(t, user)
}
