package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"monsoon/internal/domain/entity"
	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockContactInquiryRepository) {
	inquiryRepo := mockRepo.NewMockContactInquiryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewContactService(inquiryRepo, logger), inquiryRepo
}

func TestContactService_SubmitInquiry_Success(t *testing.T) {
	svc, inquiryRepo := createTestContactService(t)
	ctx := context.Background()

	inquiryRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	inquiry, err := svc.SubmitInquiry(ctx, &usecase.ContactInput{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Subject: "Coverage question",
		Message: "Does the crop plan cover delayed monsoon onset?",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, entity.InquiryStatusNew, inquiry.Status)
	assert.Equal(t, "Ravi Kumar", inquiry.Name)
	assert.Equal(t, "Coverage question", inquiry.Subject)
	assert.Empty(t, inquiry.PhoneNumber)
}

func TestContactService_SubmitInquiry_PersistenceFailure(t *testing.T) {
	svc, inquiryRepo := createTestContactService(t)
	ctx := context.Background()

	inquiryRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	inquiry, err := svc.SubmitInquiry(ctx, &usecase.ContactInput{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Subject: "Coverage question",
		Message: "Does the crop plan cover delayed monsoon onset?",
	})

	require.Error(t, err)
	assert.Nil(t, inquiry)
}
