package impl

import (
	"context"
	"log/slog"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	"monsoon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	inquiryRepo repository.ContactInquiryRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	inquiryRepo repository.ContactInquiryRepository,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

// SubmitInquiry persists a new inquiry with the "new" triage status.
func (srv *contactService) SubmitInquiry(ctx context.Context, input *usecase.ContactInput) (*entity.ContactInquiry, error) {
	srv.logger.Info("Submitting contact inquiry", "subject", input.Subject)

	inquiry := &entity.ContactInquiry{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Subject:     input.Subject,
		Message:     input.Message,
		Status:      entity.InquiryStatusNew,
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to create contact inquiry")
	}

	return inquiry, nil
}
