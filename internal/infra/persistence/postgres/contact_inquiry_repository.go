package postgres

import (
	"context"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactInquiryRepository implements the repository.ContactInquiryRepository interface.
type contactInquiryRepository struct {
	db *gorm.DB
}

// NewContactInquiryRepository is the constructor for contactInquiryRepository.
func NewContactInquiryRepository(db *gorm.DB) repository.ContactInquiryRepository {
	return &contactInquiryRepository{
		db: db,
	}
}

// Create persists a new inquiry row.
func (repo *contactInquiryRepository) Create(ctx context.Context, inquiry *entity.ContactInquiry) error {
	inquiryM := fromContactInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inquiry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact inquiry")
	}

	inquiry.CreatedAt = inquiryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toContactInquiryDomain converts a GORM ContactInquiryModel to a domain entity.
func toContactInquiryDomain(data *model.ContactInquiryModel) *entity.ContactInquiry {
	if data == nil {
		return nil
	}

	return &entity.ContactInquiry{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Subject:     data.Subject,
		Message:     data.Message,
		Status:      entity.InquiryStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}

// fromContactInquiryDomain converts a domain entity to a GORM ContactInquiryModel.
func fromContactInquiryDomain(data *entity.ContactInquiry) *model.ContactInquiryModel {
	if data == nil {
		return nil
	}

	return &model.ContactInquiryModel{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Subject:     data.Subject,
		Message:     data.Message,
		Status:      string(data.Status),
	}
}
