package postgres

import (
	"context"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// policyApplicationRepository implements the repository.PolicyApplicationRepository interface.
type policyApplicationRepository struct {
	db *gorm.DB
}

// NewPolicyApplicationRepository is the constructor for policyApplicationRepository.
func NewPolicyApplicationRepository(db *gorm.DB) repository.PolicyApplicationRepository {
	return &policyApplicationRepository{
		db: db,
	}
}

// Create persists a new application row.
func (repo *policyApplicationRepository) Create(ctx context.Context, application *entity.PolicyApplication) error {
	applicationM := fromPolicyApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or policy reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create policy application")
	}

	application.ApplicationDate = applicationM.ApplicationDate

	return nil
}

// FindByUser retrieves the applications owned by one user, most recent first.
func (repo *policyApplicationRepository) FindByUser(ctx context.Context, userID string) ([]*entity.PolicyApplication, error) {
	var applicationModels []*model.PolicyApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find policy applications by user")
	}

	applications := make([]*entity.PolicyApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toPolicyApplicationDomain(applicationM))
	}

	return applications, nil
}

// FindByID retrieves a single application by its identifier.
func (repo *policyApplicationRepository) FindByID(ctx context.Context, id string) (*entity.PolicyApplication, error) {
	var applicationM model.PolicyApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy application by id")
	}

	return toPolicyApplicationDomain(&applicationM), nil
}

// --- Mapper Functions ---

// toPolicyApplicationDomain converts a GORM PolicyApplicationModel to a domain entity.
func toPolicyApplicationDomain(data *model.PolicyApplicationModel) *entity.PolicyApplication {
	if data == nil {
		return nil
	}

	return &entity.PolicyApplication{
		ID:                data.ID,
		UserID:            data.UserID,
		PolicyID:          data.PolicyID,
		ApplicationData:   data.ApplicationData,
		CalculatedPremium: data.CalculatedPremium,
		Status:            entity.ApplicationStatus(data.Status),
		ApplicationDate:   data.ApplicationDate,
		ApprovalDate:      data.ApprovalDate,
	}
}

// fromPolicyApplicationDomain converts a domain entity to a GORM PolicyApplicationModel.
func fromPolicyApplicationDomain(data *entity.PolicyApplication) *model.PolicyApplicationModel {
	if data == nil {
		return nil
	}

	return &model.PolicyApplicationModel{
		ID:                data.ID,
		UserID:            data.UserID,
		PolicyID:          data.PolicyID,
		ApplicationData:   datatypes.JSONMap(data.ApplicationData),
		CalculatedPremium: data.CalculatedPremium,
		Status:            string(data.Status),
		ApplicationDate:   data.ApplicationDate,
		ApprovalDate:      data.ApprovalDate,
	}
}
