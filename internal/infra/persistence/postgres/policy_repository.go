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

// policyRepository implements the repository.PolicyRepository interface.
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository is the constructor for policyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{
		db: db,
	}
}

// FindAllActive retrieves every active catalog entry.
func (repo *policyRepository) FindAllActive(ctx context.Context) ([]*entity.Policy, error) {
	var policyModels []*model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&policyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active policies")
	}

	policies := make([]*entity.Policy, 0, len(policyModels))
	for _, policyM := range policyModels {
		policies = append(policies, toPolicyDomain(policyM))
	}

	return policies, nil
}

// FindByID retrieves a single policy by its identifier.
func (repo *policyRepository) FindByID(ctx context.Context, id string) (*entity.Policy, error) {
	var policyM model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by id")
	}

	return toPolicyDomain(&policyM), nil
}

// Create persists a new catalog entry.
func (repo *policyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	policyM := fromPolicyDomain(policy)

	if err := repo.db.WithContext(ctx).Create(policyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required policy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create policy")
	}

	policy.CreatedAt = policyM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toPolicyDomain converts a GORM PolicyModel to a domain Policy entity.
func toPolicyDomain(data *model.PolicyModel) *entity.Policy {
	if data == nil {
		return nil
	}

	return &entity.Policy{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		CoverageAmount:      data.CoverageAmount,
		BasePremium:         data.BasePremium,
		CoverageType:        entity.CoverageType(data.CoverageType),
		Features:            data.Features,
		EligibilityCriteria: data.EligibilityCriteria,
		Exclusions:          data.Exclusions,
		ClaimProcess:        data.ClaimProcess,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
	}
}

// fromPolicyDomain converts a domain Policy entity to a GORM PolicyModel.
func fromPolicyDomain(data *entity.Policy) *model.PolicyModel {
	if data == nil {
		return nil
	}

	return &model.PolicyModel{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		CoverageAmount:      data.CoverageAmount,
		BasePremium:         data.BasePremium,
		CoverageType:        string(data.CoverageType),
		Features:            datatypes.NewJSONSlice(data.Features),
		EligibilityCriteria: datatypes.NewJSONSlice(data.EligibilityCriteria),
		Exclusions:          datatypes.NewJSONSlice(data.Exclusions),
		ClaimProcess:        data.ClaimProcess,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
	}
}
