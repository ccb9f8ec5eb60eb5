package postgres

import (
	"context"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// weatherRiskRepository implements the repository.WeatherRiskRepository interface.
type weatherRiskRepository struct {
	db *gorm.DB
}

// NewWeatherRiskRepository is the constructor for weatherRiskRepository.
func NewWeatherRiskRepository(db *gorm.DB) repository.WeatherRiskRepository {
	return &weatherRiskRepository{
		db: db,
	}
}

// FindAll retrieves every weather-risk record.
func (repo *weatherRiskRepository) FindAll(ctx context.Context) ([]*entity.WeatherRisk, error) {
	var riskModels []*model.WeatherRiskModel

	if err := repo.db.WithContext(ctx).Find(&riskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find weather risks")
	}

	return toWeatherRiskDomainSlice(riskModels), nil
}

// FindByState retrieves the records for one state. An unknown state yields
// an empty slice.
func (repo *weatherRiskRepository) FindByState(ctx context.Context, state string) ([]*entity.WeatherRisk, error) {
	var riskModels []*model.WeatherRiskModel

	if err := repo.db.WithContext(ctx).
		Where("state = ?", state).
		Find(&riskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find weather risks by state")
	}

	return toWeatherRiskDomainSlice(riskModels), nil
}

// Create persists a new weather-risk record.
func (repo *weatherRiskRepository) Create(ctx context.Context, risk *entity.WeatherRisk) error {
	riskM := fromWeatherRiskDomain(risk)

	if err := repo.db.WithContext(ctx).Create(riskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required weather risk information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weather risk")
	}

	risk.LastUpdated = riskM.LastUpdated

	return nil
}

// --- Mapper Functions ---

func toWeatherRiskDomainSlice(models []*model.WeatherRiskModel) []*entity.WeatherRisk {
	risks := make([]*entity.WeatherRisk, 0, len(models))
	for _, riskM := range models {
		risks = append(risks, toWeatherRiskDomain(riskM))
	}

	return risks
}

// toWeatherRiskDomain converts a GORM WeatherRiskModel to a domain WeatherRisk entity.
func toWeatherRiskDomain(data *model.WeatherRiskModel) *entity.WeatherRisk {
	if data == nil {
		return nil
	}

	return &entity.WeatherRisk{
		ID:              data.ID,
		State:           data.State,
		District:        data.District,
		RiskLevel:       entity.RiskLevel(data.RiskLevel),
		AverageRainfall: data.AverageRainfall,
		FloodRisk:       data.FloodRisk,
		DroughtRisk:     data.DroughtRisk,
		CycloneRisk:     data.CycloneRisk,
		LastUpdated:     data.LastUpdated,
	}
}

// fromWeatherRiskDomain converts a domain WeatherRisk entity to a GORM WeatherRiskModel.
func fromWeatherRiskDomain(data *entity.WeatherRisk) *model.WeatherRiskModel {
	if data == nil {
		return nil
	}

	return &model.WeatherRiskModel{
		ID:              data.ID,
		State:           data.State,
		District:        data.District,
		RiskLevel:       string(data.RiskLevel),
		AverageRainfall: data.AverageRainfall,
		FloodRisk:       data.FloodRisk,
		DroughtRisk:     data.DroughtRisk,
		CycloneRisk:     data.CycloneRisk,
	}
}
