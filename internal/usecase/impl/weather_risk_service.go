package impl

import (
	"context"
	"log/slog"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
)

// weatherRiskService implements the WeatherRiskUsecase interface.
type weatherRiskService struct {
	riskRepo repository.WeatherRiskRepository
	logger   *slog.Logger
}

// NewWeatherRiskService is the constructor for weatherRiskService.
func NewWeatherRiskService(
	riskRepo repository.WeatherRiskRepository,
	logger *slog.Logger,
) usecase.WeatherRiskUsecase {
	return &weatherRiskService{
		riskRepo: riskRepo,
		logger:   logger,
	}
}

// ListWeatherRisks retrieves risk records, optionally filtered by state.
func (srv *weatherRiskService) ListWeatherRisks(ctx context.Context, state string) ([]*entity.WeatherRisk, error) {
	if state == "" {
		risks, err := srv.riskRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list weather risks")
		}

		return risks, nil
	}

	srv.logger.Debug("Listing weather risks for state", "state", state)

	risks, err := srv.riskRepo.FindByState(ctx, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weather risks by state")
	}

	return risks, nil
}
