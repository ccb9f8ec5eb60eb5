package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
)

// WeatherRiskUsecase defines the interface for weather-risk lookup use cases.
type WeatherRiskUsecase interface {
	// ListWeatherRisks retrieves risk records, optionally filtered by state.
	// An empty state returns every record; an unknown state returns an empty
	// slice.
	ListWeatherRisks(ctx context.Context, state string) ([]*entity.WeatherRisk, error)
}
