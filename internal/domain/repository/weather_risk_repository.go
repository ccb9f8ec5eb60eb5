package repository

import (
	"context"

	"monsoon/internal/domain/entity"
)

// WeatherRiskRepository defines read access to the per-state/district
// rainfall-risk records. Rows are written only by the seeding bootstrap.
type WeatherRiskRepository interface {
	// FindAll retrieves every weather-risk record.
	FindAll(ctx context.Context) ([]*entity.WeatherRisk, error)

	// FindByState retrieves the records for one state. An unknown state
	// yields an empty slice, not an error.
	FindByState(ctx context.Context, state string) ([]*entity.WeatherRisk, error)

	// Create persists a new record. Used by the bootstrap step.
	Create(ctx context.Context, risk *entity.WeatherRisk) error
}
