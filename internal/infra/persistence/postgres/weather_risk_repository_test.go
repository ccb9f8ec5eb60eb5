package postgres

import (
	"testing"

	"monsoon/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeatherRisk(id, state, district string, level entity.RiskLevel) *entity.WeatherRisk {
	return &entity.WeatherRisk{
		ID:              id,
		State:           state,
		District:        district,
		RiskLevel:       level,
		AverageRainfall: decimal.NewFromInt(2800),
		FloodRisk:       8,
		DroughtRisk:     2,
		CycloneRisk:     6,
	}
}

func TestWeatherRiskRepository_FindByState(t *testing.T) {
	repo := NewWeatherRiskRepository(openTestDB(t))

	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-1", "Kerala", "Kochi", entity.RiskLevelHigh)))
	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-2", "Kerala", "Wayanad", entity.RiskLevelVeryHigh)))
	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-3", "Rajasthan", "Jaipur", entity.RiskLevelLow)))

	risks, err := repo.FindByState(t.Context(), "Kerala")

	require.NoError(t, err)
	require.Len(t, risks, 2)
	for _, risk := range risks {
		assert.Equal(t, "Kerala", risk.State)
	}
}

func TestWeatherRiskRepository_FindByState_UnknownStateIsEmpty(t *testing.T) {
	repo := NewWeatherRiskRepository(openTestDB(t))

	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-1", "Kerala", "Kochi", entity.RiskLevelHigh)))

	risks, err := repo.FindByState(t.Context(), "Atlantis")

	require.NoError(t, err)
	assert.Empty(t, risks)
}

func TestWeatherRiskRepository_FindAll(t *testing.T) {
	repo := NewWeatherRiskRepository(openTestDB(t))

	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-1", "Kerala", "Kochi", entity.RiskLevelHigh)))
	require.NoError(t, repo.Create(t.Context(), testWeatherRisk("risk-2", "Rajasthan", "Jaipur", entity.RiskLevelLow)))

	risks, err := repo.FindAll(t.Context())

	require.NoError(t, err)
	require.Len(t, risks, 2)
	assert.False(t, risks[0].LastUpdated.IsZero())
	assert.True(t, risks[0].AverageRainfall.Equal(decimal.NewFromInt(2800)))
}
