package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
)

const quoteBaseRate = 0.03

// defaultAverageRisk applies when a state has no weather-risk rows.
const defaultAverageRisk = 2.0

// quoteService implements the QuoteUsecase interface. The calculation is a
// pure function of the input and the weather-risk table, so identical
// requests always produce identical quotes.
type quoteService struct {
	riskRepo repository.WeatherRiskRepository
	logger   *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(
	riskRepo repository.WeatherRiskRepository,
	logger *slog.Logger,
) usecase.QuoteUsecase {
	return &quoteService{
		riskRepo: riskRepo,
		logger:   logger,
	}
}

// CalculatePremium produces a quote from the coverage parameters and the
// current weather-risk data for the requested state.
func (srv *quoteService) CalculatePremium(ctx context.Context, input *usecase.QuoteInput) (*usecase.Quote, error) {
	srv.logger.Debug("Calculating premium",
		"state", input.State,
		"coverageType", input.CoverageType,
		"coverageAmount", input.CoverageAmount,
	)

	risks, err := srv.riskRepo.FindByState(ctx, input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up weather risks")
	}

	averageRisk := defaultAverageRisk
	if len(risks) > 0 {
		var total float64
		for _, risk := range risks {
			total += risk.RiskLevel.Score()
		}
		averageRisk = total / float64(len(risks))
	}

	typeMultiplier := coverageTypeMultiplier(input.CoverageType)
	riskMultiplier := 0.5 + averageRisk*0.25
	effectiveRate := quoteBaseRate * typeMultiplier * riskMultiplier

	return &usecase.Quote{
		CoverageAmount:    input.CoverageAmount,
		CalculatedPremium: int64(math.Round(input.CoverageAmount * effectiveRate)),
		BasePremiumRate:   fmt.Sprintf("%.2f", effectiveRate*100),
		RiskLevel:         quoteRiskLevel(averageRisk),
		Breakdown: usecase.QuoteBreakdown{
			BaseRate:       fmt.Sprintf("%.2f%%", quoteBaseRate*100),
			TypeAdjustment: fmt.Sprintf("%.0f%%", typeMultiplier*100),
			RiskAdjustment: fmt.Sprintf("%.0f%%", riskMultiplier*100),
		},
	}, nil
}

// coverageTypeMultiplier returns the per-asset-class rate adjustment.
// Unrecognized types fall back to 1.0.
func coverageTypeMultiplier(coverageType string) float64 {
	switch entity.CoverageType(coverageType) {
	case entity.CoverageTypeCrop:
		return 1.2
	case entity.CoverageTypeLivestock:
		return 1.5
	default:
		return 1.0
	}
}

// quoteRiskLevel bands the numeric average back into a categorical label.
func quoteRiskLevel(averageRisk float64) entity.RiskLevel {
	switch {
	case averageRisk <= 1.5:
		return entity.RiskLevelLow
	case averageRisk <= 2.5:
		return entity.RiskLevelMedium
	case averageRisk <= 3.5:
		return entity.RiskLevelHigh
	default:
		return entity.RiskLevelVeryHigh
	}
}
