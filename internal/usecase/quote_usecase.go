package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
)

// QuoteInput carries the parameters of a premium quote request.
// PropertyValue and FarmSize are accepted for forward compatibility but do
// not influence the formula.
type QuoteInput struct {
	CoverageAmount float64 `json:"coverageAmount" validate:"required,gt=0"`
	State          string  `json:"state" validate:"required"`
	CoverageType   string  `json:"coverageType" validate:"required"`
	PropertyValue  float64 `json:"propertyValue,omitempty"`
	FarmSize       float64 `json:"farmSize,omitempty"`
}

// QuoteBreakdown itemizes the three rate components as percentage strings.
type QuoteBreakdown struct {
	BaseRate       string `json:"baseRate"`
	TypeAdjustment string `json:"typeAdjustment"`
	RiskAdjustment string `json:"riskAdjustment"`
}

// Quote is the computed premium quote returned to the client. Rates are
// pre-formatted percentage strings, matching what the quote widget renders.
type Quote struct {
	CoverageAmount    float64          `json:"coverageAmount"`
	CalculatedPremium int64            `json:"calculatedPremium"`
	BasePremiumRate   string           `json:"basePremiumRate"`
	RiskLevel         entity.RiskLevel `json:"riskLevel"`
	Breakdown         QuoteBreakdown   `json:"breakdown"`
}

// QuoteUsecase defines the interface for the premium calculator use case.
type QuoteUsecase interface {
	// CalculatePremium produces a quote from the coverage parameters and the
	// current weather-risk data for the requested state. It is deterministic:
	// identical inputs against unchanged risk data yield identical quotes.
	CalculatePremium(ctx context.Context, input *QuoteInput) (*Quote, error)
}
