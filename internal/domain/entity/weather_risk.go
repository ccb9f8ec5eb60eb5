package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel is the categorical banding derived from a region's numeric
// flood/drought/cyclone sub-scores.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelVeryHigh RiskLevel = "very_high"
)

// Score maps the risk level to the numeric score used by the premium
// formula: low=1, medium=2, high=3, very_high=4. Unknown levels score as
// very_high so a malformed row can never discount a premium.
func (l RiskLevel) Score() float64 {
	switch l {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	default:
		return 4
	}
}

// WeatherRisk is a read-only rainfall-risk record for one state/district.
// Sub-scores are integers on a 1-10 scale.
type WeatherRisk struct {
	ID              string
	State           string
	District        string // Optional; empty for state-wide records.
	RiskLevel       RiskLevel
	AverageRainfall decimal.Decimal // Annual average in millimetres.
	FloodRisk       int
	DroughtRisk     int
	CycloneRisk     int
	LastUpdated     time.Time
}
