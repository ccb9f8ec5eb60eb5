package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeatherRiskModel mirrors the 'weather_risks' table. One row per
// state/district; sub-scores are on a 1-10 scale.
type WeatherRiskModel struct {
	ID              string          `gorm:"type:varchar(64);primaryKey"`
	State           string          `gorm:"type:varchar(100);not null;index"`
	District        string          `gorm:"type:varchar(100)"`
	RiskLevel       string          `gorm:"type:varchar(20);not null"`
	AverageRainfall decimal.Decimal `gorm:"type:decimal(8,2)"`
	FloodRisk       int
	DroughtRisk     int
	CycloneRisk     int
	LastUpdated     time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (WeatherRiskModel) TableName() string {
	return "weather_risks"
}
