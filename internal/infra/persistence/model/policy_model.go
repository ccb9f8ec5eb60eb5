package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PolicyModel mirrors the 'policies' table. List columns are stored as JSON
// so the schema stays portable across PostgreSQL and the in-memory SQLite
// used in tests.
type PolicyModel struct {
	ID                  string                      `gorm:"type:varchar(64);primaryKey"`
	Name                string                      `gorm:"type:varchar(255);not null"`
	Description         string                      `gorm:"type:text;not null"`
	CoverageAmount      decimal.Decimal             `gorm:"type:decimal(12,2);not null"`
	BasePremium         decimal.Decimal             `gorm:"type:decimal(10,2);not null"`
	CoverageType        string                      `gorm:"type:varchar(20);not null;index"`
	Features            datatypes.JSONSlice[string] `gorm:"not null"`
	EligibilityCriteria datatypes.JSONSlice[string] `gorm:"not null"`
	Exclusions          datatypes.JSONSlice[string] `gorm:"not null"`
	ClaimProcess        string                      `gorm:"type:text;not null"`
	IsActive            bool                        `gorm:"default:true;index"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PolicyModel) TableName() string {
	return "policies"
}
