package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PolicyApplicationModel mirrors the 'policy_applications' table. The form
// payload is stored opaquely as JSON.
type PolicyApplicationModel struct {
	ID                string            `gorm:"type:varchar(64);primaryKey"`
	UserID            string            `gorm:"type:varchar(64);not null;index"`
	PolicyID          string            `gorm:"type:varchar(64);not null"`
	ApplicationData   datatypes.JSONMap `gorm:"not null"`
	CalculatedPremium decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Status            string            `gorm:"type:varchar(20);not null;default:pending"`
	ApplicationDate   time.Time         `gorm:"index"`
	ApprovalDate      *time.Time

	User   *UserModel   `gorm:"foreignKey:UserID"`
	Policy *PolicyModel `gorm:"foreignKey:PolicyID"`
}

// TableName explicitly sets the table name for GORM.
func (PolicyApplicationModel) TableName() string {
	return "policy_applications"
}
