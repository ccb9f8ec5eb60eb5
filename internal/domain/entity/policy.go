// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoverageType is the category of insured asset a policy protects.
type CoverageType string

const (
	CoverageTypeCrop      CoverageType = "crop"
	CoverageTypeProperty  CoverageType = "property"
	CoverageTypeLivestock CoverageType = "livestock"
)

// Policy is an immutable catalog entry for a parametric monsoon-insurance
// product. Entries are created by seeding and only read through the API.
type Policy struct {
	ID                  string          // Opaque identifier, generated by the creator.
	Name                string          // Marketing name of the product.
	Description         string          // Long-form description shown on the product page.
	CoverageAmount      decimal.Decimal // Maximum insured amount in rupees.
	BasePremium         decimal.Decimal // Reference annual premium in rupees.
	CoverageType        CoverageType    // crop, property, or livestock.
	Features            []string        // Ordered list of headline features.
	EligibilityCriteria []string        // Ordered list of eligibility requirements.
	Exclusions          []string        // Ordered list of exclusions.
	ClaimProcess        string          // Free-text description of the payout trigger and claim flow.
	IsActive            bool            // Inactive policies are hidden from the catalog listing.
	CreatedAt           time.Time
}
