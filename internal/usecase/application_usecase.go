package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
)

// ApplicationInput is the policy application form payload. Exactly one of
// the property/crop detail groups is expected by convention, though not
// enforced.
type ApplicationInput struct {
	PolicyID       string  `json:"policyId" validate:"required,min=1"`
	ApplicantName  string  `json:"applicantName" validate:"required,min=2"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    string  `json:"phoneNumber" validate:"required,min=10"`
	Address        string  `json:"address" validate:"required,min=5"`
	City           string  `json:"city" validate:"required,min=2"`
	State          string  `json:"state" validate:"required,min=2"`
	Pincode        string  `json:"pincode" validate:"required,min=6"`
	CoverageAmount float64 `json:"coverageAmount" validate:"required,min=1000"`
	PropertyType   string  `json:"propertyType,omitempty" validate:"omitempty"`
	PropertyValue  float64 `json:"propertyValue,omitempty" validate:"omitempty,min=1000"`
	CropType       string  `json:"cropType,omitempty" validate:"omitempty"`
	FarmSize       float64 `json:"farmSize,omitempty" validate:"omitempty,min=0.1"`
}

// ApplicationUsecase defines the interface for policy application use cases.
type ApplicationUsecase interface {
	// SubmitApplication persists a new pending application for the
	// authenticated user. The stored premium is a flat 5% of the requested
	// coverage amount.
	SubmitApplication(ctx context.Context, userID string, input *ApplicationInput) (*entity.PolicyApplication, error)

	// GetUserApplications retrieves the caller's applications, most recent
	// first.
	GetUserApplications(ctx context.Context, userID string) ([]*entity.PolicyApplication, error)
}
