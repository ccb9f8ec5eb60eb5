package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty"`
	Subject     string `json:"subject" validate:"required,min=5"`
	Message     string `json:"message" validate:"required,min=10"`
}

// ContactUsecase defines the interface for contact inquiry use cases.
type ContactUsecase interface {
	// SubmitInquiry persists a new inquiry with the "new" triage status.
	SubmitInquiry(ctx context.Context, input *ContactInput) (*entity.ContactInquiry, error)
}
