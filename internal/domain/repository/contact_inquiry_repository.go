package repository

import (
	"context"

	"monsoon/internal/domain/entity"
)

// ContactInquiryRepository defines write access for contact inquiries.
// Inquiries are append-only from the API's perspective.
type ContactInquiryRepository interface {
	// Create persists a new inquiry row.
	Create(ctx context.Context, inquiry *entity.ContactInquiry) error
}
