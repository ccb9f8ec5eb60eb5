package repository

import (
	"context"
	"errors"

	"monsoon/internal/domain/entity"
)

// ErrApplicationNotFound is a domain-specific error returned when a policy application is not found.
var ErrApplicationNotFound = errors.New("policy application not found")

// PolicyApplicationRepository defines write and read access to submitted
// policy applications.
type PolicyApplicationRepository interface {
	// Create persists a new application row.
	Create(ctx context.Context, application *entity.PolicyApplication) error

	// FindByUser retrieves the applications owned by one user, ordered by
	// application date descending (most recent first).
	FindByUser(ctx context.Context, userID string) ([]*entity.PolicyApplication, error)

	// FindByID retrieves a single application by its identifier.
	FindByID(ctx context.Context, id string) (*entity.PolicyApplication, error)
}
