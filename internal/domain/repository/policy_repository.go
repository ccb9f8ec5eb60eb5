package repository

import (
	"context"
	"errors"

	"monsoon/internal/domain/entity"
)

// ErrPolicyNotFound is a domain-specific error returned when a policy is not found.
var ErrPolicyNotFound = errors.New("policy not found")

// PolicyRepository defines read access to the policy catalog. Catalog rows
// are written only by the seeding bootstrap.
type PolicyRepository interface {
	// FindAllActive retrieves every policy with IsActive set.
	FindAllActive(ctx context.Context) ([]*entity.Policy, error)

	// FindByID retrieves a single policy regardless of active flag.
	FindByID(ctx context.Context, id string) (*entity.Policy, error)

	// Create persists a new catalog entry. Used by the bootstrap step, not
	// exposed through the API.
	Create(ctx context.Context, policy *entity.Policy) error
}
