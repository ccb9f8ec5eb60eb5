package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
)

// PolicyUsecase defines the interface for policy catalog use cases.
type PolicyUsecase interface {
	// ListActivePolicies retrieves the catalog entries shown to customers.
	ListActivePolicies(ctx context.Context) ([]*entity.Policy, error)

	// GetPolicy retrieves one catalog entry by its identifier.
	GetPolicy(ctx context.Context, id string) (*entity.Policy, error)
}
