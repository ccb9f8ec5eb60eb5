// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/service"
)

// AccountUsecase defines the interface for account-related use cases.
type AccountUsecase interface {
	// GetUser retrieves the account behind an authenticated session.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// SyncIdentity merges the claims delivered by the identity provider into
	// the local user record, creating it on first sight.
	SyncIdentity(ctx context.Context, claims *service.IdentityClaims) (*entity.User, error)
}
