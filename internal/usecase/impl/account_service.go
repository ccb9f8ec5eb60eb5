// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/domain/service"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves the account behind an authenticated session.
func (srv *accountService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	srv.logger.Debug("Getting user", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// SyncIdentity merges identity-provider claims into the local user record.
func (srv *accountService) SyncIdentity(ctx context.Context, claims *service.IdentityClaims) (*entity.User, error) {
	if claims == nil || claims.UserID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	srv.logger.Info("Syncing identity claims", "userID", claims.UserID)

	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		ID:              claims.UserID,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user from identity claims")
	}

	return user, nil
}
