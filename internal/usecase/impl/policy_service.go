package impl

import (
	"context"
	"log/slog"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
)

// policyService implements the PolicyUsecase interface.
type policyService struct {
	policyRepo repository.PolicyRepository
	logger     *slog.Logger
}

// NewPolicyService is the constructor for policyService.
func NewPolicyService(
	policyRepo repository.PolicyRepository,
	logger *slog.Logger,
) usecase.PolicyUsecase {
	return &policyService{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// ListActivePolicies retrieves the catalog entries shown to customers.
func (srv *policyService) ListActivePolicies(ctx context.Context) ([]*entity.Policy, error) {
	policies, err := srv.policyRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policies")
	}

	return policies, nil
}

// GetPolicy retrieves one catalog entry by its identifier.
func (srv *policyService) GetPolicy(ctx context.Context, id string) (*entity.Policy, error) {
	srv.logger.Debug("Getting policy", "policyID", id)

	policy, err := srv.policyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy")
	}

	return policy, nil
}
