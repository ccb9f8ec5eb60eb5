package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	mockRepo "monsoon/internal/mocks/repository"
	"monsoon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPolicyService(t *testing.T) (usecase.PolicyUsecase, *mockRepo.MockPolicyRepository) {
	policyRepo := mockRepo.NewMockPolicyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewPolicyService(policyRepo, logger), policyRepo
}

func TestPolicyService_ListActivePolicies_Success(t *testing.T) {
	svc, policyRepo := createTestPolicyService(t)
	ctx := context.Background()

	expected := []*entity.Policy{
		{ID: "policy-1", Name: "Parametric Monsoon Protection Plus", IsActive: true},
		{ID: "policy-2", Name: "Property Flood Shield", IsActive: true},
	}
	policyRepo.EXPECT().FindAllActive(ctx).Return(expected, nil)

	policies, err := svc.ListActivePolicies(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, policies)
}

func TestPolicyService_ListActivePolicies_RepositoryFailure(t *testing.T) {
	svc, policyRepo := createTestPolicyService(t)
	ctx := context.Background()

	policyRepo.EXPECT().FindAllActive(ctx).Return(nil, errors.New("connection refused"))

	policies, err := svc.ListActivePolicies(ctx)

	require.Error(t, err)
	assert.Nil(t, policies)
}

func TestPolicyService_GetPolicy_Success(t *testing.T) {
	svc, policyRepo := createTestPolicyService(t)
	ctx := context.Background()

	expected := &entity.Policy{ID: "policy-1", Name: "Micro Monsoon Shield"}
	policyRepo.EXPECT().FindByID(ctx, "policy-1").Return(expected, nil)

	policy, err := svc.GetPolicy(ctx, "policy-1")

	require.NoError(t, err)
	assert.Equal(t, expected, policy)
}

func TestPolicyService_GetPolicy_NotFound(t *testing.T) {
	svc, policyRepo := createTestPolicyService(t)
	ctx := context.Background()

	policyRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrPolicyNotFound)

	policy, err := svc.GetPolicy(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPolicyNotFound)
	assert.Nil(t, policy)
}
