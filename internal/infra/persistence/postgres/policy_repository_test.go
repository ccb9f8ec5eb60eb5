package postgres

import (
	"testing"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(id string, active bool) *entity.Policy {
	return &entity.Policy{
		ID:                  id,
		Name:                "Parametric Monsoon Protection Plus",
		Description:         "Covers crop losses from deficient rainfall.",
		CoverageAmount:      decimal.NewFromInt(500000),
		BasePremium:         decimal.NewFromInt(15000),
		CoverageType:        entity.CoverageTypeCrop,
		Features:            []string{"Automatic payout triggers", "No claim surveyor visits"},
		EligibilityCriteria: []string{"Registered farmer"},
		Exclusions:          []string{"Pre-existing crop disease"},
		ClaimProcess:        "Payouts trigger automatically from rainfall data.",
		IsActive:            active,
	}
}

func TestPolicyRepository_FindAllActive_FiltersInactive(t *testing.T) {
	repo := NewPolicyRepository(openTestDB(t))

	require.NoError(t, repo.Create(t.Context(), testPolicy("policy-1", true)))
	require.NoError(t, repo.Create(t.Context(), testPolicy("policy-2", false)))
	require.NoError(t, repo.Create(t.Context(), testPolicy("policy-3", true)))

	policies, err := repo.FindAllActive(t.Context())

	require.NoError(t, err)
	require.Len(t, policies, 2)
	for _, policy := range policies {
		assert.True(t, policy.IsActive)
		assert.NotEqual(t, "policy-2", policy.ID)
	}
}

func TestPolicyRepository_FindByID_RoundTripsListColumns(t *testing.T) {
	repo := NewPolicyRepository(openTestDB(t))

	require.NoError(t, repo.Create(t.Context(), testPolicy("policy-1", true)))

	policy, err := repo.FindByID(t.Context(), "policy-1")

	require.NoError(t, err)
	assert.Equal(t, "Parametric Monsoon Protection Plus", policy.Name)
	assert.Equal(t, entity.CoverageTypeCrop, policy.CoverageType)
	assert.Equal(t, []string{"Automatic payout triggers", "No claim surveyor visits"}, policy.Features)
	assert.True(t, policy.CoverageAmount.Equal(decimal.NewFromInt(500000)))
	assert.True(t, policy.BasePremium.Equal(decimal.NewFromInt(15000)))
	assert.False(t, policy.CreatedAt.IsZero())
}

func TestPolicyRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPolicyRepository(openTestDB(t))

	policy, err := repo.FindByID(t.Context(), "missing-policy")

	require.ErrorIs(t, err, repository.ErrPolicyNotFound)
	assert.Nil(t, policy)
}
