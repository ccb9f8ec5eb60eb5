package postgres

import (
	"testing"
	"time"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication(id, userID string, applicationDate time.Time) *entity.PolicyApplication {
	return &entity.PolicyApplication{
		ID:       id,
		UserID:   userID,
		PolicyID: "policy-1",
		ApplicationData: map[string]any{
			"applicantName": "Asha Nair",
			"email":         "asha@example.com",
		},
		CalculatedPremium: decimal.NewFromInt(2500),
		Status:            entity.ApplicationStatusPending,
		ApplicationDate:   applicationDate,
	}
}

func TestPolicyApplicationRepository_FindByUser_OrdersMostRecentFirst(t *testing.T) {
	repo := NewPolicyApplicationRepository(openTestDB(t))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(t.Context(), testApplication("app-old", "user-1", base)))
	require.NoError(t, repo.Create(t.Context(), testApplication("app-new", "user-1", base.Add(48*time.Hour))))
	require.NoError(t, repo.Create(t.Context(), testApplication("app-mid", "user-1", base.Add(24*time.Hour))))
	require.NoError(t, repo.Create(t.Context(), testApplication("app-other", "user-2", base.Add(72*time.Hour))))

	applications, err := repo.FindByUser(t.Context(), "user-1")

	require.NoError(t, err)
	require.Len(t, applications, 3)
	assert.Equal(t, "app-new", applications[0].ID)
	assert.Equal(t, "app-mid", applications[1].ID)
	assert.Equal(t, "app-old", applications[2].ID)
}

func TestPolicyApplicationRepository_FindByUser_NoRows(t *testing.T) {
	repo := NewPolicyApplicationRepository(openTestDB(t))

	applications, err := repo.FindByUser(t.Context(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestPolicyApplicationRepository_Create_RoundTripsFormData(t *testing.T) {
	repo := NewPolicyApplicationRepository(openTestDB(t))

	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(t.Context(), testApplication("app-1", "user-1", date)))

	application, err := repo.FindByID(t.Context(), "app-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", application.UserID)
	assert.Equal(t, "policy-1", application.PolicyID)
	assert.Equal(t, "Asha Nair", application.ApplicationData["applicantName"])
	assert.True(t, application.CalculatedPremium.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, entity.ApplicationStatusPending, application.Status)
	assert.Nil(t, application.ApprovalDate)
}

func TestPolicyApplicationRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPolicyApplicationRepository(openTestDB(t))

	application, err := repo.FindByID(t.Context(), "missing-application")

	require.ErrorIs(t, err, repository.ErrApplicationNotFound)
	assert.Nil(t, application)
}
