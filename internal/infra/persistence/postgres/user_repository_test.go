package postgres

import (
	"testing"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"
	"monsoon/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user, err := repo.FindByID(t.Context(), "missing-user")

	require.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_Upsert_InsertsNewUser(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	stored, err := repo.Upsert(t.Context(), &entity.User{
		ID:        "user-1",
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Nair",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.ID)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.Equal(t, "Asha", stored.FirstName)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestUserRepository_Upsert_MergesClaimsAndKeepsProfile(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Upsert(t.Context(), &entity.User{
		ID:        "user-1",
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Nair",
	})
	require.NoError(t, err)

	// The user later completes their profile through the application form.
	require.NoError(t, db.Model(&model.UserModel{}).
		Where("id = ?", "user-1").
		Updates(map[string]any{
			"phone_number": "9876543210",
			"address":      "12 Marine Drive",
			"city":         "Kochi",
		}).Error)

	// A re-login only refreshes the identity-provider claims.
	stored, err := repo.Upsert(t.Context(), &entity.User{
		ID:        "user-1",
		Email:     "asha.nair@example.com",
		FirstName: "Asha",
		LastName:  "Nair",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha.nair@example.com", stored.Email)
	assert.Equal(t, "9876543210", stored.PhoneNumber)
	assert.Equal(t, "12 Marine Drive", stored.Address)
	assert.Equal(t, "Kochi", stored.City)
}

func TestUserRepository_FindByID_ReturnsStoredUser(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.Upsert(t.Context(), &entity.User{
		ID:    "user-1",
		Email: "asha@example.com",
	})
	require.NoError(t, err)

	user, err := repo.FindByID(t.Context(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}
