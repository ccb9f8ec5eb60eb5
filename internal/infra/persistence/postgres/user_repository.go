package postgres

import (
	"context"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their opaque identifier.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Upsert merges the supplied fields into an existing row by primary key, or
// inserts a new row if absent. UpdatedAt is stamped on both paths.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			// Only the identity-provider claim columns are merged; profile
			// fields filled in later (phone, address) survive re-login.
			DoUpdates: clause.AssignmentColumns([]string{
				"email",
				"first_name",
				"last_name",
				"profile_image_url",
				"updated_at",
			}),
		}).
		Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// Read the merged row back so callers observe the stored state, not the
	// partial input.
	var stored model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", user.ID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload upserted user")
	}

	return toUserDomain(&stored), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		PhoneNumber:     data.PhoneNumber,
		Address:         data.Address,
		City:            data.City,
		State:           data.State,
		Pincode:         data.Pincode,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		PhoneNumber:     data.PhoneNumber,
		Address:         data.Address,
		City:            data.City,
		State:           data.State,
		Pincode:         data.Pincode,
	}
}
