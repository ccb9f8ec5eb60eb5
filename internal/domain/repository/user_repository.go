// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"monsoon/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Users are provisioned by the external authentication collaborator; this
// core only reads them and merges claim updates by primary key.
type UserRepository interface {
	// FindByID retrieves a single user by their opaque identifier.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert merges the supplied fields into an existing record by primary
	// key, or creates one if absent, stamping UpdatedAt either way.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
}
