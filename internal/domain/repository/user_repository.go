// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a login is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a user by its login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindAll retrieves all users ordered by login.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error
}
