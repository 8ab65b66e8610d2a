package usecase

import (
	"context"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput carries the fields of a new dashboard account.
type CreateUserInput struct {
	Login    string      `json:"login" validate:"required,min=3"`
	Password string      `json:"senha" validate:"required,min=6"`
	Role     entity.Role `json:"perfil" validate:"required"`
}

// UserUsecase defines administrator-side account management.
type UserUsecase interface {
	// CreateUser registers a new account with a hashed password.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// ListUsers retrieves every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// SetActive activates or deactivates an account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
