package impl

import (
	"context"
	"log/slog"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/domain/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUser registers a new account with a hashed password.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Login:        input.Login,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "login taken")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created", "userID", user.ID, "role", user.Role.String())

	return user, nil
}

// ListUsers retrieves every account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetActive activates or deactivates an account.
func (srv *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.IsActive = active

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	return nil
}
