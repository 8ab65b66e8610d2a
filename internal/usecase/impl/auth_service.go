package impl

import (
	"context"
	"log/slog"

	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/domain/service"
	"romaneio/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login verifies credentials and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password; do not leak which part failed.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown login")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "user deactivated")
	}

	access, refresh, err := srv.tokenSvc.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("User logged in", "userID", user.ID, "role", user.Role.String())

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenSvc.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "user deactivated")
	}

	access, refresh, err := srv.tokenSvc.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
