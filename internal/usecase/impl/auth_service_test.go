package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/domain/service"
	mockRepo "romaneio/internal/mocks/repository"
	mockSvc "romaneio/internal/mocks/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(userRepo, hasher, tokenSvc, logger)

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Login:        "admin",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByLogin(ctx, "admin").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("s3cret", user.PasswordHash).
		Return(true)

	fx.tokenSvc.EXPECT().
		GenerateTokens(user.ID, entity.RoleAdmin).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuthService_Login_UnknownLoginAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Login:        "admin",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByLogin(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "x"})
	require.Error(t, unknownErr)

	fx.userRepo.EXPECT().
		FindByLogin(ctx, "admin").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("wrong", user.PasswordHash).
		Return(false)

	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Login: "admin", Password: "wrong"})
	require.Error(t, wrongErr)

	// Both failures surface the same credential error.
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveUserRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Login:        "antigo",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleAttendant,
		IsActive:     false,
	}

	fx.userRepo.EXPECT().
		FindByLogin(ctx, "antigo").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("s3cret", user.PasswordHash).
		Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "antigo", Password: "s3cret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Login:    "admin",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.tokenSvc.EXPECT().
		GenerateTokens(user.ID, entity.RoleAdmin).
		Return("new-access", "new-refresh", nil)

	out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken_DeactivatedUserRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Login: "antigo", IsActive: false}

	fx.tokenSvc.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}
