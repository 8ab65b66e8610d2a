package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	mockRepo "romaneio/internal/mocks/repository"
	mockSvc "romaneio/internal/mocks/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(userRepo, hasher, logger)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_PasswordStoredHashed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("senha123").
		Return("$2a$10$hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Login == "balcao" &&
				user.PasswordHash == "$2a$10$hashed" &&
				user.Role == entity.RoleAttendant &&
				user.IsActive
		})).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Login:    "balcao",
		Password: "senha123",
		Role:     entity.RoleAttendant,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", user.PasswordHash)
}

func TestUserService_CreateUser_UnknownRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Login:    "x",
		Password: "y",
		Role:     entity.Role("gerente"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser_DuplicateLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("senha123").
		Return("$2a$10$hashed", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Login:    "balcao",
		Password: "senha123",
		Role:     entity.RoleAttendant,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_SetActive_Deactivates(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Login: "balcao", IsActive: true}

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(updated *entity.User) bool {
			return updated.ID == user.ID && !updated.IsActive
		})).
		Return(nil)

	require.NoError(t, fx.service.SetActive(ctx, user.ID, false))
}
