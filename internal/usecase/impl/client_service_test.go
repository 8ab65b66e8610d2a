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
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clientServiceFixtures holds all test dependencies for client service tests.
type clientServiceFixtures struct {
	service     usecase.ClientUsecase
	txManager   *mockRepo.MockTransactionManager
	clientRepo  *mockRepo.MockClientRepository
	addressRepo *mockRepo.MockAddressRepository
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewClientService(txManager, clientRepo, logger)

	return clientServiceFixtures{
		service:     service,
		txManager:   txManager,
		clientRepo:  clientRepo,
		addressRepo: addressRepo,
	}
}

// expectTransaction makes the transaction manager run the callback against a
// factory backed by the same repository mocks.
func (fx clientServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ClientRepo().Return(fx.clientRepo).Maybe()
	factory.EXPECT().AddressRepo().Return(fx.addressRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestClientService_RegisterClient_WithFirstAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := &usecase.RegisterClientInput{
		Name:  "Maria Silva",
		Phone: "(19) 99876-5432",
		Address: &usecase.AddressInput{
			Street:       "Rua das Flores",
			Number:       "123",
			Neighborhood: "Centro",
			City:         "Campinas",
		},
	}

	fx.expectTransaction(t, ctx)

	fx.clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	fx.addressRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(address *entity.Address) bool {
			return address.IsPrimary && address.Street == "Rua das Flores"
		})).
		Return(nil)

	client, err := fx.service.RegisterClient(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", client.Name)
	require.Len(t, client.Addresses, 1)
	assert.True(t, client.Addresses[0].IsPrimary)
	assert.Equal(t, client.ID, client.Addresses[0].ClientID)
}

func TestClientService_RegisterClient_WithoutAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()

	fx.expectTransaction(t, ctx)

	fx.clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	client, err := fx.service.RegisterClient(ctx, &usecase.RegisterClientInput{Name: "João", Phone: "1234"})
	require.NoError(t, err)
	assert.Empty(t, client.Addresses)
}

func TestClientService_RegisterClient_AddressFailureRollsBack(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()

	fx.expectTransaction(t, ctx)

	fx.clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(errors.New("constraint violation"))

	_, err := fx.service.RegisterClient(ctx, &usecase.RegisterClientInput{
		Name:    "João",
		Phone:   "1234",
		Address: &usecase.AddressInput{Street: "Rua A"},
	})
	require.Error(t, err)
}

func TestClientService_RegisterClient_DuplicateCPF(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()

	fx.expectTransaction(t, ctx)

	fx.clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(repository.ErrDuplicateClient)

	_, err := fx.service.RegisterClient(ctx, &usecase.RegisterClientInput{Name: "João", Phone: "1234"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClientAlreadyExists))
}

func TestClientService_AddAddress_PrimaryClearsPreviousPrimary(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(&entity.Client{ID: clientID}, nil)

	fx.expectTransaction(t, ctx)

	fx.addressRepo.EXPECT().
		ClearPrimary(ctx, clientID).
		Return(nil)

	fx.addressRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(address *entity.Address) bool {
			return address.IsPrimary && address.ClientID == clientID
		})).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, clientID, &usecase.AddressInput{
		Street:    "Rua Nova",
		IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, address.IsPrimary)
}

func TestClientService_AddAddress_SecondaryKeepsCurrentPrimary(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(&entity.Client{ID: clientID}, nil)

	fx.expectTransaction(t, ctx)

	// No ClearPrimary expectation: clearing would fail the mock.
	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	_, err := fx.service.AddAddress(ctx, clientID, &usecase.AddressInput{Street: "Rua Nova"})
	require.NoError(t, err)
}

func TestClientService_SetPrimaryAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.New()
	address := &entity.Address{ID: uuid.New(), ClientID: clientID}

	fx.expectTransaction(t, ctx)

	fx.addressRepo.EXPECT().
		FindByID(ctx, address.ID).
		Return(address, nil)

	fx.addressRepo.EXPECT().
		ClearPrimary(ctx, clientID).
		Return(nil)

	fx.addressRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(updated *entity.Address) bool {
			return updated.ID == address.ID && updated.IsPrimary
		})).
		Return(nil)

	require.NoError(t, fx.service.SetPrimaryAddress(ctx, clientID, address.ID))
}

func TestClientService_SetPrimaryAddress_OtherClientsAddressRejected(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	address := &entity.Address{ID: uuid.New(), ClientID: uuid.New()}

	fx.expectTransaction(t, ctx)

	fx.addressRepo.EXPECT().
		FindByID(ctx, address.ID).
		Return(address, nil)

	err := fx.service.SetPrimaryAddress(ctx, uuid.New(), address.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.clientRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrClientNotFound)

	_, err := fx.service.GetClient(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}
