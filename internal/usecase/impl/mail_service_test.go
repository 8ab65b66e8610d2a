package impl

import (
	"context"
	"log/slog"
	"testing"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	mockRepo "romaneio/internal/mocks/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mailServiceFixtures struct {
	mailRepo *mockRepo.MockMailShipmentRepository
	service  usecase.MailUsecase
}

func createTestMailService(t *testing.T) mailServiceFixtures {
	t.Helper()

	mailRepo := mockRepo.NewMockMailShipmentRepository(t)

	return mailServiceFixtures{
		mailRepo: mailRepo,
		service:  NewMailService(mailRepo, slog.Default()),
	}
}

func TestMailService_CreateShipment_DisktenhaKeepsValue(t *testing.T) {
	fx := createTestMailService(t)
	ctx := context.Background()

	fx.mailRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MailShipment")).
		Run(func(_ context.Context, shipment *entity.MailShipment) {
			assert.Equal(t, entity.MailDisktenha, shipment.Service)
			assert.Equal(t, 42.50, shipment.Value)
		}).
		Return(nil)

	shipment, err := fx.service.CreateShipment(ctx, &usecase.MailShipmentInput{
		ClientName: "Dona Marta",
		Recipient:  "Marta Silva",
		Service:    "Disktenha",
		Value:      42.50,
	})

	require.NoError(t, err)
	assert.Equal(t, 42.50, shipment.Value)
}

func TestMailService_CreateShipment_SedexDropsValue(t *testing.T) {
	fx := createTestMailService(t)
	ctx := context.Background()

	fx.mailRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MailShipment")).
		Return(nil)

	shipment, err := fx.service.CreateShipment(ctx, &usecase.MailShipmentInput{
		ClientName: "Seu João",
		Recipient:  "João Pereira",
		Service:    "Sedex",
		Value:      99.90,
	})

	require.NoError(t, err)
	assert.Zero(t, shipment.Value)
}

func TestMailService_CreateShipment_UnknownServiceRejected(t *testing.T) {
	fx := createTestMailService(t)

	_, err := fx.service.CreateShipment(context.Background(), &usecase.MailShipmentInput{
		ClientName: "Dona Marta",
		Recipient:  "Marta Silva",
		Service:    "Pombo-correio",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMailService_ListShipments_ServiceFilterValidated(t *testing.T) {
	fx := createTestMailService(t)

	_, err := fx.service.ListShipments(context.Background(), &usecase.ListMailShipmentsInput{
		Service: "Transportadora",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMailService_GetShipment_NotFound(t *testing.T) {
	fx := createTestMailService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.mailRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrShipmentNotFound)

	_, err := fx.service.GetShipment(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)
}
