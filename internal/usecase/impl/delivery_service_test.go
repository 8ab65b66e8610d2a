package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	mockRepo "romaneio/internal/mocks/repository"
	mockSvc "romaneio/internal/mocks/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deliveryServiceFixtures holds all test dependencies for delivery service tests.
type deliveryServiceFixtures struct {
	service      usecase.DeliveryUsecase
	txManager    *mockRepo.MockTransactionManager
	deliveryRepo *mockRepo.MockDeliveryRepository
	clientRepo   *mockRepo.MockClientRepository
	addressRepo  *mockRepo.MockAddressRepository
	geocoder     *mockSvc.MockGeocodingService
	qrSvc        *mockSvc.MockQRCodeService
	storage      *mockSvc.MockAttachmentStorage
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	storage := mockSvc.NewMockAttachmentStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDeliveryService(txManager, deliveryRepo, clientRepo, addressRepo, geocoder, qrSvc, storage, logger)

	return deliveryServiceFixtures{
		service:      service,
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		clientRepo:   clientRepo,
		addressRepo:  addressRepo,
		geocoder:     geocoder,
		qrSvc:        qrSvc,
		storage:      storage,
	}
}

// expectTransaction makes the transaction manager run the callback against a
// factory backed by the same delivery repository mock.
func (fx deliveryServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeliveryRepo().Return(fx.deliveryRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func deliveryInPartition(day time.Time, period entity.Period, sortIndex int) *entity.Delivery {
	return &entity.Delivery{
		ID:            uuid.New(),
		ScheduledDate: day,
		Period:        period,
		Status:        entity.StatusAwaiting,
		SortIndex:     sortIndex,
	}
}

func TestDeliveryService_CreateDelivery_AppendedToEndOfPeriod(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	clientID := uuid.New()
	input := &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-1042",
		ClientID:          clientID,
		Destination:       "Rua das Flores, 123 - Centro",
		ScheduledDate:     day,
		Period:            "Manhã",
		PaymentMethod:     "Dinheiro",
		Value:             45.90,
	}

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(&entity.Client{ID: clientID, Name: "Maria Silva"}, nil)

	fx.expectTransaction(t, ctx)

	existing := []*entity.Delivery{
		deliveryInPartition(day, entity.PeriodMorning, 1),
		deliveryInPartition(day, entity.PeriodMorning, 2),
	}
	fx.deliveryRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.DeliveryFilter) bool {
			return filter.Date != nil && filter.Date.Equal(day) &&
				filter.Period != nil && *filter.Period == entity.PeriodMorning
		})).
		Return(existing, nil)

	fx.deliveryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(nil)

	delivery, err := fx.service.CreateDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 3, delivery.SortIndex)
	assert.Equal(t, entity.StatusAwaiting, delivery.Status)
	assert.False(t, delivery.PaymentReceived)
}

func TestDeliveryService_CreateDelivery_PaidMethodStartsReceived(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	clientID := uuid.New()
	input := &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-1043",
		ClientID:          clientID,
		Destination:       "Av. Brasil, 90",
		ScheduledDate:     time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		PaymentMethod:     "Págo no Pix",
	}

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(&entity.Client{ID: clientID}, nil)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return(nil, nil)

	fx.deliveryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(nil)

	delivery, err := fx.service.CreateDelivery(ctx, input)
	require.NoError(t, err)
	assert.True(t, delivery.PaymentReceived)
	assert.Equal(t, 1, delivery.SortIndex)
}

func TestDeliveryService_CreateDelivery_UnknownPeriodRejected(t *testing.T) {
	fx := createTestDeliveryService(t)

	_, err := fx.service.CreateDelivery(context.Background(), &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-1",
		ClientID:          uuid.New(),
		Period:            "Madrugada",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPeriod))
}

func TestDeliveryService_CreateDelivery_UnknownClientRejected(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	_, err := fx.service.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-2",
		ClientID:          clientID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}

func TestDeliveryService_CreateDelivery_SnapshotsStoredAddress(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	clientID := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{
		ID:           addressID,
		ClientID:     clientID,
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		City:         "Campinas",
		Region:       "Centro",
	}

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(&entity.Client{ID: clientID}, nil)

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(address, nil)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return(nil, nil)

	fx.deliveryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Delivery")).
		Return(nil)

	delivery, err := fx.service.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-3",
		ClientID:          clientID,
		AddressID:         &addressID,
		ScheduledDate:     time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(delivery.Destination, "Rua das Flores"))
	assert.Equal(t, "Centro", delivery.Region)
}

func TestDeliveryService_ChangeStatus_LegacyLabelNormalized(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.deliveryRepo.EXPECT().
		UpdateStatus(ctx, id, entity.StatusEnRoute).
		Return(nil)

	status, err := fx.service.ChangeStatus(ctx, id, "A Caminho")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnRoute, status)
}

func TestDeliveryService_ChangeStatus_UnknownLabelRejected(t *testing.T) {
	fx := createTestDeliveryService(t)

	_, err := fx.service.ChangeStatus(context.Background(), uuid.New(), "Perdida")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestDeliveryService_MoveDelivery_UpSwapsWithPrevious(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	first := deliveryInPartition(day, entity.PeriodMorning, 1)
	second := deliveryInPartition(day, entity.PeriodMorning, 2)
	third := deliveryInPartition(day, entity.PeriodMorning, 3)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, second.ID).
		Return(second, nil)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.DeliveryFilter) bool {
			return filter.Date != nil && filter.Date.Equal(day) &&
				filter.Period != nil && *filter.Period == entity.PeriodMorning
		})).
		Return([]*entity.Delivery{first, second, third}, nil)

	fx.deliveryRepo.EXPECT().
		UpdateSortIndexes(ctx, []repository.SortIndexUpdate{
			{DeliveryID: second.ID, SortIndex: 1},
			{DeliveryID: first.ID, SortIndex: 2},
			{DeliveryID: third.ID, SortIndex: 3},
		}).
		Return(nil)

	require.NoError(t, fx.service.MoveDelivery(ctx, second.ID, usecase.MoveUp))
}

func TestDeliveryService_MoveDelivery_FirstUpIsNoOp(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	first := deliveryInPartition(day, entity.PeriodAfternoon, 1)
	second := deliveryInPartition(day, entity.PeriodAfternoon, 2)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, first.ID).
		Return(first, nil)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{first, second}, nil)

	// No UpdateSortIndexes expectation: writing anything would fail the mock.
	require.NoError(t, fx.service.MoveDelivery(ctx, first.ID, usecase.MoveUp))
}

func TestDeliveryService_MoveDelivery_LastDownIsNoOp(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	first := deliveryInPartition(day, entity.PeriodUnset, 1)
	last := deliveryInPartition(day, entity.PeriodUnset, 2)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, last.ID).
		Return(last, nil)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{first, last}, nil)

	require.NoError(t, fx.service.MoveDelivery(ctx, last.ID, usecase.MoveDown))
}

func TestDeliveryService_MoveDelivery_HealsSparseIndices(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	// Legacy rows with zero and duplicate indices.
	first := deliveryInPartition(day, entity.PeriodMorning, 0)
	second := deliveryInPartition(day, entity.PeriodMorning, 0)
	third := deliveryInPartition(day, entity.PeriodMorning, 7)

	fx.expectTransaction(t, ctx)

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, third.ID).
		Return(third, nil)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{first, second, third}, nil)

	fx.deliveryRepo.EXPECT().
		UpdateSortIndexes(ctx, []repository.SortIndexUpdate{
			{DeliveryID: first.ID, SortIndex: 1},
			{DeliveryID: third.ID, SortIndex: 2},
			{DeliveryID: second.ID, SortIndex: 3},
		}).
		Return(nil)

	require.NoError(t, fx.service.MoveDelivery(ctx, third.ID, usecase.MoveUp))
}

func TestDeliveryService_MoveDelivery_UnknownDirectionRejected(t *testing.T) {
	fx := createTestDeliveryService(t)

	err := fx.service.MoveDelivery(context.Background(), uuid.New(), usecase.MoveDirection("sideways"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeliveryService_ReconcilePayments_FlipsOnlyPaidMethods(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	paid := &entity.Delivery{ID: uuid.New(), PaymentMethod: "Pago no Pix"}
	cash := &entity.Delivery{ID: uuid.New(), PaymentMethod: "Dinheiro"}
	accented := &entity.Delivery{ID: uuid.New(), PaymentMethod: "Págo Cartão"}

	fx.deliveryRepo.EXPECT().
		FindUnreceived(ctx).
		Return([]*entity.Delivery{paid, cash, accented}, nil)

	fx.deliveryRepo.EXPECT().
		MarkPaymentReceived(ctx, paid.ID).
		Return(nil)

	fx.deliveryRepo.EXPECT().
		MarkPaymentReceived(ctx, accented.ID).
		Return(nil)

	result, err := fx.service.ReconcilePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Corrected)
	assert.Equal(t, 0, result.Failures)
}

func TestDeliveryService_ReconcilePayments_FailureDoesNotStopPass(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	broken := &entity.Delivery{ID: uuid.New(), PaymentMethod: "Pago Dinheiro"}
	fine := &entity.Delivery{ID: uuid.New(), PaymentMethod: "Pago Pix"}

	fx.deliveryRepo.EXPECT().
		FindUnreceived(ctx).
		Return([]*entity.Delivery{broken, fine}, nil)

	fx.deliveryRepo.EXPECT().
		MarkPaymentReceived(ctx, broken.ID).
		Return(errors.New("deadlock detected"))

	fx.deliveryRepo.EXPECT().
		MarkPaymentReceived(ctx, fine.ID).
		Return(nil)

	result, err := fx.service.ReconcilePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Corrected)
	assert.Equal(t, 1, result.Failures)
}

func TestDeliveryService_MapView_SkipsUnresolvedAddresses(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	resolved := &entity.Delivery{ID: uuid.New(), Destination: "Rua A, 1"}
	unresolved := &entity.Delivery{ID: uuid.New(), Destination: "Rua B, 2"}
	failing := &entity.Delivery{ID: uuid.New(), Destination: "Rua C, 3"}
	blank := &entity.Delivery{ID: uuid.New()}

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{resolved, unresolved, failing, blank}, nil)

	fx.geocoder.EXPECT().
		Geocode(ctx, "Rua A, 1").
		Return(orb.Point{-47.06, -22.90}, true, nil)

	fx.geocoder.EXPECT().
		Geocode(ctx, "Rua B, 2").
		Return(orb.Point{}, false, nil)

	fx.geocoder.EXPECT().
		Geocode(ctx, "Rua C, 3").
		Return(orb.Point{}, false, errors.New("upstream timeout"))

	points, err := fx.service.MapView(ctx, day)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, resolved.ID, points[0].Delivery.ID)
	assert.Equal(t, orb.Point{-47.06, -22.90}, points[0].Point)
}

func TestDeliveryService_RequisitionQR(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	delivery := &entity.Delivery{ID: uuid.New(), RequisitionNumber: "REQ-1042"}

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, delivery.ID).
		Return(delivery, nil)

	fx.qrSvc.EXPECT().
		GenerateRequisitionQR("REQ-1042").
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.RequisitionQR(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestDeliveryService_AttachFile_StoresPrescriptionURL(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	delivery := &entity.Delivery{ID: uuid.New(), RequisitionNumber: "REQ-9"}

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, delivery.ID).
		Return(delivery, nil)

	fx.storage.EXPECT().
		Upload(ctx, delivery.ID.String()+"/receita.jpg", "image/jpeg", mock.Anything).
		Return("https://files.example.com/receita.jpg", nil)

	fx.deliveryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(updated *entity.Delivery) bool {
			return updated.PrescriptionURL == "https://files.example.com/receita.jpg"
		})).
		Return(nil)

	url, err := fx.service.AttachFile(ctx, delivery.ID, &usecase.AttachmentInput{
		Kind:        "receita",
		Filename:    "foto.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/receita.jpg", url)
}

func TestDeliveryService_AttachFile_UnknownKindRejected(t *testing.T) {
	fx := createTestDeliveryService(t)

	_, err := fx.service.AttachFile(context.Background(), uuid.New(), &usecase.AttachmentInput{Kind: "selfie"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
