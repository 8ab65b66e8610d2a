package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// courierServiceFixtures holds all test dependencies for courier service tests.
type courierServiceFixtures struct {
	service     usecase.CourierUsecase
	courierRepo *mockRepo.MockCourierRepository
	paymentRepo *mockRepo.MockCourierPaymentRepository
}

func createTestCourierService(t *testing.T) courierServiceFixtures {
	courierRepo := mockRepo.NewMockCourierRepository(t)
	paymentRepo := mockRepo.NewMockCourierPaymentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCourierService(courierRepo, paymentRepo, logger)

	return courierServiceFixtures{
		service:     service,
		courierRepo: courierRepo,
		paymentRepo: paymentRepo,
	}
}

func TestCourierService_CreateCourier_ActiveByDefault(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()

	fx.courierRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Courier")).
		Return(nil)

	courier, err := fx.service.CreateCourier(ctx, &usecase.CourierInput{Name: "Carlos"})
	require.NoError(t, err)
	assert.True(t, courier.IsActive)
	assert.Equal(t, "Carlos", courier.Name)
}

func TestCourierService_WeeklyPayments_KeyedByWeekStart(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	courierID := uuid.New()
	weekOne := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	weekTwo := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	fx.courierRepo.EXPECT().
		FindByID(ctx, courierID).
		Return(&entity.Courier{ID: courierID}, nil)

	fx.paymentRepo.EXPECT().
		FindByCourier(ctx, courierID).
		Return([]*entity.CourierPayment{
			{CourierID: courierID, WeekStart: weekOne, Status: entity.CourierPaymentPaid},
			{CourierID: courierID, WeekStart: weekTwo, Status: entity.CourierPaymentPending},
		}, nil)

	ledger, err := fx.service.WeeklyPayments(ctx, courierID)
	require.NoError(t, err)
	assert.Equal(t, map[string]entity.CourierPaymentStatus{
		"2026-08-18": entity.CourierPaymentPaid,
		"2026-08-25": entity.CourierPaymentPending,
	}, ledger)
}

func TestCourierService_SetWeeklyPayment_CreatesMissingWeek(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	courierID := uuid.New()
	// A Friday; the row must be stored under its Tuesday.
	friday := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	fx.courierRepo.EXPECT().
		FindByID(ctx, courierID).
		Return(&entity.Courier{ID: courierID}, nil)

	fx.paymentRepo.EXPECT().
		FindByCourierAndWeek(ctx, courierID, tuesday).
		Return(nil, repository.ErrPaymentNotFound)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(payment *entity.CourierPayment) bool {
			return payment.CourierID == courierID &&
				payment.WeekStart.Equal(tuesday) &&
				payment.Status == entity.CourierPaymentPaid &&
				payment.Version == 1
		})).
		Return(nil)

	err := fx.service.SetWeeklyPayment(ctx, courierID, &usecase.SetWeeklyPaymentInput{
		WeekStart: friday,
		Status:    "Pago",
	})
	require.NoError(t, err)
}

func TestCourierService_SetWeeklyPayment_UpdatesExistingWeek(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	courierID := uuid.New()
	tuesday := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	existing := &entity.CourierPayment{
		ID:        uuid.New(),
		CourierID: courierID,
		WeekStart: tuesday,
		Status:    entity.CourierPaymentPending,
		Version:   3,
	}

	fx.courierRepo.EXPECT().
		FindByID(ctx, courierID).
		Return(&entity.Courier{ID: courierID}, nil)

	fx.paymentRepo.EXPECT().
		FindByCourierAndWeek(ctx, courierID, tuesday).
		Return(existing, nil)

	fx.paymentRepo.EXPECT().
		UpdateStatus(ctx, existing.ID, entity.CourierPaymentPaid, 3).
		Return(nil)

	err := fx.service.SetWeeklyPayment(ctx, courierID, &usecase.SetWeeklyPaymentInput{
		WeekStart: tuesday,
		Status:    "Pago",
	})
	require.NoError(t, err)
}

func TestCourierService_SetWeeklyPayment_ConcurrentUpdateConflicts(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	courierID := uuid.New()
	tuesday := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	existing := &entity.CourierPayment{
		ID:        uuid.New(),
		CourierID: courierID,
		WeekStart: tuesday,
		Status:    entity.CourierPaymentPending,
		Version:   1,
	}

	fx.courierRepo.EXPECT().
		FindByID(ctx, courierID).
		Return(&entity.Courier{ID: courierID}, nil)

	fx.paymentRepo.EXPECT().
		FindByCourierAndWeek(ctx, courierID, tuesday).
		Return(existing, nil)

	fx.paymentRepo.EXPECT().
		UpdateStatus(ctx, existing.ID, entity.CourierPaymentPaid, 1).
		Return(repository.ErrPaymentVersionConflict)

	err := fx.service.SetWeeklyPayment(ctx, courierID, &usecase.SetWeeklyPaymentInput{
		WeekStart: tuesday,
		Status:    "Pago",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentVersionConflict))
}

func TestCourierService_SetWeeklyPayment_UnknownStatusRejected(t *testing.T) {
	fx := createTestCourierService(t)

	err := fx.service.SetWeeklyPayment(context.Background(), uuid.New(), &usecase.SetWeeklyPaymentInput{
		WeekStart: time.Now(),
		Status:    "Parcelado",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCourierService_GetCourier_NotFound(t *testing.T) {
	fx := createTestCourierService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.courierRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrCourierNotFound)

	_, err := fx.service.GetCourier(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourierNotFound))
}
