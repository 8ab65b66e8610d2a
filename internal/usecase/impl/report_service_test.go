package impl

import (
	"context"
	"testing"
	"time"

	"romaneio/internal/domain/entity"
	mockRepo "romaneio/internal/mocks/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service      usecase.ReportUsecase
	deliveryRepo *mockRepo.MockDeliveryRepository
	courierRepo  *mockRepo.MockCourierRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	courierRepo := mockRepo.NewMockCourierRepository(t)

	service := NewReportService(deliveryRepo, courierRepo)

	return reportServiceFixtures{
		service:      service,
		deliveryRepo: deliveryRepo,
		courierRepo:  courierRepo,
	}
}

func TestReportService_DailyTotals_GroupedByCourier(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	carlos := &entity.Courier{ID: uuid.New(), Name: "Carlos"}
	pedro := &entity.Courier{ID: uuid.New(), Name: "Pedro"}

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{
			{ID: uuid.New(), CourierID: &carlos.ID, Status: entity.StatusDelivered, Value: 30},
			{ID: uuid.New(), CourierID: &carlos.ID, Status: entity.StatusReturned, Value: 20},
			{ID: uuid.New(), CourierID: &pedro.ID, Status: entity.StatusEnRoute, Value: 15},
			{ID: uuid.New(), Status: entity.StatusAwaiting, Value: 99}, // unassigned
		}, nil)

	fx.courierRepo.EXPECT().
		FindAll(ctx, false).
		Return([]*entity.Courier{carlos, pedro}, nil)

	totals, err := fx.service.DailyTotals(ctx, day)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Carlos", totals[0].CourierName)
	assert.Equal(t, 2, totals[0].Deliveries)
	assert.Equal(t, 1, totals[0].Delivered)
	assert.Equal(t, 1, totals[0].Returned)
	assert.InDelta(t, 50.0, totals[0].TotalValue, 0.001)

	assert.Equal(t, "Pedro", totals[1].CourierName)
	assert.Equal(t, 1, totals[1].Deliveries)
}

func TestReportService_PaymentSummary_CountsReceivedAndOutstanding(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{
			{ID: uuid.New(), PaymentMethod: "Dinheiro", Value: 10},
			{ID: uuid.New(), PaymentMethod: "Dinheiro", Value: 25, PaymentReceived: true},
			{ID: uuid.New(), PaymentMethod: "Pago Pix", Value: 40, PaymentReceived: true},
			{ID: uuid.New(), Value: 5},
		}, nil)

	lines, err := fx.service.PaymentSummary(ctx, day, day)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "Dinheiro", lines[0].PaymentMethod)
	assert.Equal(t, 2, lines[0].Count)
	assert.Equal(t, 1, lines[0].Received)
	assert.Equal(t, 1, lines[0].Outstanding)
	assert.InDelta(t, 35.0, lines[0].TotalValue, 0.001)

	assert.Equal(t, "Não informado", lines[1].PaymentMethod)
	assert.Equal(t, "Pago Pix", lines[2].PaymentMethod)
}

func TestReportService_RegionBreakdown(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	fx.deliveryRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.DeliveryFilter")).
		Return([]*entity.Delivery{
			{ID: uuid.New(), Region: "Centro"},
			{ID: uuid.New(), Region: "Centro"},
			{ID: uuid.New(), Region: "Barão Geraldo"},
			{ID: uuid.New()},
		}, nil)

	totals, err := fx.service.RegionBreakdown(ctx, day)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, "Barão Geraldo", totals[0].Region)
	assert.Equal(t, "Centro", totals[1].Region)
	assert.Equal(t, 2, totals[1].Deliveries)
	assert.Equal(t, "Sem região", totals[2].Region)
}
