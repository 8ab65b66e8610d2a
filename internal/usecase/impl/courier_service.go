package impl

import (
	"context"
	"log/slog"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// courierService implements the CourierUsecase interface.
type courierService struct {
	courierRepo repository.CourierRepository
	paymentRepo repository.CourierPaymentRepository
	logger      *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(
	courierRepo repository.CourierRepository,
	paymentRepo repository.CourierPaymentRepository,
	logger *slog.Logger,
) usecase.CourierUsecase {
	return &courierService{
		courierRepo: courierRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// CreateCourier registers a new courier.
func (srv *courierService) CreateCourier(ctx context.Context, input *usecase.CourierInput) (*entity.Courier, error) {
	courier := &entity.Courier{
		ID:       uuid.New(),
		Name:     input.Name,
		Phone:    input.Phone,
		IsActive: true,
	}
	if input.IsActive != nil {
		courier.IsActive = *input.IsActive
	}

	if err := srv.courierRepo.Create(ctx, courier); err != nil {
		return nil, errors.Wrap(err, "failed to create courier")
	}

	return courier, nil
}

// GetCourier retrieves one courier.
func (srv *courierService) GetCourier(ctx context.Context, id uuid.UUID) (*entity.Courier, error) {
	courier, err := srv.courierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourierNotFound, "courier not found")
		}

		return nil, errors.Wrap(err, "failed to find courier")
	}

	return courier, nil
}

// ListCouriers lists couriers.
func (srv *courierService) ListCouriers(ctx context.Context, activeOnly bool) ([]*entity.Courier, error) {
	couriers, err := srv.courierRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list couriers")
	}

	return couriers, nil
}

// UpdateCourier applies updates to a courier.
func (srv *courierService) UpdateCourier(ctx context.Context, id uuid.UUID, input *usecase.CourierInput) error {
	courier, err := srv.GetCourier(ctx, id)
	if err != nil {
		return err
	}

	courier.Name = input.Name
	courier.Phone = input.Phone
	if input.IsActive != nil {
		courier.IsActive = *input.IsActive
	}

	if err := srv.courierRepo.Update(ctx, courier); err != nil {
		return errors.Wrap(err, "failed to update courier")
	}

	return nil
}

// RemoveCourier soft-deletes a courier.
func (srv *courierService) RemoveCourier(ctx context.Context, id uuid.UUID) error {
	if err := srv.courierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return errors.Wrap(domainerrors.ErrCourierNotFound, "courier not found")
		}

		return errors.Wrap(err, "failed to delete courier")
	}

	return nil
}

// WeeklyPayments returns the courier's payment ledger keyed by week-start
// date string.
func (srv *courierService) WeeklyPayments(ctx context.Context, courierID uuid.UUID) (map[string]entity.CourierPaymentStatus, error) {
	if _, err := srv.GetCourier(ctx, courierID); err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.FindByCourier(ctx, courierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weekly payments")
	}

	ledger := make(map[string]entity.CourierPaymentStatus, len(payments))
	for _, payment := range payments {
		ledger[entity.WeekKey(payment.WeekStart)] = payment.Status
	}

	return ledger, nil
}

// SetWeeklyPayment sets the status of one week with a version-conditional
// write. A concurrent change surfaces as a conflict error instead of being
// silently overwritten.
func (srv *courierService) SetWeeklyPayment(ctx context.Context, courierID uuid.UUID, input *usecase.SetWeeklyPaymentInput) error {
	status := entity.CourierPaymentStatus(input.Status)
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment status")
	}

	if _, err := srv.GetCourier(ctx, courierID); err != nil {
		return err
	}

	weekStart := entity.WeekStart(input.WeekStart)

	payment, err := srv.paymentRepo.FindByCourierAndWeek(ctx, courierID, weekStart)
	if err != nil {
		if !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to load weekly payment")
		}

		payment = &entity.CourierPayment{
			ID:        uuid.New(),
			CourierID: courierID,
			WeekStart: weekStart,
			Status:    status,
			Version:   1,
		}
		if err := srv.paymentRepo.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create weekly payment")
		}

		return nil
	}

	if err := srv.paymentRepo.UpdateStatus(ctx, payment.ID, status, payment.Version); err != nil {
		if errors.Is(err, repository.ErrPaymentVersionConflict) {
			return errors.Wrap(domainerrors.ErrPaymentVersionConflict, "concurrent weekly payment update")
		}

		return errors.Wrap(err, "failed to update weekly payment")
	}

	srv.logger.Info("Weekly payment updated",
		"courierID", courierID, "weekStart", entity.WeekKey(weekStart), "status", status.String())

	return nil
}
