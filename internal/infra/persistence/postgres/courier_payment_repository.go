package postgres

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// courierPaymentRepository implements the repository.CourierPaymentRepository interface.
type courierPaymentRepository struct {
	db *gorm.DB
}

// NewCourierPaymentRepository is the constructor for courierPaymentRepository.
func NewCourierPaymentRepository(db *gorm.DB) repository.CourierPaymentRepository {
	return &courierPaymentRepository{
		db: db,
	}
}

// FindByCourier retrieves all weekly payment rows of a courier.
func (repo *courierPaymentRepository) FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.CourierPayment, error) {
	var paymentModels []*model.CourierPaymentModel

	if err := repo.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Order("week_start DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find weekly payments by courier")
	}

	payments := make([]*entity.CourierPayment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toCourierPaymentDomain(paymentM))
	}

	return payments, nil
}

// FindByCourierAndWeek retrieves the row for one week.
func (repo *courierPaymentRepository) FindByCourierAndWeek(ctx context.Context, courierID uuid.UUID, weekStart time.Time) (*entity.CourierPayment, error) {
	var paymentM model.CourierPaymentModel

	if err := repo.db.WithContext(ctx).
		Where("courier_id = ? AND week_start = ?", courierID, datatypes.Date(weekStart)).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find weekly payment")
	}

	return toCourierPaymentDomain(&paymentM), nil
}

// Create inserts the row for a week that has no payment state yet.
// A concurrent insert for the same week trips the unique index and surfaces
// as a version conflict, same as losing the conditional update race.
func (repo *courierPaymentRepository) Create(ctx context.Context, payment *entity.CourierPayment) error {
	paymentM := fromCourierPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPaymentVersionConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCourierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weekly payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// UpdateStatus sets the status of a row if and only if the stored version
// still matches expectedVersion.
func (repo *courierPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourierPaymentStatus, expectedVersion int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierPaymentModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"status":  status.String(),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update weekly payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentVersionConflict
	}

	return nil
}

// toCourierPaymentDomain converts a GORM model to a domain entity.
func toCourierPaymentDomain(data *model.CourierPaymentModel) *entity.CourierPayment {
	return &entity.CourierPayment{
		ID:        data.ID,
		CourierID: data.CourierID,
		WeekStart: time.Time(data.WeekStart),
		Status:    entity.CourierPaymentStatus(data.Status),
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCourierPaymentDomain converts a domain entity to a GORM model.
func fromCourierPaymentDomain(data *entity.CourierPayment) *model.CourierPaymentModel {
	return &model.CourierPaymentModel{
		ID:        data.ID,
		CourierID: data.CourierID,
		WeekStart: datatypes.Date(data.WeekStart),
		Status:    data.Status.String(),
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
