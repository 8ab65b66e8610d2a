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

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// List retrieves deliveries matching the filter in manual order.
func (repo *deliveryRepository) List(ctx context.Context, filter repository.DeliveryFilter) ([]*entity.Delivery, error) {
	tx := repo.db.WithContext(ctx)

	if filter.Date != nil {
		tx = tx.Where("scheduled_date = ?", datatypes.Date(*filter.Date))
	}
	if filter.CourierID != nil {
		tx = tx.Where("courier_id = ?", *filter.CourierID)
	}
	if filter.ClientID != nil {
		tx = tx.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Region != "" {
		tx = tx.Where("region = ?", filter.Region)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Period != nil {
		tx = tx.Where("period = ?", filter.Period.String())
	}

	var deliveryModels []*model.DeliveryModel
	if err := tx.Order("sort_index ASC, id ASC").Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// FindUnreceived retrieves deliveries whose payment-received flag is still false.
func (repo *deliveryRepository) FindUnreceived(ctx context.Context) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("payment_received = ?", false).
		Order("created_at ASC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unreceived deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// Update modifies an existing delivery.
func (repo *deliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]any{
			"requisition_number":     deliveryM.RequisitionNumber,
			"client_id":              deliveryM.ClientID,
			"address_id":             deliveryM.AddressID,
			"destination":            deliveryM.Destination,
			"region":                 deliveryM.Region,
			"courier_id":             deliveryM.CourierID,
			"scheduled_date":         deliveryM.ScheduledDate,
			"period":                 deliveryM.Period,
			"status":                 deliveryM.Status,
			"payment_method":         deliveryM.PaymentMethod,
			"value":                  deliveryM.Value,
			"sale_value":             deliveryM.SaleValue,
			"payment_received":       deliveryM.PaymentReceived,
			"change_needed":          deliveryM.ChangeNeeded,
			"refrigerated":           deliveryM.Refrigerated,
			"prescription_retrieval": deliveryM.PrescriptionRetrieval,
			"sort_index":             deliveryM.SortIndex,
			"prescription_url":       deliveryM.PrescriptionURL,
			"payment_proof_url":      deliveryM.PaymentProofURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// UpdateStatus sets only the status of a delivery.
func (repo *deliveryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// MarkPaymentReceived flips the payment-received flag to true.
func (repo *deliveryRepository) MarkPaymentReceived(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", id).
		Update("payment_received", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark payment received")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// UpdateSortIndexes persists the recomputed ordering of one period partition.
// Callers run this inside txManager.Execute so the batch lands atomically.
func (repo *deliveryRepository) UpdateSortIndexes(ctx context.Context, updates []repository.SortIndexUpdate) error {
	for _, update := range updates {
		if err := repo.db.WithContext(ctx).
			Model(&model.DeliveryModel{}).
			Where("id = ?", update.DeliveryID).
			Update("sort_index", update.SortIndex).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update sort indexes")
		}
	}

	return nil
}

// Delete removes a delivery by its ID.
func (repo *deliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DeliveryModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// toDeliveryDomain converts a GORM model to a domain entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	return &entity.Delivery{
		ID:                    data.ID,
		RequisitionNumber:     data.RequisitionNumber,
		ClientID:              data.ClientID,
		AddressID:             data.AddressID,
		Destination:           data.Destination,
		Region:                data.Region,
		CourierID:             data.CourierID,
		ScheduledDate:         time.Time(data.ScheduledDate),
		Period:                entity.Period(data.Period),
		Status:                entity.DeliveryStatus(data.Status),
		PaymentMethod:         data.PaymentMethod,
		Value:                 data.Value,
		SaleValue:             data.SaleValue,
		PaymentReceived:       data.PaymentReceived,
		ChangeNeeded:          data.ChangeNeeded,
		Refrigerated:          data.Refrigerated,
		PrescriptionRetrieval: data.PrescriptionRetrieval,
		SortIndex:             data.SortIndex,
		PrescriptionURL:       data.PrescriptionURL,
		PaymentProofURL:       data.PaymentProofURL,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromDeliveryDomain converts a domain entity to a GORM model.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	return &model.DeliveryModel{
		ID:                    data.ID,
		RequisitionNumber:     data.RequisitionNumber,
		ClientID:              data.ClientID,
		AddressID:             data.AddressID,
		Destination:           data.Destination,
		Region:                data.Region,
		CourierID:             data.CourierID,
		ScheduledDate:         datatypes.Date(data.ScheduledDate),
		Period:                data.Period.String(),
		Status:                data.Status.String(),
		PaymentMethod:         data.PaymentMethod,
		Value:                 data.Value,
		SaleValue:             data.SaleValue,
		PaymentReceived:       data.PaymentReceived,
		ChangeNeeded:          data.ChangeNeeded,
		Refrigerated:          data.Refrigerated,
		PrescriptionRetrieval: data.PrescriptionRetrieval,
		SortIndex:             data.SortIndex,
		PrescriptionURL:       data.PrescriptionURL,
		PaymentProofURL:       data.PaymentProofURL,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
