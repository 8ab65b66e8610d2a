package postgres

import (
	"context"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mailRepository implements the repository.MailShipmentRepository interface.
type mailRepository struct {
	db *gorm.DB
}

// NewMailRepository is the constructor for mailRepository.
func NewMailRepository(db *gorm.DB) repository.MailShipmentRepository {
	return &mailRepository{
		db: db,
	}
}

// Create persists a new mail shipment.
func (repo *mailRepository) Create(ctx context.Context, shipment *entity.MailShipment) error {
	shipmentM := fromMailShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shipment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mail shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// FindByID retrieves a shipment by its unique ID.
func (repo *mailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MailShipment, error) {
	var shipmentM model.MailShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find mail shipment by ID")
	}

	return toMailShipmentDomain(&shipmentM), nil
}

// List retrieves shipments matching the filter, newest first.
func (repo *mailRepository) List(ctx context.Context, filter repository.MailShipmentFilter) ([]*entity.MailShipment, error) {
	tx := repo.db.WithContext(ctx)

	if filter.Service != "" {
		tx = tx.Where("service = ?", filter.Service.String())
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		tx = tx.Where("payment_status = ?", filter.PaymentStatus)
	}

	var shipmentModels []*model.MailShipmentModel
	if err := tx.Order("created_at DESC").Find(&shipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list mail shipments")
	}

	shipments := make([]*entity.MailShipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toMailShipmentDomain(shipmentM))
	}

	return shipments, nil
}

// Update modifies an existing shipment.
func (repo *mailRepository) Update(ctx context.Context, shipment *entity.MailShipment) error {
	shipmentM := fromMailShipmentDomain(shipment)

	result := repo.db.WithContext(ctx).
		Model(&model.MailShipmentModel{}).
		Where("id = ?", shipment.ID).
		Updates(map[string]any{
			"client_name":    shipmentM.ClientName,
			"recipient":      shipmentM.Recipient,
			"tracking_code":  shipmentM.TrackingCode,
			"service":        shipmentM.Service,
			"value":          shipmentM.Value,
			"payment_status": shipmentM.PaymentStatus,
			"status":         shipmentM.Status,
			"observations":   shipmentM.Observations,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mail shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// Delete removes a shipment by its ID.
func (repo *mailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MailShipmentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mail shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// toMailShipmentDomain converts a GORM model to a domain entity.
func toMailShipmentDomain(data *model.MailShipmentModel) *entity.MailShipment {
	return &entity.MailShipment{
		ID:            data.ID,
		ClientName:    data.ClientName,
		Recipient:     data.Recipient,
		TrackingCode:  data.TrackingCode,
		Service:       entity.MailServiceKind(data.Service),
		Value:         data.Value,
		PaymentStatus: data.PaymentStatus,
		Status:        data.Status,
		Observations:  data.Observations,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromMailShipmentDomain converts a domain entity to a GORM model.
func fromMailShipmentDomain(data *entity.MailShipment) *model.MailShipmentModel {
	return &model.MailShipmentModel{
		ID:            data.ID,
		ClientName:    data.ClientName,
		Recipient:     data.Recipient,
		TrackingCode:  data.TrackingCode,
		Service:       data.Service.String(),
		Value:         data.Value,
		PaymentStatus: data.PaymentStatus,
		Status:        data.Status,
		Observations:  data.Observations,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
