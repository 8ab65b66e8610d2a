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

// mailService implements the MailUsecase interface.
type mailService struct {
	mailRepo repository.MailShipmentRepository
	logger   *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(mailRepo repository.MailShipmentRepository, logger *slog.Logger) usecase.MailUsecase {
	return &mailService{
		mailRepo: mailRepo,
		logger:   logger,
	}
}

// CreateShipment registers a new mail shipment.
func (srv *mailService) CreateShipment(ctx context.Context, input *usecase.MailShipmentInput) (*entity.MailShipment, error) {
	shipment, err := shipmentFromInput(input)
	if err != nil {
		return nil, err
	}
	shipment.ID = uuid.New()

	if err := srv.mailRepo.Create(ctx, shipment); err != nil {
		return nil, errors.Wrap(err, "failed to create mail shipment")
	}

	return shipment, nil
}

// GetShipment retrieves one shipment.
func (srv *mailService) GetShipment(ctx context.Context, id uuid.UUID) (*entity.MailShipment, error) {
	shipment, err := srv.mailRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShipmentNotFound, "shipment not found")
		}

		return nil, errors.Wrap(err, "failed to find shipment")
	}

	return shipment, nil
}

// ListShipments lists shipments matching the filter.
func (srv *mailService) ListShipments(ctx context.Context, input *usecase.ListMailShipmentsInput) ([]*entity.MailShipment, error) {
	filter := repository.MailShipmentFilter{
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
	}

	if input.Service != "" {
		service := entity.MailServiceKind(input.Service)
		if !service.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown mail service")
		}
		filter.Service = service
	}

	shipments, err := srv.mailRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	return shipments, nil
}

// UpdateShipment applies updates to a shipment.
func (srv *mailService) UpdateShipment(ctx context.Context, id uuid.UUID, input *usecase.MailShipmentInput) error {
	shipment, err := srv.GetShipment(ctx, id)
	if err != nil {
		return err
	}

	updated, err := shipmentFromInput(input)
	if err != nil {
		return err
	}
	updated.ID = shipment.ID
	updated.CreatedAt = shipment.CreatedAt

	if err := srv.mailRepo.Update(ctx, updated); err != nil {
		return errors.Wrap(err, "failed to update shipment")
	}

	return nil
}

// RemoveShipment deletes a shipment.
func (srv *mailService) RemoveShipment(ctx context.Context, id uuid.UUID) error {
	if err := srv.mailRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return errors.Wrap(domainerrors.ErrShipmentNotFound, "shipment not found")
		}

		return errors.Wrap(err, "failed to delete shipment")
	}

	return nil
}

func shipmentFromInput(input *usecase.MailShipmentInput) (*entity.MailShipment, error) {
	service := entity.MailServiceKind(input.Service)
	if !service.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown mail service")
	}

	shipment := &entity.MailShipment{
		ClientName:    input.ClientName,
		Recipient:     input.Recipient,
		TrackingCode:  input.TrackingCode,
		Service:       service,
		PaymentStatus: input.PaymentStatus,
		Status:        input.Status,
		Observations:  input.Observations,
	}

	// Only Disktenha shipments carry a value; the rest are billed at the counter.
	if service == entity.MailDisktenha {
		shipment.Value = input.Value
	}

	return shipment, nil
}
