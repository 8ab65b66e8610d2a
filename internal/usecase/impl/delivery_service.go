package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/domain/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	clientRepo   repository.ClientRepository
	addressRepo  repository.AddressRepository
	geocoder     service.GeocodingService
	qrSvc        service.QRCodeService
	storage      service.AttachmentStorage
	logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	txManager repository.TransactionManager,
	deliveryRepo repository.DeliveryRepository,
	clientRepo repository.ClientRepository,
	addressRepo repository.AddressRepository,
	geocoder service.GeocodingService,
	qrSvc service.QRCodeService,
	storage service.AttachmentStorage,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		clientRepo:   clientRepo,
		addressRepo:  addressRepo,
		geocoder:     geocoder,
		qrSvc:        qrSvc,
		storage:      storage,
		logger:       logger,
	}
}

// CreateDelivery registers a new delivery at the end of its period's order.
func (srv *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	period := entity.Period(input.Period)
	if !period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, "unknown period label")
	}

	if _, err := srv.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrClientNotFound, "client not found")
		}

		return nil, errors.Wrap(err, "failed to find client")
	}

	delivery := &entity.Delivery{
		ID:                    uuid.New(),
		RequisitionNumber:     input.RequisitionNumber,
		ClientID:              input.ClientID,
		AddressID:             input.AddressID,
		Destination:           input.Destination,
		Region:                input.Region,
		CourierID:             input.CourierID,
		ScheduledDate:         input.ScheduledDate,
		Period:                period,
		Status:                entity.StatusAwaiting,
		PaymentMethod:         input.PaymentMethod,
		Value:                 input.Value,
		SaleValue:             input.SaleValue,
		PaymentReceived:       entity.PaymentMethodReceived(input.PaymentMethod),
		ChangeNeeded:          input.ChangeNeeded,
		Refrigerated:          input.Refrigerated,
		PrescriptionRetrieval: input.PrescriptionRetrieval,
	}

	// Snapshot the stored address onto the record so the manifest keeps
	// working even if the address is edited later.
	if input.AddressID != nil && delivery.Destination == "" {
		address, err := srv.addressRepo.FindByID(ctx, *input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return nil, errors.Wrap(err, "failed to find address")
		}
		delivery.Destination = address.FullText()
		if delivery.Region == "" {
			delivery.Region = address.Region
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.DeliveryRepo()

		partition, err := srv.partitionOf(ctx, deliveryRepo, delivery)
		if err != nil {
			return err
		}
		delivery.SortIndex = len(partition) + 1

		return deliveryRepo.Create(ctx, delivery)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create delivery")
	}

	return delivery, nil
}

// GetDelivery retrieves one delivery.
func (srv *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

// ListDeliveries retrieves deliveries matching the filter, in manual order.
func (srv *deliveryService) ListDeliveries(ctx context.Context, input *usecase.ListDeliveriesInput) ([]*entity.Delivery, error) {
	filter := repository.DeliveryFilter{
		Date:      input.Date,
		CourierID: input.CourierID,
		ClientID:  input.ClientID,
		Region:    input.Region,
	}

	if input.Status != "" {
		status := entity.NormalizeStatus(entity.DeliveryStatus(input.Status))
		if !status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidStatus, "unknown status label")
		}
		filter.Status = status
	}

	if input.Period != nil {
		period := entity.Period(*input.Period)
		if !period.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, "unknown period label")
		}
		filter.Period = &period
	}

	deliveries, err := srv.deliveryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return deliveries, nil
}

// UpdateDelivery applies partial updates.
func (srv *deliveryService) UpdateDelivery(ctx context.Context, id uuid.UUID, input *usecase.UpdateDeliveryInput) error {
	delivery, err := srv.GetDelivery(ctx, id)
	if err != nil {
		return err
	}

	if input.Destination != nil {
		delivery.Destination = *input.Destination
	}
	if input.Region != nil {
		delivery.Region = *input.Region
	}
	if input.CourierID != nil {
		delivery.CourierID = input.CourierID
	}
	if input.ScheduledDate != nil {
		delivery.ScheduledDate = *input.ScheduledDate
	}
	if input.Period != nil {
		period := entity.Period(*input.Period)
		if !period.IsValid() {
			return errors.Wrap(domainerrors.ErrInvalidPeriod, "unknown period label")
		}
		delivery.Period = period
	}
	if input.PaymentMethod != nil {
		delivery.PaymentMethod = *input.PaymentMethod
	}
	if input.Value != nil {
		delivery.Value = *input.Value
	}
	if input.SaleValue != nil {
		delivery.SaleValue = *input.SaleValue
	}
	if input.PaymentReceived != nil {
		delivery.PaymentReceived = *input.PaymentReceived
	}
	if input.ChangeNeeded != nil {
		delivery.ChangeNeeded = *input.ChangeNeeded
	}

	if err := srv.deliveryRepo.Update(ctx, delivery); err != nil {
		return errors.Wrap(err, "failed to update delivery")
	}

	return nil
}

// RemoveDelivery deletes a delivery.
func (srv *deliveryService) RemoveDelivery(ctx context.Context, id uuid.UUID) error {
	if err := srv.deliveryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
		}

		return errors.Wrap(err, "failed to delete delivery")
	}

	return nil
}

// ChangeStatus normalizes legacy labels, rejects unknown ones and persists
// the new status.
func (srv *deliveryService) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (entity.DeliveryStatus, error) {
	normalized := entity.NormalizeStatus(entity.DeliveryStatus(status))
	if !normalized.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status label %q", status)
	}

	if err := srv.deliveryRepo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return "", errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
		}

		return "", errors.Wrap(err, "failed to update status")
	}

	return normalized, nil
}

// MoveDelivery swaps a delivery with its neighbor inside its period
// partition and persists the partition's recomputed sort indices in one batch.
func (srv *deliveryService) MoveDelivery(ctx context.Context, id uuid.UUID, direction usecase.MoveDirection) error {
	if direction != usecase.MoveUp && direction != usecase.MoveDown {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown move direction")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.DeliveryRepo()

		delivery, err := deliveryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery not found")
			}

			return errors.Wrap(err, "failed to find delivery")
		}

		partition, err := srv.partitionOf(ctx, deliveryRepo, delivery)
		if err != nil {
			return err
		}

		position := -1
		for i, candidate := range partition {
			if candidate.ID == delivery.ID {
				position = i

				break
			}
		}
		if position < 0 {
			return errors.Wrap(domainerrors.ErrDeliveryNotFound, "delivery missing from its partition")
		}

		neighbor := position - 1
		if direction == usecase.MoveDown {
			neighbor = position + 1
		}
		if neighbor < 0 || neighbor >= len(partition) {
			// Already at the boundary.
			return nil
		}

		partition[position], partition[neighbor] = partition[neighbor], partition[position]

		// Persist the whole partition with dense indices; legacy records may
		// carry duplicate or zero indices and this heals them.
		updates := make([]repository.SortIndexUpdate, len(partition))
		for i, candidate := range partition {
			updates[i] = repository.SortIndexUpdate{DeliveryID: candidate.ID, SortIndex: i + 1}
		}

		return deliveryRepo.UpdateSortIndexes(ctx, updates)
	})
	if err != nil {
		return errors.Wrap(err, "failed to move delivery")
	}

	return nil
}

// ReconcilePayments scans deliveries whose payment-received flag is false
// and flips the flag for every record whose method classifies as paid.
func (srv *deliveryService) ReconcilePayments(ctx context.Context) (*usecase.ReconciliationResult, error) {
	deliveries, err := srv.deliveryRepo.FindUnreceived(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load deliveries for reconciliation")
	}

	result := &usecase.ReconciliationResult{Scanned: len(deliveries)}

	// One update per record, sequentially; a failure on one record must not
	// stop the pass.
	for _, delivery := range deliveries {
		if !entity.PaymentMethodReceived(delivery.PaymentMethod) {
			continue
		}

		if err := srv.deliveryRepo.MarkPaymentReceived(ctx, delivery.ID); err != nil {
			result.Failures++
			srv.logger.Warn("Payment reconciliation update failed",
				"deliveryID", delivery.ID, "error", err.Error())

			continue
		}
		result.Corrected++
	}

	srv.logger.Info("Payment reconciliation pass finished",
		"scanned", result.Scanned, "corrected", result.Corrected, "failures", result.Failures)

	return result, nil
}

// MapView geocodes the day's deliveries best-effort.
func (srv *deliveryService) MapView(ctx context.Context, day time.Time) ([]*usecase.DeliveryPoint, error) {
	deliveries, err := srv.deliveryRepo.List(ctx, repository.DeliveryFilter{Date: &day})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries for map view")
	}

	points := make([]*usecase.DeliveryPoint, 0, len(deliveries))
	for _, delivery := range deliveries {
		if delivery.Destination == "" {
			continue
		}

		point, ok, err := srv.geocoder.Geocode(ctx, delivery.Destination)
		if err != nil {
			// A broken upstream must not break the map; skip the entry.
			srv.logger.Debug("Geocoding lookup failed",
				"deliveryID", delivery.ID, "error", err.Error())

			continue
		}
		if !ok {
			continue
		}

		points = append(points, &usecase.DeliveryPoint{Delivery: delivery, Point: point})
	}

	return points, nil
}

// RequisitionQR renders the manifest QR PNG for a delivery.
func (srv *deliveryService) RequisitionQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	delivery, err := srv.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrSvc.GenerateRequisitionQR(delivery.RequisitionNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render requisition QR")
	}

	return png, nil
}

// AttachFile uploads an attachment blob and stores its public URL.
func (srv *deliveryService) AttachFile(ctx context.Context, id uuid.UUID, input *usecase.AttachmentInput) (string, error) {
	if input.Kind != "receita" && input.Kind != "comprovante" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "unknown attachment kind")
	}

	delivery, err := srv.GetDelivery(ctx, id)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s%s", delivery.ID, input.Kind, path.Ext(input.Filename))
	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload attachment")
	}

	switch input.Kind {
	case "receita":
		delivery.PrescriptionURL = url
	case "comprovante":
		delivery.PaymentProofURL = url
	}

	if err := srv.deliveryRepo.Update(ctx, delivery); err != nil {
		return "", errors.Wrap(err, "failed to store attachment URL")
	}

	return url, nil
}

// partitionOf lists the deliveries sharing the target's day and period,
// already in (sort index, id) order.
func (srv *deliveryService) partitionOf(ctx context.Context, deliveryRepo repository.DeliveryRepository, delivery *entity.Delivery) ([]*entity.Delivery, error) {
	day := delivery.ScheduledDate
	period := delivery.Period

	partition, err := deliveryRepo.List(ctx, repository.DeliveryFilter{Date: &day, Period: &period})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load period partition")
	}

	return partition, nil
}
