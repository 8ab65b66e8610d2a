// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// ErrDeliveryNotFound is returned when a delivery is not found.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryFilter narrows a delivery listing. Zero values mean "no filter";
// listings are derived views, never stored UI state.
type DeliveryFilter struct {
	Date      *time.Time
	CourierID *uuid.UUID
	ClientID  *uuid.UUID
	Region    string
	Status    entity.DeliveryStatus
	Period    *entity.Period
}

// SortIndexUpdate carries one recomputed ordering position for a batch write.
type SortIndexUpdate struct {
	DeliveryID uuid.UUID
	SortIndex  int
}

// DeliveryRepository defines the interface for delivery-related database operations.
type DeliveryRepository interface {
	// Create persists a new delivery.
	Create(ctx context.Context, delivery *entity.Delivery) error

	// FindByID retrieves a delivery by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// List retrieves deliveries matching the filter,
	// ordered by (sort index asc, id asc).
	List(ctx context.Context, filter DeliveryFilter) ([]*entity.Delivery, error)

	// FindUnreceived retrieves deliveries whose payment-received flag is
	// still false. Input for the reconciliation pass.
	FindUnreceived(ctx context.Context) ([]*entity.Delivery, error)

	// Update modifies an existing delivery.
	Update(ctx context.Context, delivery *entity.Delivery) error

	// UpdateStatus sets only the status of a delivery.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error

	// MarkPaymentReceived flips the payment-received flag to true.
	// It never writes false; the reconciliation pass is monotonic.
	MarkPaymentReceived(ctx context.Context, id uuid.UUID) error

	// UpdateSortIndexes persists the recomputed ordering of one period
	// partition as a batch.
	UpdateSortIndexes(ctx context.Context, updates []SortIndexUpdate) error

	// Delete removes a delivery by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
