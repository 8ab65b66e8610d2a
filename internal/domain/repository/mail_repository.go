// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// ErrShipmentNotFound is returned when a mail shipment is not found.
var ErrShipmentNotFound = errors.New("mail shipment not found")

// MailShipmentFilter narrows a mail shipment listing.
type MailShipmentFilter struct {
	Service       entity.MailServiceKind
	Status        string
	PaymentStatus string
}

// MailShipmentRepository defines the interface for mail shipment persistence.
type MailShipmentRepository interface {
	// Create persists a new mail shipment.
	Create(ctx context.Context, shipment *entity.MailShipment) error

	// FindByID retrieves a shipment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MailShipment, error)

	// List retrieves shipments matching the filter, newest first.
	List(ctx context.Context, filter MailShipmentFilter) ([]*entity.MailShipment, error)

	// Update modifies an existing shipment.
	Update(ctx context.Context, shipment *entity.MailShipment) error

	// Delete removes a shipment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
