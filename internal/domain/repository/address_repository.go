// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address for a client.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByClient retrieves all addresses for a client, primary first.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Address, error)

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// ClearPrimary unsets the primary flag on every address of a client.
	// Used inside the transaction that marks a new primary.
	ClearPrimary(ctx context.Context, clientID uuid.UUID) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
