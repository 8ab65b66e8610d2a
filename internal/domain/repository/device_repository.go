// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a fingerprint is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device record.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByFingerprint retrieves a device by its fingerprint token.
	FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Device, error)

	// FindAll retrieves all devices, pending first, most recent access first.
	FindAll(ctx context.Context) ([]*entity.Device, error)

	// UpdateStatus sets the approval status of a device.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error

	// TouchLastAccess refreshes the last-access timestamp of a device.
	TouchLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error

	// Update modifies an existing device record (name, linked user).
	Update(ctx context.Context, device *entity.Device) error

	// Delete removes a device by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
