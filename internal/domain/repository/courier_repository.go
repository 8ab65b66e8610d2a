// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for courier persistence.
var (
	// ErrCourierNotFound is returned when a courier is not found.
	ErrCourierNotFound = errors.New("courier not found")
	// ErrPaymentVersionConflict is returned when a conditional weekly-payment
	// update loses the race against another session.
	ErrPaymentVersionConflict = errors.New("weekly payment version conflict")
)

// CourierRepository defines the standard operations for courier persistence.
type CourierRepository interface {
	// Create persists a new courier.
	Create(ctx context.Context, courier *entity.Courier) error

	// FindByID retrieves a courier by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Courier, error)

	// FindAll retrieves couriers, active first, ordered by name.
	// When activeOnly is true, inactive couriers are omitted.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Courier, error)

	// Update modifies an existing courier.
	Update(ctx context.Context, courier *entity.Courier) error

	// Delete soft-deletes a courier.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourierPaymentRepository stores the per-week payment rows of a courier.
// One row per (courier, week start); updates are conditional on the version
// column so that concurrent sessions cannot silently overwrite each other.
type CourierPaymentRepository interface {
	// FindByCourier retrieves all weekly payment rows of a courier.
	FindByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.CourierPayment, error)

	// FindByCourierAndWeek retrieves the row for one week.
	// Returns ErrCourierNotFound-free sentinel ErrPaymentNotFound when absent.
	FindByCourierAndWeek(ctx context.Context, courierID uuid.UUID, weekStart time.Time) (*entity.CourierPayment, error)

	// Create inserts the row for a week that has no payment state yet.
	Create(ctx context.Context, payment *entity.CourierPayment) error

	// UpdateStatus sets the status of a row if and only if the stored version
	// still matches expectedVersion; the version is incremented on success.
	// Returns ErrPaymentVersionConflict otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourierPaymentStatus, expectedVersion int) error
}

// ErrPaymentNotFound is returned when no weekly payment row exists yet.
var ErrPaymentNotFound = errors.New("weekly payment not found")
