package usecase

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// CourierInput carries the fields of a courier record.
type CourierInput struct {
	Name     string `json:"nome" validate:"required"`
	Phone    string `json:"telefone"`
	IsActive *bool  `json:"ativo"`
}

// SetWeeklyPaymentInput marks one work week of a courier as paid or pending.
type SetWeeklyPaymentInput struct {
	WeekStart time.Time `json:"semana_inicio" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}

// CourierUsecase defines courier management and the weekly payment ledger.
type CourierUsecase interface {
	// CreateCourier registers a new courier.
	CreateCourier(ctx context.Context, input *CourierInput) (*entity.Courier, error)

	// GetCourier retrieves one courier.
	GetCourier(ctx context.Context, id uuid.UUID) (*entity.Courier, error)

	// ListCouriers lists couriers; activeOnly omits deactivated ones.
	ListCouriers(ctx context.Context, activeOnly bool) ([]*entity.Courier, error)

	// UpdateCourier applies updates to a courier.
	UpdateCourier(ctx context.Context, id uuid.UUID, input *CourierInput) error

	// RemoveCourier soft-deletes a courier.
	RemoveCourier(ctx context.Context, id uuid.UUID) error

	// WeeklyPayments returns the courier's payment ledger keyed by
	// week-start date string, the shape the dashboard has always shown.
	WeeklyPayments(ctx context.Context, courierID uuid.UUID) (map[string]entity.CourierPaymentStatus, error)

	// SetWeeklyPayment sets the status of one week. The write is conditional
	// on the stored row version; a concurrent change surfaces as a conflict
	// error instead of being silently overwritten.
	SetWeeklyPayment(ctx context.Context, courierID uuid.UUID, input *SetWeeklyPaymentInput) error
}
