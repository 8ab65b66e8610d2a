// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Courier is a motorcycle courier (motoboy).
type Courier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	IsActive  bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourierPaymentStatus is the per-week payment state of a courier.
type CourierPaymentStatus string

const (
	// CourierPaymentPaid means the week has been settled.
	CourierPaymentPaid CourierPaymentStatus = "Pago"
	// CourierPaymentPending means the week is still owed.
	CourierPaymentPending CourierPaymentStatus = "Aguardando"
)

// String returns the string representation of the CourierPaymentStatus.
func (s CourierPaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the CourierPaymentStatus is a valid value.
func (s CourierPaymentStatus) IsValid() bool {
	switch s {
	case CourierPaymentPaid, CourierPaymentPending:
		return true
	default:
		return false
	}
}

// CourierPayment is one courier's payment state for one work week,
// keyed by the week-start date. Version backs the conditional update.
type CourierPayment struct {
	ID        uuid.UUID            `json:"id"`
	CourierID uuid.UUID            `json:"motoboy_id"`
	WeekStart time.Time            `json:"semana_inicio"`
	Status    CourierPaymentStatus `json:"status"`
	Version   int                  `json:"version"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
