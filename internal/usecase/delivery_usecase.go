package usecase

import (
	"context"
	"io"
	"time"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MoveDirection is the direction of a manual reorder step.
type MoveDirection string

const (
	// MoveUp moves a delivery one position earlier inside its period.
	MoveUp MoveDirection = "up"
	// MoveDown moves a delivery one position later inside its period.
	MoveDown MoveDirection = "down"
)

// CreateDeliveryInput carries the fields of a new delivery.
type CreateDeliveryInput struct {
	RequisitionNumber     string     `json:"numero_requisicao" validate:"required"`
	ClientID              uuid.UUID  `json:"cliente_id" validate:"required"`
	AddressID             *uuid.UUID `json:"endereco_id"`
	Destination           string     `json:"destino"`
	Region                string     `json:"regiao"`
	CourierID             *uuid.UUID `json:"motoboy_id"`
	ScheduledDate         time.Time  `json:"data_entrega" validate:"required"`
	Period                string     `json:"periodo"`
	PaymentMethod         string     `json:"forma_pagamento"`
	Value                 float64    `json:"valor"`
	SaleValue             float64    `json:"valor_venda"`
	ChangeNeeded          bool       `json:"precisa_troco"`
	Refrigerated          bool       `json:"item_geladeira"`
	PrescriptionRetrieval bool       `json:"recolher_receita"`
}

// UpdateDeliveryInput carries partial delivery updates.
type UpdateDeliveryInput struct {
	Destination     *string    `json:"destino"`
	Region          *string    `json:"regiao"`
	CourierID       *uuid.UUID `json:"motoboy_id"`
	ScheduledDate   *time.Time `json:"data_entrega"`
	Period          *string    `json:"periodo"`
	PaymentMethod   *string    `json:"forma_pagamento"`
	Value           *float64   `json:"valor"`
	SaleValue       *float64   `json:"valor_venda"`
	PaymentReceived *bool      `json:"pagamento_recebido"`
	ChangeNeeded    *bool      `json:"precisa_troco"`
}

// ListDeliveriesInput narrows a delivery listing.
type ListDeliveriesInput struct {
	Date      *time.Time
	CourierID *uuid.UUID
	ClientID  *uuid.UUID
	Region    string
	Status    string
	Period    *string
}

// ReconciliationResult is the aggregate outcome of one reconciliation pass.
type ReconciliationResult struct {
	Scanned   int `json:"verificadas"`
	Corrected int `json:"corrigidas"`
	Failures  int `json:"falhas"`
}

// DeliveryPoint is a delivery with its geocoded coordinate for the map view.
type DeliveryPoint struct {
	Delivery *entity.Delivery `json:"entrega"`
	Point    orb.Point        `json:"coordenadas"`
}

// AttachmentInput carries one uploaded attachment.
type AttachmentInput struct {
	Kind        string // "receita" or "comprovante"
	Filename    string
	ContentType string
	Body        io.Reader
}

// DeliveryUsecase defines the delivery workflow: CRUD, the informal status
// vocabulary, per-period manual ordering, the payment reconciliation pass,
// and the manifest extras (map view, QR, attachments).
type DeliveryUsecase interface {
	// CreateDelivery registers a new delivery at the end of its period's order.
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)

	// GetDelivery retrieves one delivery.
	GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// ListDeliveries retrieves deliveries matching the filter, in manual order.
	ListDeliveries(ctx context.Context, input *ListDeliveriesInput) ([]*entity.Delivery, error)

	// UpdateDelivery applies partial updates.
	UpdateDelivery(ctx context.Context, id uuid.UUID, input *UpdateDeliveryInput) error

	// RemoveDelivery deletes a delivery.
	RemoveDelivery(ctx context.Context, id uuid.UUID) error

	// ChangeStatus normalizes legacy labels, rejects unknown ones and
	// persists the new status. Any status may follow any other.
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (entity.DeliveryStatus, error)

	// MoveDelivery swaps a delivery with its neighbor inside its period
	// partition and persists the partition's recomputed sort indices in one
	// batch. Moving the first delivery up or the last down is a no-op.
	MoveDelivery(ctx context.Context, id uuid.UUID, direction MoveDirection) error

	// ReconcilePayments scans deliveries whose payment-received flag is
	// false and flips the flag for every record whose payment method
	// classifies as already paid. One update per record, sequential; the
	// pass only ever goes false to true.
	ReconcilePayments(ctx context.Context) (*ReconciliationResult, error)

	// MapView geocodes the day's deliveries best-effort; entries that fail
	// to resolve are skipped silently.
	MapView(ctx context.Context, day time.Time) ([]*DeliveryPoint, error)

	// RequisitionQR renders the manifest QR PNG for a delivery.
	RequisitionQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// AttachFile uploads an attachment blob and stores its public URL on the
	// delivery.
	AttachFile(ctx context.Context, id uuid.UUID, input *AttachmentInput) (string, error)
}
