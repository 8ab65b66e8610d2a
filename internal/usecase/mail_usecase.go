package usecase

import (
	"context"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// MailShipmentInput carries the fields of a mail shipment.
type MailShipmentInput struct {
	ClientName    string  `json:"cliente" validate:"required"`
	Recipient     string  `json:"destinatario" validate:"required"`
	TrackingCode  string  `json:"codigo_rastreio"`
	Service       string  `json:"servico" validate:"required"`
	Value         float64 `json:"valor"`
	PaymentStatus string  `json:"status_pagamento"`
	Status        string  `json:"status"`
	Observations  string  `json:"observacoes"`
}

// ListMailShipmentsInput narrows a shipment listing.
type ListMailShipmentsInput struct {
	Service       string
	Status        string
	PaymentStatus string
}

// MailUsecase defines mail shipment (Sedex/PAC/Disktenha) management.
type MailUsecase interface {
	// CreateShipment registers a new mail shipment. The value field is kept
	// only for Disktenha; other services are billed at the counter.
	CreateShipment(ctx context.Context, input *MailShipmentInput) (*entity.MailShipment, error)

	// GetShipment retrieves one shipment.
	GetShipment(ctx context.Context, id uuid.UUID) (*entity.MailShipment, error)

	// ListShipments lists shipments matching the filter.
	ListShipments(ctx context.Context, input *ListMailShipmentsInput) ([]*entity.MailShipment, error)

	// UpdateShipment applies updates to a shipment.
	UpdateShipment(ctx context.Context, id uuid.UUID, input *MailShipmentInput) error

	// RemoveShipment deletes a shipment.
	RemoveShipment(ctx context.Context, id uuid.UUID) error
}
