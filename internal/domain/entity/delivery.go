// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is the central record of the system: one motorcycle delivery
// (romaneio line) created by an attendant and worked by a courier.
type Delivery struct {
	ID uuid.UUID `json:"id"`

	// RequisitionNumber is the human-facing order identifier (requisição).
	RequisitionNumber string `json:"numero_requisicao"`

	ClientID  uuid.UUID  `json:"cliente_id"`
	AddressID *uuid.UUID `json:"endereco_id,omitempty"`

	// Destination is a denormalized address snapshot used when the delivery
	// does not reference a stored address, and on printed manifests.
	Destination string `json:"destino"`
	Region      string `json:"regiao"`

	CourierID *uuid.UUID `json:"motoboy_id,omitempty"`

	ScheduledDate time.Time      `json:"data_entrega"`
	Period        Period         `json:"periodo"`
	Status        DeliveryStatus `json:"status"`

	PaymentMethod   string  `json:"forma_pagamento"`
	Value           float64 `json:"valor"`
	SaleValue       float64 `json:"valor_venda"`
	PaymentReceived bool    `json:"pagamento_recebido"`
	ChangeNeeded    bool    `json:"precisa_troco"`

	Refrigerated          bool `json:"item_geladeira"`
	PrescriptionRetrieval bool `json:"recolher_receita"`

	// SortIndex is the manual ordering position inside the delivery's period.
	SortIndex int `json:"ordem_entrega"`

	PrescriptionURL string `json:"receita_url,omitempty"`
	PaymentProofURL string `json:"comprovante_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
