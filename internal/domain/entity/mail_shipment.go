// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MailServiceKind is the shipping service of a mail shipment.
type MailServiceKind string

const (
	// MailSedex ships through Sedex.
	MailSedex MailServiceKind = "Sedex"
	// MailPAC ships through PAC.
	MailPAC MailServiceKind = "PAC"
	// MailDisktenha ships through the Disktenha counter service.
	MailDisktenha MailServiceKind = "Disktenha"
)

// String returns the string representation of the MailServiceKind.
func (k MailServiceKind) String() string {
	return string(k)
}

// IsValid checks if the MailServiceKind is a valid value.
func (k MailServiceKind) IsValid() bool {
	switch k {
	case MailSedex, MailPAC, MailDisktenha:
		return true
	default:
		return false
	}
}

// MailShipment is the lightweight parallel record to Delivery used for
// Sedex/PAC/Disktenha parcels. Value is only meaningful for Disktenha;
// the other services are billed at the counter.
type MailShipment struct {
	ID            uuid.UUID       `json:"id"`
	ClientName    string          `json:"cliente"`
	Recipient     string          `json:"destinatario"`
	TrackingCode  string          `json:"codigo_rastreio"`
	Service       MailServiceKind `json:"servico"`
	Value         float64         `json:"valor"`
	PaymentStatus string          `json:"status_pagamento"`
	Status        string          `json:"status"`
	Observations  string          `json:"observacoes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
