// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the approval state of a registered device.
type DeviceStatus string

const (
	// DeviceStatusPending means the device awaits administrator approval.
	DeviceStatusPending DeviceStatus = "Pendente"
	// DeviceStatusAuthorized means the device may use the dashboard.
	DeviceStatusAuthorized DeviceStatus = "Autorizado"
	// DeviceStatusBlocked means the device has been explicitly denied.
	DeviceStatusBlocked DeviceStatus = "Bloqueado"
)

// String returns the string representation of the DeviceStatus.
func (s DeviceStatus) String() string {
	return string(s)
}

// IsValid checks if the DeviceStatus is a valid value.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusPending, DeviceStatusAuthorized, DeviceStatusBlocked:
		return true
	default:
		return false
	}
}

// Device is a browser/device known to the dashboard, identified by its
// fingerprint token. The fingerprint is a convenience identifier, not a
// credential: it is derived from spoofable browser signals.
type Device struct {
	ID          uuid.UUID    `json:"id"`
	Fingerprint string       `json:"fingerprint"`
	Name        string       `json:"nome_dispositivo"`
	UserID      *uuid.UUID   `json:"usuario_id,omitempty"`
	Status      DeviceStatus `json:"status"`
	LastAccess  time.Time    `json:"ultimo_acesso"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
