package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'dispositivos' table.
// It represents a browser/device known to the dashboard gate.
type DeviceModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Fingerprint string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name        string     `gorm:"type:varchar(255)"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:varchar(20);not null"`
	LastAccess  time.Time  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "dispositivos"
}
