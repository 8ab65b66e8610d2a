package model

import (
	"time"

	"github.com/google/uuid"
)

// MailShipmentModel is the GORM-specific struct for the 'sedex_disktenha'
// table, the lightweight parallel record to deliveries.
type MailShipmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientName    string    `gorm:"type:varchar(255);not null"`
	Recipient     string    `gorm:"type:varchar(255);not null"`
	TrackingCode  string    `gorm:"type:varchar(50)"`
	Service       string    `gorm:"type:varchar(20);not null;index"`
	Value         float64   `gorm:"type:numeric(10,2);not null;default:0"`
	PaymentStatus string    `gorm:"type:varchar(30)"`
	Status        string    `gorm:"type:varchar(30)"`
	Observations  string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MailShipmentModel) TableName() string {
	return "sedex_disktenha"
}
