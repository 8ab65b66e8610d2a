package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryModel is the GORM-specific struct for the 'entregas' table.
// ScheduledDate is a date-only column: deliveries belong to a calendar day,
// never to a point in time.
type DeliveryModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequisitionNumber string         `gorm:"type:varchar(50);not null;index"`
	ClientID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	AddressID         *uuid.UUID     `gorm:"type:uuid"`
	Destination       string         `gorm:"type:text"`
	Region            string         `gorm:"type:varchar(100);index"`
	CourierID         *uuid.UUID     `gorm:"type:uuid;index"`
	ScheduledDate     datatypes.Date `gorm:"not null;index:idx_entregas_dia_periodo"`
	Period            string         `gorm:"type:varchar(10);index:idx_entregas_dia_periodo"`
	Status            string         `gorm:"type:varchar(30);not null"`

	PaymentMethod   string  `gorm:"type:varchar(50)"`
	Value           float64 `gorm:"type:numeric(10,2);not null;default:0"`
	SaleValue       float64 `gorm:"type:numeric(10,2);not null;default:0"`
	PaymentReceived bool    `gorm:"not null;default:false"`
	ChangeNeeded    bool    `gorm:"not null;default:false"`

	Refrigerated          bool `gorm:"not null;default:false"`
	PrescriptionRetrieval bool `gorm:"not null;default:false"`

	SortIndex int `gorm:"not null;default:0"`

	PrescriptionURL string `gorm:"type:text"`
	PaymentProofURL string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "entregas"
}
