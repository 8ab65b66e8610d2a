package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'enderecos' table.
// Addresses are hard-deleted; the per-client primary flag is maintained
// transactionally by the repositories.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20)"`
	Complement   string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100)"`
	Region       string    `gorm:"type:varchar(100)"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "enderecos"
}
