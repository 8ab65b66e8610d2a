package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourierModel is the GORM-specific struct for the 'motoboys' table.
type CourierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CourierModel) TableName() string {
	return "motoboys"
}

// CourierPaymentModel is the GORM-specific struct for the
// 'motoboy_pagamentos' table. One row per (courier, week start); the version
// column backs the conditional status update.
type CourierPaymentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CourierID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_pagamentos_motoboy_semana"`
	WeekStart datatypes.Date `gorm:"not null;uniqueIndex:idx_pagamentos_motoboy_semana"`
	Status    string         `gorm:"type:varchar(20);not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierPaymentModel) TableName() string {
	return "motoboy_pagamentos"
}
