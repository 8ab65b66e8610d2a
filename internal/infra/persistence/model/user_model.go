package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'usuarios' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Login        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
