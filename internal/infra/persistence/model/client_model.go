// Package model contains the GORM-specific structs mapping the domain
// entities onto PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientModel is the GORM-specific struct for the 'clientes' table.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	CPF       string    `gorm:"type:varchar(14);uniqueIndex:idx_clientes_cpf,where:cpf <> ''"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Addresses []*AddressModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clientes"
}
