// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a pharmacy customer. Clients are referenced by addresses and
// deliveries and are never hard-deleted in the normal flow.
type Client struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"nome"`
	Phone     string     `json:"telefone"`
	CPF       string     `json:"cpf"`
	Email     string     `json:"email"`
	Addresses []*Address `json:"enderecos,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
