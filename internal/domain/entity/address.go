// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address belonging to exactly one client.
// A client may have several addresses; at most one is marked primary.
type Address struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"cliente_id"`
	Street       string    `json:"rua"`
	Number       string    `json:"numero"`
	Complement   string    `json:"complemento"`
	Neighborhood string    `json:"bairro"`
	City         string    `json:"cidade"`
	Region       string    `json:"regiao"`
	IsPrimary    bool      `json:"is_principal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullText renders the address the way it is printed on a manifest and
// the way it is submitted to the geocoding lookup.
func (a *Address) FullText() string {
	text := a.Street
	if a.Number != "" {
		text += ", " + a.Number
	}
	if a.Neighborhood != "" {
		text += ", " + a.Neighborhood
	}
	if a.City != "" {
		text += ", " + a.City
	}

	return text
}
