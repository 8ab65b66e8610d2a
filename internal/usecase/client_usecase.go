package usecase

import (
	"context"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the fields of one delivery address.
type AddressInput struct {
	Street       string `json:"rua" validate:"required"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	Region       string `json:"regiao"`
	IsPrimary    bool   `json:"is_principal"`
}

// RegisterClientInput carries a new client and, optionally, its first
// address. Client and address are created in one transaction so a failure
// cannot leave an orphan client behind.
type RegisterClientInput struct {
	Name    string        `json:"nome" validate:"required"`
	Phone   string        `json:"telefone" validate:"required"`
	CPF     string        `json:"cpf"`
	Email   string        `json:"email" validate:"omitempty,email"`
	Address *AddressInput `json:"endereco"`
}

// UpdateClientInput carries partial client updates.
type UpdateClientInput struct {
	Name  *string `json:"nome"`
	Phone *string `json:"telefone"`
	CPF   *string `json:"cpf"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ClientUsecase defines client and address management.
type ClientUsecase interface {
	// RegisterClient creates a client (and its first address, when given)
	// atomically.
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*entity.Client, error)

	// GetClient retrieves a client with its addresses.
	GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// SearchClients lists clients matching a free-text query.
	SearchClients(ctx context.Context, query string) ([]*entity.Client, error)

	// UpdateClient applies partial updates to a client.
	UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) error

	// RemoveClient soft-deletes a client.
	RemoveClient(ctx context.Context, id uuid.UUID) error

	// AddAddress creates an address for a client. When the new address is
	// primary, the previous primary is cleared in the same transaction so at
	// most one address per client carries the flag.
	AddAddress(ctx context.Context, clientID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// SetPrimaryAddress marks one address as the client's primary.
	SetPrimaryAddress(ctx context.Context, clientID, addressID uuid.UUID) error

	// RemoveAddress deletes an address.
	RemoveAddress(ctx context.Context, clientID, addressID uuid.UUID) error
}
