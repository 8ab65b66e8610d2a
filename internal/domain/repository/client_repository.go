// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"romaneio/internal/domain/entity"
	"romaneio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for client persistence.
var (
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrDuplicateClient is returned when a client with the same CPF already exists.
	ErrDuplicateClient = errors.New("client already exists")
)

// ClientRepository defines the standard operations for client persistence.
type ClientRepository interface {
	// Create persists a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a single client by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// Search retrieves clients whose name or phone matches the query,
	// most recently created first. An empty query lists everyone.
	Search(ctx context.Context, query string, limit int) ([]*entity.Client, error)

	// Update modifies an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete soft-deletes a client. Clients are never hard-deleted in the normal flow.
	Delete(ctx context.Context, id uuid.UUID) error
}
