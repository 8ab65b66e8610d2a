package impl

import (
	"context"
	"log/slog"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const clientSearchLimit = 100

// clientService implements the ClientUsecase interface.
type clientService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(
	txManager repository.TransactionManager,
	clientRepo repository.ClientRepository,
	logger *slog.Logger,
) usecase.ClientUsecase {
	return &clientService{
		txManager:  txManager,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// RegisterClient creates a client and, when given, its first address in one
// transaction. A failure between the two writes rolls both back instead of
// leaving an orphan client.
func (srv *clientService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*entity.Client, error) {
	client := &entity.Client{
		ID:    uuid.New(),
		Name:  input.Name,
		Phone: input.Phone,
		CPF:   input.CPF,
		Email: input.Email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		if err := clientRepo.Create(ctx, client); err != nil {
			if errors.Is(err, repository.ErrDuplicateClient) {
				return errors.Wrap(domainerrors.ErrClientAlreadyExists, "duplicate CPF")
			}

			return errors.Wrap(err, "failed to create client")
		}

		if input.Address == nil {
			return nil
		}

		address := addressFromInput(client.ID, input.Address)
		// The first address is always the primary one.
		address.IsPrimary = true
		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		client.Addresses = []*entity.Address{address}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register client")
	}

	srv.logger.Info("Client registered", "clientID", client.ID)

	return client, nil
}

// GetClient retrieves a client with its addresses.
func (srv *clientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrClientNotFound, "client not found")
		}

		return nil, errors.Wrap(err, "failed to find client")
	}

	return client, nil
}

// SearchClients lists clients matching a free-text query.
func (srv *clientService) SearchClients(ctx context.Context, query string) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.Search(ctx, query, clientSearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search clients")
	}

	return clients, nil
}

// UpdateClient applies partial updates to a client.
func (srv *clientService) UpdateClient(ctx context.Context, id uuid.UUID, input *usecase.UpdateClientInput) error {
	client, err := srv.GetClient(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.CPF != nil {
		client.CPF = *input.CPF
	}
	if input.Email != nil {
		client.Email = *input.Email
	}

	if err := srv.clientRepo.Update(ctx, client); err != nil {
		return errors.Wrap(err, "failed to update client")
	}

	return nil
}

// RemoveClient soft-deletes a client.
func (srv *clientService) RemoveClient(ctx context.Context, id uuid.UUID) error {
	if err := srv.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return errors.Wrap(domainerrors.ErrClientNotFound, "client not found")
		}

		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}

// AddAddress creates an address for a client, clearing the previous primary
// in the same transaction when the new one is primary.
func (srv *clientService) AddAddress(ctx context.Context, clientID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if _, err := srv.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	address := addressFromInput(clientID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if address.IsPrimary {
			if err := addressRepo.ClearPrimary(ctx, clientID); err != nil {
				return errors.Wrap(err, "failed to clear previous primary address")
			}
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add address")
	}

	return address, nil
}

// SetPrimaryAddress marks one address as the client's primary.
func (srv *clientService) SetPrimaryAddress(ctx context.Context, clientID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		if address.ClientID != clientID {
			return errors.Wrap(domainerrors.ErrForbidden, "address belongs to another client")
		}

		if err := addressRepo.ClearPrimary(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to clear previous primary address")
		}

		address.IsPrimary = true

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		return errors.Wrap(err, "failed to set primary address")
	}

	return nil
}

// RemoveAddress deletes an address.
func (srv *clientService) RemoveAddress(ctx context.Context, clientID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		if address.ClientID != clientID {
			return errors.Wrap(domainerrors.ErrForbidden, "address belongs to another client")
		}

		return addressRepo.Delete(ctx, addressID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove address")
	}

	return nil
}

func addressFromInput(clientID uuid.UUID, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		ID:           uuid.New(),
		ClientID:     clientID,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		Region:       input.Region,
		IsPrimary:    input.IsPrimary,
	}
}
