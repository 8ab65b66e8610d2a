package postgres

import (
	"context"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create persists a new client.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Omit("Addresses").Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateClient
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// FindByID retrieves a client with its addresses, primary address first.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// Search retrieves clients whose name or phone matches the query.
func (repo *clientRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Client, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		})

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}

	var clientModels []*model.ClientModel
	if err := tx.Order("created_at DESC").Limit(limit).Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// Update modifies an existing client.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":  clientM.Name,
			"phone": clientM.Phone,
			"cpf":   clientM.CPF,
			"email": clientM.Email,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateClient
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Delete soft-deletes a client.
func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// toClientDomain converts a GORM model to a domain entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	addresses := make([]*entity.Address, 0, len(data.Addresses))
	for _, addressM := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return &entity.Client{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		CPF:       data.CPF,
		Email:     data.Email,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromClientDomain converts a domain entity to a GORM model.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		CPF:       data.CPF,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
