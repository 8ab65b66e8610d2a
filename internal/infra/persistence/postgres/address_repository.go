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

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new address for a client.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByClient retrieves all addresses for a client, primary first.
func (repo *addressRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("is_primary DESC, created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by client")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Update modifies an existing address record.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"street":       addressM.Street,
			"number":       addressM.Number,
			"complement":   addressM.Complement,
			"neighborhood": addressM.Neighborhood,
			"city":         addressM.City,
			"region":       addressM.Region,
			"is_primary":   addressM.IsPrimary,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearPrimary unsets the primary flag on every address of a client.
// Affecting zero rows is fine: the client may have no primary yet.
func (repo *addressRepository) ClearPrimary(ctx context.Context, clientID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("client_id = ? AND is_primary = ?", clientID, true).
		Update("is_primary", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary address")
	}

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// toAddressDomain converts a GORM model to a domain entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:           data.ID,
		ClientID:     data.ClientID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		Region:       data.Region,
		IsPrimary:    data.IsPrimary,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain entity to a GORM model.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:           data.ID,
		ClientID:     data.ClientID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		Region:       data.Region,
		IsPrimary:    data.IsPrimary,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
