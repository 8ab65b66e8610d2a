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

// courierRepository implements the repository.CourierRepository interface.
type courierRepository struct {
	db *gorm.DB
}

// NewCourierRepository is the constructor for courierRepository.
func NewCourierRepository(db *gorm.DB) repository.CourierRepository {
	return &courierRepository{
		db: db,
	}
}

// Create persists a new courier.
func (repo *courierRepository) Create(ctx context.Context, courier *entity.Courier) error {
	courierM := fromCourierDomain(courier)

	if err := repo.db.WithContext(ctx).Create(courierM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required courier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create courier")
	}

	courier.ID = courierM.ID
	courier.CreatedAt = courierM.CreatedAt
	courier.UpdatedAt = courierM.UpdatedAt

	return nil
}

// FindByID retrieves a courier by its unique ID.
func (repo *courierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Courier, error) {
	var courierM model.CourierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&courierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourierNotFound
		}

		return nil, errors.Wrap(err, "failed to find courier by ID")
	}

	return toCourierDomain(&courierM), nil
}

// FindAll retrieves couriers, active first, ordered by name.
func (repo *courierRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Courier, error) {
	tx := repo.db.WithContext(ctx)
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}

	var courierModels []*model.CourierModel
	if err := tx.Order("is_active DESC, name ASC").Find(&courierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list couriers")
	}

	couriers := make([]*entity.Courier, 0, len(courierModels))
	for _, courierM := range courierModels {
		couriers = append(couriers, toCourierDomain(courierM))
	}

	return couriers, nil
}

// Update modifies an existing courier.
func (repo *courierRepository) Update(ctx context.Context, courier *entity.Courier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierModel{}).
		Where("id = ?", courier.ID).
		Updates(map[string]any{
			"name":      courier.Name,
			"phone":     courier.Phone,
			"is_active": courier.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update courier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

// Delete soft-deletes a courier.
func (repo *courierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CourierModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete courier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

// toCourierDomain converts a GORM model to a domain entity.
func toCourierDomain(data *model.CourierModel) *entity.Courier {
	return &entity.Courier{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCourierDomain converts a domain entity to a GORM model.
func fromCourierDomain(data *entity.Courier) *model.CourierModel {
	return &model.CourierModel{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
