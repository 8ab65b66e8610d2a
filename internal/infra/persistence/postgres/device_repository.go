package postgres

import (
	"context"
	"time"

	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device record.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByFingerprint retrieves a device by its fingerprint token.
func (repo *deviceRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("fingerprint = ?", fingerprint).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by fingerprint")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindAll retrieves all devices, pending first, most recent access first.
func (repo *deviceRepository) FindAll(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Order("(status = 'Pendente') DESC, last_access DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateStatus sets the approval status of a device.
func (repo *deviceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TouchLastAccess refreshes the last-access timestamp of a device.
func (repo *deviceRepository) TouchLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("last_access", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch device last access")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Update modifies an existing device record.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"name":    device.Name,
			"user_id": device.UserID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Delete removes a device by its ID.
func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DeviceModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// toDeviceDomain converts a GORM model to a domain entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:          data.ID,
		Fingerprint: data.Fingerprint,
		Name:        data.Name,
		UserID:      data.UserID,
		Status:      entity.DeviceStatus(data.Status),
		LastAccess:  data.LastAccess,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain entity to a GORM model.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:          data.ID,
		Fingerprint: data.Fingerprint,
		Name:        data.Name,
		UserID:      data.UserID,
		Status:      data.Status.String(),
		LastAccess:  data.LastAccess,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
