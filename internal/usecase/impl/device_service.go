// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"romaneio/config"
	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAuthorizedCacheTTL = 30 * time.Minute

// Verification messages shown by the dashboard.
const (
	msgAuthorized = "Dispositivo autorizado"
	msgPending    = "Dispositivo registrado, aguardando aprovação do administrador"
	msgBlocked    = "Este dispositivo está bloqueado"
)

type cachedVerdict struct {
	status   entity.DeviceStatus
	cachedAt time.Time
}

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger

	// Authorized verdicts are cached to skip the lookup; any other verdict
	// drops the entry.
	cacheTTL time.Duration
	cacheMu  sync.RWMutex
	cache    map[string]cachedVerdict

	now func() time.Time
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	ttl := defaultAuthorizedCacheTTL
	if cfg != nil && cfg.DeviceGate != nil && cfg.DeviceGate.AuthorizedCacheTTL > 0 {
		ttl = cfg.DeviceGate.AuthorizedCacheTTL
	}

	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		cacheTTL:   ttl,
		cache:      make(map[string]cachedVerdict),
		now:        time.Now,
	}
}

// VerifyDevice resolves a fingerprint to an approval verdict.
func (srv *deviceService) VerifyDevice(ctx context.Context, userID uuid.UUID, input *usecase.VerifyDeviceInput) (*usecase.VerifyDeviceOutput, error) {
	device, err := srv.deviceRepo.FindByFingerprint(ctx, input.Fingerprint)
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(err, "failed to look up device")
		}

		// First time this fingerprint is seen: register it as pending.
		device = &entity.Device{
			ID:          uuid.New(),
			Fingerprint: input.Fingerprint,
			Name:        input.DeviceName,
			UserID:      &userID,
			Status:      entity.DeviceStatusPending,
			LastAccess:  srv.now(),
		}
		if err := srv.deviceRepo.Create(ctx, device); err != nil {
			// A concurrent first visit may have registered it already.
			if !errors.Is(err, repository.ErrDuplicateDevice) {
				return nil, errors.Wrap(err, "failed to register device")
			}
			device, err = srv.deviceRepo.FindByFingerprint(ctx, input.Fingerprint)
			if err != nil {
				return nil, errors.Wrap(err, "failed to re-read device")
			}
		}
	} else {
		if err := srv.deviceRepo.TouchLastAccess(ctx, device.ID, srv.now()); err != nil {
			// The verdict matters more than the timestamp.
			srv.logger.Warn("Failed to refresh device last access",
				"deviceID", device.ID, "error", err.Error())
		}
	}

	srv.updateCache(input.Fingerprint, device.Status)

	return verdictFor(device.Status), nil
}

// CheckFingerprint returns the stored status of a fingerprint for the gate
// middleware.
func (srv *deviceService) CheckFingerprint(ctx context.Context, fingerprint string) (entity.DeviceStatus, error) {
	if status, ok := srv.cachedStatus(fingerprint); ok {
		return status, nil
	}

	device, err := srv.deviceRepo.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			srv.invalidate(fingerprint)

			return entity.DeviceStatusPending, nil
		}

		return "", errors.Wrap(err, "failed to look up device")
	}

	srv.updateCache(fingerprint, device.Status)

	return device.Status, nil
}

// ListDevices lists every registered device for the admin screen.
func (srv *deviceService) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// SetDeviceStatus approves, blocks, or resets a device.
func (srv *deviceService) SetDeviceStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error {
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown device status")
	}

	device, err := srv.deviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device")
	}

	if err := srv.deviceRepo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "failed to update device status")
	}

	srv.logger.Info("Device status changed",
		"deviceID", id, "fingerprint", device.Fingerprint, "status", status.String())

	srv.updateCache(device.Fingerprint, status)

	return nil
}

// RenameDevice changes the display name of a device.
func (srv *deviceService) RenameDevice(ctx context.Context, id uuid.UUID, name string) error {
	device, err := srv.deviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device")
	}

	device.Name = name
	if err := srv.deviceRepo.Update(ctx, device); err != nil {
		return errors.Wrap(err, "failed to rename device")
	}

	return nil
}

// RemoveDevice deletes a device record.
func (srv *deviceService) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	device, err := srv.deviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device")
	}

	if err := srv.deviceRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	srv.invalidate(device.Fingerprint)

	return nil
}

func (srv *deviceService) cachedStatus(fingerprint string) (entity.DeviceStatus, bool) {
	srv.cacheMu.RLock()
	entry, ok := srv.cache[fingerprint]
	srv.cacheMu.RUnlock()

	if !ok || srv.now().Sub(entry.cachedAt) > srv.cacheTTL {
		return "", false
	}

	return entry.status, true
}

// updateCache stores authorized verdicts and drops everything else, so a
// block or reset takes effect on the next check.
func (srv *deviceService) updateCache(fingerprint string, status entity.DeviceStatus) {
	if status != entity.DeviceStatusAuthorized {
		srv.invalidate(fingerprint)

		return
	}

	srv.cacheMu.Lock()
	srv.cache[fingerprint] = cachedVerdict{status: status, cachedAt: srv.now()}
	srv.cacheMu.Unlock()
}

func (srv *deviceService) invalidate(fingerprint string) {
	srv.cacheMu.Lock()
	delete(srv.cache, fingerprint)
	srv.cacheMu.Unlock()
}

func verdictFor(status entity.DeviceStatus) *usecase.VerifyDeviceOutput {
	switch status {
	case entity.DeviceStatusAuthorized:
		return &usecase.VerifyDeviceOutput{Authorized: true, Message: msgAuthorized}
	case entity.DeviceStatusBlocked:
		return &usecase.VerifyDeviceOutput{Message: msgBlocked}
	default:
		return &usecase.VerifyDeviceOutput{AwaitingApproval: true, Message: msgPending}
	}
}
