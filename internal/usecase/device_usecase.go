package usecase

import (
	"context"

	"romaneio/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyDeviceInput is the payload of the device-verification endpoint.
type VerifyDeviceInput struct {
	Fingerprint string `json:"fingerprint" validate:"required"`
	DeviceName  string `json:"nome_dispositivo"`
}

// VerifyDeviceOutput matches the verification response contract used by the
// dashboard front end.
type VerifyDeviceOutput struct {
	Authorized       bool   `json:"autorizado"`
	AwaitingApproval bool   `json:"aguardando_aprovacao"`
	Message          string `json:"mensagem"`
}

// DeviceUsecase defines the device authorization gate and its admin side.
type DeviceUsecase interface {
	// VerifyDevice resolves a fingerprint to an approval verdict. Unknown
	// fingerprints are registered as pending; known ones have their
	// last-access timestamp refreshed.
	VerifyDevice(ctx context.Context, userID uuid.UUID, input *VerifyDeviceInput) (*VerifyDeviceOutput, error)

	// CheckFingerprint returns the stored status of a fingerprint for the
	// gate middleware. Authorized verdicts are served from a short-lived
	// cache; any non-authorized verdict invalidates the cached entry.
	CheckFingerprint(ctx context.Context, fingerprint string) (entity.DeviceStatus, error)

	// ListDevices lists every registered device for the admin screen.
	ListDevices(ctx context.Context) ([]*entity.Device, error)

	// SetDeviceStatus approves, blocks, or resets a device.
	SetDeviceStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error

	// RenameDevice changes the display name of a device.
	RenameDevice(ctx context.Context, id uuid.UUID, name string) error

	// RemoveDevice deletes a device record.
	RemoveDevice(ctx context.Context, id uuid.UUID) error
}
