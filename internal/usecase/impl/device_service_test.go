package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"romaneio/config"
	"romaneio/internal/domain/entity"
	domainerrors "romaneio/internal/domain/errors"
	"romaneio/internal/domain/repository"
	mockRepo "romaneio/internal/mocks/repository"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T, cfg *config.Config) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewDeviceService(deviceRepo, cfg, logger)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_VerifyDevice_NewDeviceRegisteredPending(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.VerifyDeviceInput{
		Fingerprint: "disp-abc123",
		DeviceName:  "Balcão 1",
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-abc123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "disp-abc123", device.Fingerprint)
			assert.Equal(t, "Balcão 1", device.Name)
			assert.Equal(t, entity.DeviceStatusPending, device.Status)
			require.NotNil(t, device.UserID)
			assert.Equal(t, userID, *device.UserID)
		}).
		Return(nil)

	out, err := fx.service.VerifyDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.False(t, out.Authorized)
	assert.True(t, out.AwaitingApproval)
	assert.NotEmpty(t, out.Message)
}

func TestDeviceService_VerifyDevice_KnownAuthorized(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-abc123",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-abc123").
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		TouchLastAccess(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	out, err := fx.service.VerifyDevice(ctx, uuid.New(), &usecase.VerifyDeviceInput{Fingerprint: "disp-abc123"})
	require.NoError(t, err)
	assert.True(t, out.Authorized)
	assert.False(t, out.AwaitingApproval)
}

func TestDeviceService_VerifyDevice_KnownBlocked(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-blocked",
		Status:      entity.DeviceStatusBlocked,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-blocked").
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		TouchLastAccess(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	out, err := fx.service.VerifyDevice(ctx, uuid.New(), &usecase.VerifyDeviceInput{Fingerprint: "disp-blocked"})
	require.NoError(t, err)
	assert.False(t, out.Authorized)
	assert.False(t, out.AwaitingApproval)
}

func TestDeviceService_VerifyDevice_TouchFailureDoesNotFailVerdict(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-abc123",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-abc123").
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		TouchLastAccess(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	out, err := fx.service.VerifyDevice(ctx, uuid.New(), &usecase.VerifyDeviceInput{Fingerprint: "disp-abc123"})
	require.NoError(t, err)
	assert.True(t, out.Authorized)
}

func TestDeviceService_VerifyDevice_ConcurrentRegistrationRace(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	existing := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-race",
		Status:      entity.DeviceStatusPending,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-race").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-race").
		Return(existing, nil).
		Once()

	out, err := fx.service.VerifyDevice(ctx, uuid.New(), &usecase.VerifyDeviceInput{Fingerprint: "disp-race"})
	require.NoError(t, err)
	assert.True(t, out.AwaitingApproval)
}

func TestDeviceService_CheckFingerprint_AuthorizedServedFromCache(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-cached",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-cached").
		Return(device, nil).
		Once()

	status, err := fx.service.CheckFingerprint(ctx, "disp-cached")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusAuthorized, status)

	// Second check hits the cache; the mock would fail on a second lookup.
	status, err = fx.service.CheckFingerprint(ctx, "disp-cached")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusAuthorized, status)
}

func TestDeviceService_CheckFingerprint_CacheExpires(t *testing.T) {
	fx := createTestDeviceService(t, &config.Config{
		DeviceGate: &config.DeviceGateConfig{AuthorizedCacheTTL: 30 * time.Minute},
	})

	current := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	srv := fx.service.(*deviceService)
	srv.now = func() time.Time { return current }

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-ttl",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-ttl").
		Return(device, nil).
		Twice()

	_, err := fx.service.CheckFingerprint(ctx, "disp-ttl")
	require.NoError(t, err)

	// Still inside the TTL: served from cache.
	current = current.Add(29 * time.Minute)
	_, err = fx.service.CheckFingerprint(ctx, "disp-ttl")
	require.NoError(t, err)

	// Past the TTL: the repository is consulted again.
	current = current.Add(2 * time.Minute)
	status, err := fx.service.CheckFingerprint(ctx, "disp-ttl")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusAuthorized, status)
}

func TestDeviceService_CheckFingerprint_UnknownIsPending(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-unknown").
		Return(nil, repository.ErrDeviceNotFound)

	status, err := fx.service.CheckFingerprint(ctx, "disp-unknown")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusPending, status)
}

func TestDeviceService_CheckFingerprint_BlockedNeverCached(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-blocked",
		Status:      entity.DeviceStatusBlocked,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-blocked").
		Return(device, nil).
		Twice()

	for range 2 {
		status, err := fx.service.CheckFingerprint(ctx, "disp-blocked")
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceStatusBlocked, status)
	}
}

func TestDeviceService_SetDeviceStatus_InvalidStatus(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	err := fx.service.SetDeviceStatus(context.Background(), uuid.New(), entity.DeviceStatus("Aprovadíssimo"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_SetDeviceStatus_BlockInvalidatesCache(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-revoke",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-revoke").
		Return(device, nil).
		Once()

	_, err := fx.service.CheckFingerprint(ctx, "disp-revoke")
	require.NoError(t, err)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		UpdateStatus(ctx, device.ID, entity.DeviceStatusBlocked).
		Return(nil)

	require.NoError(t, fx.service.SetDeviceStatus(ctx, device.ID, entity.DeviceStatusBlocked))

	// The cached authorized verdict is gone; the next check re-reads.
	blocked := &entity.Device{ID: device.ID, Fingerprint: device.Fingerprint, Status: entity.DeviceStatusBlocked}
	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-revoke").
		Return(blocked, nil).
		Once()

	status, err := fx.service.CheckFingerprint(ctx, "disp-revoke")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusBlocked, status)
}

func TestDeviceService_SetDeviceStatus_NotFound(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	id := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.SetDeviceStatus(ctx, id, entity.DeviceStatusAuthorized)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_RemoveDevice_InvalidatesCache(t *testing.T) {
	fx := createTestDeviceService(t, nil)

	ctx := context.Background()
	device := &entity.Device{
		ID:          uuid.New(),
		Fingerprint: "disp-gone",
		Status:      entity.DeviceStatusAuthorized,
	}

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-gone").
		Return(device, nil).
		Once()

	_, err := fx.service.CheckFingerprint(ctx, "disp-gone")
	require.NoError(t, err)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		Delete(ctx, device.ID).
		Return(nil)

	require.NoError(t, fx.service.RemoveDevice(ctx, device.ID))

	fx.deviceRepo.EXPECT().
		FindByFingerprint(ctx, "disp-gone").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	status, err := fx.service.CheckFingerprint(ctx, "disp-gone")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusPending, status)
}
