package impl

import (
	"context"
	"testing"

	"mandi/internal/domain/entity"
	"mandi/internal/domain/repository"
	mockRepo "mandi/internal/mocks/repository"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, &entity.UserDevice{
			UserID:   userID,
			FCMToken: "token-1",
			Platform: "android",
		}).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "token-1", device.FCMToken)
}

func TestDeviceService_RegisterDevice_ValidationFailures(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, uuid.Nil, &usecase.DeviceInfo{FCMToken: "t", Platform: "ios"})
	assert.Error(t, err)

	_, err = svc.RegisterDevice(ctx, uuid.New(), nil)
	assert.Error(t, err)

	_, err = svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{Platform: "ios"})
	assert.Error(t, err)

	_, err = svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t"})
	assert.Error(t, err)
}

func TestDeviceService_GetUserDevice_NotFound(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(nil, repository.ErrDeviceNotFound)

	_, err := svc.GetUserDevice(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestDeviceService_EvictToken_Idempotent(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	// The underlying delete treats an absent row as a no-op, so a second
	// eviction succeeds just like the first.
	deviceRepo.EXPECT().
		DeleteDeviceByUser(ctx, userID).
		Return(nil)

	require.NoError(t, svc.EvictToken(ctx, userID))
	require.NoError(t, svc.EvictToken(ctx, userID))
}
